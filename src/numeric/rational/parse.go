package rational

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads a rational literal. It accepts, in order of preference:
//
//	[-+]digits                  an integer
//	1.25, -3e-2, ...            a float64 literal, converted with FromFloat64
//	[-+]digits / [-+]digits     a fraction, reduced with New
//
// Surrounding whitespace, and whitespace on either side of the slash, is
// ignored.
func Parse(text string) (Rational, error) {
	s := strings.TrimSpace(text)

	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		if i == math.MinInt64 {
			return Rational{}, fmt.Errorf("%w: %q", ErrOutOfRange, text)
		}
		return Rational{num: i}, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return Rational{}, fmt.Errorf("%w: %q", ErrOutOfRange, text)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return FromFloat64(f)
	}
	if errors.Is(err, strconv.ErrRange) {
		return Rational{}, fmt.Errorf("%w: %q", ErrOutOfRange, text)
	}

	if n, d, ok := strings.Cut(s, "/"); ok {
		num, err := parseInt(n, text)
		if err != nil {
			return Rational{}, err
		}
		den, err := parseInt(d, text)
		if err != nil {
			return Rational{}, err
		}
		return New(num, den)
	}
	return Rational{}, fmt.Errorf("%w: malformed rational %q", ErrInvalidArgument, text)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Rational {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

func parseInt(part, text string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, text)
	default:
		return 0, fmt.Errorf("%w: malformed rational %q", ErrInvalidArgument, text)
	}
}
