// Package checked implements int64 arithmetic that reports overflow instead of
// wrapping around.
package checked

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	ErrOverflow        = errors.New("integer overflow")
	ErrInvalidArgument = errors.New("invalid argument")
)

func overflow(op string, a, b int64) error {
	return fmt.Errorf("%w: %d %s %d", ErrOverflow, a, op, b)
}

// Add returns a + b.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, overflow("+", a, b)
	}
	return a + b, nil
}

// Sub returns a - b.
func Sub(a, b int64) (int64, error) {
	if (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b) {
		return 0, overflow("-", a, b)
	}
	return a - b, nil
}

// Mul returns a * b. The product of the magnitudes is formed in 128 bits and
// range checked before it is narrowed back to int64.
func Mul(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if hi != 0 {
		return 0, overflow("*", a, b)
	}
	if (a < 0) != (b < 0) {
		if lo > 1<<63 {
			return 0, overflow("*", a, b)
		}
		return int64(-lo), nil
	}
	if lo > math.MaxInt64 {
		return 0, overflow("*", a, b)
	}
	return int64(lo), nil
}

// Neg returns -a, which only fails for math.MinInt64.
func Neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("%w: -(%d)", ErrOverflow, a)
	}
	return -a, nil
}

// Pow returns base**exp for a non-negative exponent. 0**0 is 1.
func Pow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: negative exponent %d", ErrInvalidArgument, exp)
	}
	result := int64(1)
	b := base
	var err error
	for e := exp; e > 0; {
		if e&1 == 1 {
			if result, err = Mul(result, b); err != nil {
				return 0, fmt.Errorf("%w: %d**%d", ErrOverflow, base, exp)
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		// Squaring only happens while exponent bits remain, so a failure here
		// means the final result is out of range too.
		if b, err = Mul(b, b); err != nil {
			return 0, fmt.Errorf("%w: %d**%d", ErrOverflow, base, exp)
		}
	}
	return result, nil
}

// Gcd returns the greatest common divisor of the magnitudes of values. Zeros
// are ignored unless every value is zero, in which case the result is 0.
//
// The magnitudes are processed as uint64, so math.MinInt64 is a valid input;
// the only result that cannot be returned is 1<<63 itself.
func Gcd(values ...int64) (int64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: gcd of no values", ErrInvalidArgument)
	}
	g := magnitude(values[0])
	for _, v := range values[1:] {
		g = GcdUint64(g, magnitude(v))
	}
	if g > math.MaxInt64 {
		return 0, fmt.Errorf("%w: gcd %v", ErrOverflow, values)
	}
	return int64(g), nil
}

// GcdUint64 is the Euclidean algorithm on unsigned magnitudes.
func GcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// magnitude returns |v| without overflowing for math.MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}
