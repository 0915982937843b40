// Package rational implements exact rational numbers over int64 numerators and
// denominators.
//
// Every Rational is kept in lowest terms with a positive denominator, and any
// operation whose exact result does not fit reports an error instead of
// rounding or wrapping. math.MinInt64 is never used as a numerator or
// denominator, so negation and inversion of a valid value are always exact and
// the representable magnitudes are 1/math.MaxInt64 up to math.MaxInt64.
package rational

import (
	"errors"
	"fmt"
	"math"

	"ratnum/src/numeric/checked"
	"ratnum/src/numeric/numutil"
)

var (
	ErrInvalidArgument = checked.ErrInvalidArgument
	ErrOverflow        = checked.ErrOverflow
	ErrOutOfRange      = errors.New("out of range")
)

// Rational is an immutable rational number. The zero value is 0.
//
// Values are comparable with ==, which is exact equality because the
// representation is canonical.
type Rational struct {
	num int64
	// dm1 is the denominator minus one, so the zero value reads as 0/1.
	dm1 int64
}

var (
	Zero = Rational{}
	One  = Rational{num: 1}
)

// New returns num/den in canonical form. It fails with ErrInvalidArgument when
// den is zero and with ErrOutOfRange when either part is math.MinInt64.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrInvalidArgument)
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Rational{}, fmt.Errorf("%w: %d/%d", ErrOutOfRange, num, den)
	}
	return simplify(num, den)
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func FromInt(v int64) (Rational, error) {
	return New(v, 1)
}

// simplify reduces num/den and moves the sign onto the numerator. Unlike New
// it accepts math.MinInt64 parts as long as the reduced result is in range,
// which lets arithmetic keep results whose unreduced form is at the edge.
func simplify(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrInvalidArgument)
	}
	if num == 0 {
		return Rational{}, nil
	}
	nm, dm := magnitude(num), magnitude(den)
	if g := checked.GcdUint64(nm, dm); g != 1 {
		nm, dm = nm/g, dm/g
	}
	if nm > math.MaxInt64 || dm > math.MaxInt64 {
		return Rational{}, fmt.Errorf("%w: %d/%d", ErrOutOfRange, num, den)
	}
	n := int64(nm)
	if numutil.Sign(num) != numutil.Sign(den) {
		n = -n
	}
	return Rational{num: n, dm1: int64(dm) - 1}, nil
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

// Num returns the numerator, which carries the sign.
func (x Rational) Num() int64 {
	return x.num
}

// Den returns the denominator, which is always positive.
func (x Rational) Den() int64 {
	return x.dm1 + 1
}

func (x Rational) Sign() int {
	return numutil.Sign(x.num)
}

func (x Rational) IsZero() bool {
	return x.num == 0
}

func (x Rational) IsInt() bool {
	return x.dm1 == 0
}

// Float64 returns the nearest float64 to num/den as computed by a single
// floating point division; large parts lose precision.
func (x Rational) Float64() float64 {
	return float64(x.num) / float64(x.Den())
}

// Int64 truncates x toward zero.
func (x Rational) Int64() int64 {
	return x.num / x.Den()
}

// String returns "num" for integers and "num/den" otherwise.
func (x Rational) String() string {
	if x.IsInt() {
		return fmt.Sprintf("%d", x.num)
	}
	return fmt.Sprintf("%d/%d", x.num, x.Den())
}
