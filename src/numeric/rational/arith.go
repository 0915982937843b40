package rational

import (
	"fmt"
	"math"

	"ratnum/src/numeric/checked"
)

// Neg returns -x. It cannot fail because math.MinInt64 is never a numerator.
func (x Rational) Neg() Rational {
	return Rational{num: -x.num, dm1: x.dm1}
}

func (x Rational) Abs() Rational {
	if x.num < 0 {
		return x.Neg()
	}
	return x
}

// Inv returns 1/x, keeping the sign on the numerator.
func (x Rational) Inv() (Rational, error) {
	switch {
	case x.num == 0:
		return Rational{}, fmt.Errorf("%w: inverse of zero", ErrInvalidArgument)
	case x.num < 0:
		return Rational{num: -x.Den(), dm1: -x.num - 1}, nil
	default:
		return Rational{num: x.Den(), dm1: x.num - 1}, nil
	}
}

func (x Rational) Add(y Operand) (Rational, error) {
	r, err := ToRational(y)
	if err != nil {
		return Rational{}, err
	}
	s, err := x.add(r)
	if err != nil {
		return Rational{}, fmt.Errorf("%s + %s: %w", x, r, err)
	}
	return s, nil
}

func (x Rational) Sub(y Operand) (Rational, error) {
	r, err := ToRational(y)
	if err != nil {
		return Rational{}, err
	}
	s, err := x.add(r.Neg())
	if err != nil {
		return Rational{}, fmt.Errorf("%s - %s: %w", x, r, err)
	}
	return s, nil
}

func (x Rational) Mul(y Operand) (Rational, error) {
	r, err := ToRational(y)
	if err != nil {
		return Rational{}, err
	}
	s, err := x.mul(r)
	if err != nil {
		return Rational{}, fmt.Errorf("%s * %s: %w", x, r, err)
	}
	return s, nil
}

func (x Rational) Div(y Operand) (Rational, error) {
	r, err := ToRational(y)
	if err != nil {
		return Rational{}, err
	}
	if r.IsZero() {
		return Rational{}, fmt.Errorf("%w: %s / 0", ErrInvalidArgument, x)
	}
	inv, _ := r.Inv()
	s, err := x.mul(inv)
	if err != nil {
		return Rational{}, fmt.Errorf("%s / %s: %w", x, r, err)
	}
	return s, nil
}

// add scales both numerators by the cofactor of the denominators' gcd, so only
// the least common multiple of the denominators is ever formed.
func (x Rational) add(y Rational) (Rational, error) {
	if x.IsZero() {
		return y, nil
	}
	if y.IsZero() {
		return x, nil
	}
	xd, yd := x.Den(), y.Den()
	g := int64(checked.GcdUint64(uint64(xd), uint64(yd)))
	xs, ys := yd/g, xd/g

	a, err := checked.Mul(x.num, xs)
	if err != nil {
		return Rational{}, err
	}
	b, err := checked.Mul(y.num, ys)
	if err != nil {
		return Rational{}, err
	}
	n, err := checked.Add(a, b)
	if err != nil {
		return Rational{}, err
	}
	d, err := checked.Mul(xd, xs)
	if err != nil {
		return Rational{}, err
	}
	return simplify(n, d)
}

// mul cancels each numerator against the other operand's denominator before
// multiplying, which keeps the products as small as the result allows.
func (x Rational) mul(y Rational) (Rational, error) {
	if x.IsZero() || y.IsZero() {
		return Rational{}, nil
	}
	xd, yd := x.Den(), y.Den()
	g1 := int64(checked.GcdUint64(magnitude(x.num), uint64(yd)))
	g2 := int64(checked.GcdUint64(uint64(xd), magnitude(y.num)))

	n, err := checked.Mul(x.num/g1, y.num/g2)
	if err != nil {
		return Rational{}, err
	}
	d, err := checked.Mul(xd/g2, yd/g1)
	if err != nil {
		return Rational{}, err
	}
	return simplify(n, d)
}

// Pow returns x**exp. x**0 is 1 for every x, including 0.
func (x Rational) Pow(exp int64) (Rational, error) {
	if exp == 0 {
		return One, nil
	}
	if exp < 0 {
		inv, err := x.Inv()
		if err != nil {
			return Rational{}, fmt.Errorf("%w: 0**%d", ErrInvalidArgument, exp)
		}
		if exp == math.MinInt64 {
			p, err := inv.Pow(math.MaxInt64)
			if err != nil {
				return Rational{}, err
			}
			s, err := p.mul(inv)
			if err != nil {
				return Rational{}, fmt.Errorf("%s**%d: %w", x, exp, err)
			}
			return s, nil
		}
		return inv.Pow(-exp)
	}
	n, err := checked.Pow(x.num, exp)
	if err != nil {
		return Rational{}, fmt.Errorf("%s**%d: %w", x, exp, err)
	}
	d, err := checked.Pow(x.Den(), exp)
	if err != nil {
		return Rational{}, fmt.Errorf("%s**%d: %w", x, exp, err)
	}
	s, err := simplify(n, d)
	if err != nil {
		return Rational{}, fmt.Errorf("%s**%d: %w", x, exp, err)
	}
	return s, nil
}

// Floor returns the greatest integer not above x.
func (x Rational) Floor() int64 {
	d := x.Den()
	q, r := x.num/d, x.num%d
	if r != 0 && x.num < 0 {
		q--
	}
	return q
}

// Ceil returns the least integer not below x.
func (x Rational) Ceil() int64 {
	d := x.Den()
	q, r := x.num/d, x.num%d
	if r != 0 && x.num > 0 {
		q++
	}
	return q
}

// Round returns the nearest integer to x, rounding halves away from zero.
func (x Rational) Round() int64 {
	d := x.Den()
	q, r := x.num/d, x.num%d
	if r < 0 {
		r = -r
	}
	// r >= d-r is 2*r >= d without the doubling.
	if r != 0 && r >= d-r {
		if x.num < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
