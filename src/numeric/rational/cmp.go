package rational

import "ratnum/src/numeric/checked"

// Cmp compares x and y and returns -1, 0 or 1.
//
// Values with equal denominators compare by numerator. Otherwise the cross
// products x.num*y.den and x.den*y.num are compared, and if either of them
// overflows int64 the comparison falls back to the float64 approximations of
// x and y. That fallback can report 0 for distinct values whose difference is
// below float64 precision; use CmpExact when that matters.
func (x Rational) Cmp(y Rational) int {
	if x.dm1 == y.dm1 {
		return cmpInt64(x.num, y.num)
	}
	l, err := checked.Mul(x.num, y.Den())
	if err != nil {
		return cmpFloat64(x.Float64(), y.Float64())
	}
	r, err := checked.Mul(x.Den(), y.num)
	if err != nil {
		return cmpFloat64(x.Float64(), y.Float64())
	}
	return cmpInt64(l, r)
}

// CmpExact is like Cmp but always compares the full 128-bit cross products.
func (x Rational) CmpExact(y Rational) int {
	return checked.MulWide(x.num, y.Den()).Cmp(checked.MulWide(x.Den(), y.num))
}

func (x Rational) Eq(y Rational) bool  { return x.Cmp(y) == 0 }
func (x Rational) Lt(y Rational) bool  { return x.Cmp(y) < 0 }
func (x Rational) Gt(y Rational) bool  { return x.Cmp(y) > 0 }
func (x Rational) Lte(y Rational) bool { return x.Cmp(y) <= 0 }
func (x Rational) Gte(y Rational) bool { return x.Cmp(y) >= 0 }

// Compare normalizes both operands with ToRational and compares them with Cmp.
func Compare(x, y Operand) (int, error) {
	a, err := ToRational(x)
	if err != nil {
		return 0, err
	}
	b, err := ToRational(y)
	if err != nil {
		return 0, err
	}
	return a.Cmp(b), nil
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
