package rational

import (
	"fmt"
	"math"

	"ratnum/src/numeric/checked"
	"ratnum/src/numeric/numutil"
)

// FromFloat64 returns the best rational approximation of v whose denominator
// fits in an int64.
//
// Integral inputs convert directly. Otherwise the continued fraction of |v| is
// expanded one term at a time; the first convergent that reproduces v exactly
// is returned, and if the denominators run out of range first the closest
// convergent seen so far is used.
func FromFloat64(v float64) (Rational, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rational{}, fmt.Errorf("%w: %v is not finite", ErrInvalidArgument, v)
	}
	if v == math.Trunc(v) {
		if v <= minInt64Float || v >= maxInt64Float {
			return Rational{}, fmt.Errorf("%w: %v", ErrOutOfRange, v)
		}
		return Rational{num: int64(v)}, nil
	}

	target := math.Abs(v)
	if target <= minMagnitudeFloat {
		return Rational{}, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	sign := int64(numutil.Sign(v))

	h0, h1, k0, k1 := int64(1), int64(0), int64(0), int64(1)
	bestNum, bestDen, bestErr := int64(0), int64(1), math.Inf(1)
	x := target
	for {
		a := math.Floor(x)
		if a >= maxInt64Float {
			break
		}
		h, err := mulAdd(int64(a), h0, h1)
		if err != nil {
			break
		}
		k, err := mulAdd(int64(a), k0, k1)
		if err != nil {
			break
		}

		approx := float64(h) / float64(k)
		if approx == target {
			return simplify(sign*h, k)
		}
		if e := math.Abs(approx - target); e < bestErr {
			bestNum, bestDen, bestErr = h, k, e
		}

		h1, h0 = h0, h
		k1, k0 = k0, k
		r := x - a
		if r == 0 {
			return simplify(sign*h0, k0)
		}
		x = 1 / r
	}
	return simplify(sign*bestNum, bestDen)
}

// mulAdd returns a*b + c.
func mulAdd(a, b, c int64) (int64, error) {
	p, err := checked.Mul(a, b)
	if err != nil {
		return 0, err
	}
	return checked.Add(p, c)
}
