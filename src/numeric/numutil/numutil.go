// Package numutil holds small stateless helpers for classifying numbers.
package numutil

import "math"

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Sign returns -1, 0 or 1. NaN has sign 0.
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SignedZeroSign is like Sign but never returns 0: zeros report the sign of
// their sign bit, so -0.0 gives -1.
func SignedZeroSign(v float64) int {
	if math.Signbit(v) {
		return -1
	}
	return 1
}

func IsNegativeZero(v float64) bool {
	return v == 0 && math.Signbit(v)
}

// WrapAngle maps an angle in radians into (-pi, pi].
func WrapAngle(rad float64) float64 {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return math.NaN()
	}
	w := math.Mod(rad+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}
