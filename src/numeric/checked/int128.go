package checked

import (
	"math/big"
	"math/bits"
)

// Int128 is a two's complement 128-bit integer. It only carries the exact
// product of two int64 values, which always fits.
type Int128 struct {
	hi uint64
	lo uint64
}

// MulWide returns the exact product a * b.
func MulWide(a, b int64) Int128 {
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	r := Int128{hi: hi, lo: lo}
	if (a < 0) != (b < 0) {
		r = r.Neg()
	}
	return r
}

func (i Int128) Neg() Int128 {
	lo, carry := bits.Add64(^i.lo, 1, 0)
	hi, _ := bits.Add64(^i.hi, 0, carry)
	return Int128{hi: hi, lo: lo}
}

func (i Int128) Sign() int {
	switch {
	case int64(i.hi) < 0:
		return -1
	case i.hi == 0 && i.lo == 0:
		return 0
	default:
		return 1
	}
}

// Cmp compares i and n and returns -1, 0 or 1.
func (i Int128) Cmp(n Int128) int {
	if i.hi == n.hi {
		switch {
		case i.lo < n.lo:
			return -1
		case i.lo > n.lo:
			return 1
		}
		return 0
	}
	if int64(i.hi) < int64(n.hi) {
		return -1
	}
	return 1
}

// IsInt64 reports whether i fits in an int64.
func (i Int128) IsInt64() bool {
	if int64(i.hi) < 0 {
		return i.hi == maxUint64 && int64(i.lo) < 0
	}
	return i.hi == 0 && int64(i.lo) >= 0
}

func (i Int128) AsBigInt() *big.Int {
	v := new(big.Int).SetUint64(i.hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(i.lo))
	if int64(i.hi) < 0 {
		v.Sub(v, wrapBigUint128)
	}
	return v
}

func (i Int128) String() string {
	return i.AsBigInt().String()
}
