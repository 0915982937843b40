package checked

import "math/big"

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

var (
	// wrapBigUint128 is 1 << 128, used to turn the unsigned reading of a
	// negative Int128 back into its signed value.
	wrapBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)
)
