package rational

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63

	// float64(maxInt64) rounds up to 1<<63, so it is an exclusive bound: any
	// float64 strictly below it converts to int64 without overflow.
	maxInt64Float = float64(maxInt64) // 1 << 63
	minInt64Float = float64(minInt64) // -(1 << 63)

	// minMagnitudeFloat is the float64 nearest to 1/maxInt64. It rounds down
	// to 2**-63, so it is already below the smallest representable magnitude.
	minMagnitudeFloat = 0x1p-63
)
