package fixdec

// Avg calculates (x + y) / 2 without an overflowing intermediate sum, using
// the carry-free bitwise average: (x & y) + ((x ^ y) >> 1) is the floored
// mean for any pair of 64-bit values. An odd sum leaves a remainder of
// exactly one half, which is rounded per the configured mode.
func (a *Arithmetic) Avg(x, y int64) (int64, error) {
	xor := x ^ y
	floor := (x & y) + (xor >> 1)
	if xor&1 == 0 {
		return floor, nil
	}
	// The true mean is floor + 1/2; its sign follows the floored value.
	neg := floor < 0
	trunc := floor
	if neg {
		// Truncation towards zero sits one above the floor for negatives.
		trunc++
	}
	inc, ok := a.rounding.roundingIncrement(neg, trunc&1 != 0, TruncatedPartEqualToHalf)
	if !ok {
		return 0, opError("avg", ErrRoundingNecessary, x, y)
	}
	return trunc + inc, nil
}
