package fixdec

// clampShift bounds a shift distance so that negation and degenerate
// full-width shifts stay well defined.
func clampShift(n int) int {
	switch {
	case n > 127:
		return 127
	case n < -127:
		return -127
	}
	return n
}

// ShiftLeft calculates x * 2^n. A negative n shifts right instead. A true
// left shift involves no rounding: in checked mode any lost bit fails with
// ErrOverflow, in unchecked mode the result wraps.
func (a *Arithmetic) ShiftLeft(x int64, n int) (int64, error) {
	n = clampShift(n)
	switch {
	case n < 0:
		return a.ShiftRight(x, -n)
	case n == 0 || x == 0:
		return x, nil
	}
	if a.overflow == Unchecked {
		if n >= 64 {
			return 0, nil
		}
		return x << n, nil
	}
	if n >= 64 {
		return 0, opError("shiftLeft", ErrOverflow, x, int64(n))
	}
	z := x << n
	if z>>n != x {
		return 0, opError("shiftLeft", ErrOverflow, x, int64(n))
	}
	return z, nil
}

// ShiftRight calculates x / 2^n, treating the vacated bits as a truncated
// part for the configured rounding mode. A negative n shifts left instead.
// With FLOOR rounding the arithmetic shift is the exact result and is taken
// directly.
func (a *Arithmetic) ShiftRight(x int64, n int) (int64, error) {
	n = clampShift(n)
	switch {
	case n < 0:
		return a.ShiftLeft(x, -n)
	case n == 0 || x == 0:
		return x, nil
	}
	if a.rounding == RoundFloor {
		if n >= 64 {
			return x >> 63, nil
		}
		return x >> n, nil
	}
	neg := x < 0
	ux := unsignedAbs(x)
	var trunc uint64
	var part TruncatedPart
	switch {
	case n < 64:
		trunc = ux >> n
		part = truncatedPartFor(ux&(uint64(1)<<n-1), uint64(1)<<n)
	case n == 64:
		// The divisor 2^64 is one past the uint64 range; compare against
		// its half directly.
		switch {
		case ux < 1<<63:
			part = TruncatedPartLessThanHalf
		case ux == 1<<63:
			part = TruncatedPartEqualToHalf
		default:
			part = TruncatedPartGreaterThanHalf
		}
	default:
		// The divisor is at least 2^65, so the whole value is below half.
		part = TruncatedPartLessThanHalf
	}
	inc, ok := a.rounding.roundingIncrement(neg, trunc&1 != 0, part)
	if !ok {
		return 0, opError("shiftRight", ErrRoundingNecessary, x, int64(n))
	}
	if inc != 0 {
		trunc++
	}
	z, _ := toSigned(trunc, neg)
	return z, nil
}
