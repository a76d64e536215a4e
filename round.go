package fixdec

// Round rounds x to the given number of fraction digits while keeping the
// configuration's scale: the digits below the precision are discarded,
// rounded per the configured mode, and the result is scaled back up. The
// precision may be negative to round into the integer digits, but the
// discarded span scale-precision must not exceed MaxScale.
func (a *Arithmetic) Round(x int64, precision int) (int64, error) {
	delta := a.sm.scale - precision
	switch {
	case delta <= 0:
		// Nothing below the requested precision.
		return x, nil
	case delta > MaxScale:
		return 0, opError("round", ErrPrecisionRange, x, int64(precision))
	}
	pd := pow10[delta]
	t := x / pd
	r := x - t*pd
	if r == 0 {
		return x, nil
	}
	neg := x < 0
	inc, ok := a.rounding.roundingIncrement(neg, t&1 != 0, truncatedPartFor(unsignedAbs(r), uint64(pd)))
	if !ok {
		return 0, opError("round", ErrRoundingNecessary, x, int64(precision))
	}
	t += inc // cannot overflow: |t| <= MaxInt64/10 here
	z, mulOK := mulInt64(t, pd)
	if !mulOK && a.overflow == Checked {
		return 0, opError("round", ErrOverflow, x, int64(precision))
	}
	return z, nil
}
