package fixdec

// Cmp compares two unscaled values at this configuration's scale and
// returns -1, 0 or +1.
func (a *Arithmetic) Cmp(x, y int64) int {
	return cmpInt64(x, y)
}

// CmpToUnscaled compares x at this configuration's scale with y at yScale.
func (a *Arithmetic) CmpToUnscaled(x, y int64, yScale int) (int, error) {
	return CompareUnscaled(x, a.sm.scale, y, yScale)
}

// CompareUnscaled compares two unscaled values of potentially different
// scales. The coarser value is rescaled into the exact 128-bit domain, so no
// magnitude can overflow and ties are exact.
func CompareUnscaled(x int64, xScale int, y int64, yScale int) (int, error) {
	if _, err := MetricsOf(xScale); err != nil {
		return 0, err
	}
	if _, err := MetricsOf(yScale); err != nil {
		return 0, err
	}
	switch {
	case xScale == yScale:
		return cmpInt64(x, y), nil
	case xScale < yScale:
		return cmpRescaled(x, y, yScale-xScale), nil
	}
	return -cmpRescaled(y, x, xScale-yScale), nil
}

func cmpInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// cmpRescaled compares x * 10^diff with y, diff in (0, 18].
func cmpRescaled(x, y int64, diff int) int {
	xneg, yneg := x < 0, y < 0
	switch {
	case x == 0:
		return -cmpInt64(y, 0)
	case y == 0:
		return cmpInt64(x, 0)
	case xneg != yneg:
		if xneg {
			return -1
		}
		return 1
	}
	// Same nonzero sign: order by magnitude.
	c := wideMul(unsignedAbs(x), uint64(pow10[diff])).cmp(u128{lo: unsignedAbs(y)})
	if xneg {
		return -c
	}
	return c
}
