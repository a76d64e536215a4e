package fixdec

// Mul calculates x * y where both operands are unscaled values at this
// configuration's scale, i.e. the true product x * y / 10^scale rounded per
// the configured mode.
func (a *Arithmetic) Mul(x, y int64) (int64, error) {
	return a.mulScaled("mul", x, y, a.sm)
}

// MulByUnscaled calculates x * y where x is at this configuration's scale and
// y carries its own scale. The result stays at this configuration's scale.
func (a *Arithmetic) MulByUnscaled(x, y int64, yScale int) (int64, error) {
	ysm, err := MetricsOf(yScale)
	if err != nil {
		return 0, err
	}
	return a.mulScaled("mulByUnscaled", x, y, ysm)
}

// MulByInt calculates x * n for a plain integer multiplier n. No rounding is
// involved; overflow follows the configured mode.
func (a *Arithmetic) MulByInt(x, n int64) (int64, error) {
	z, ok := mulInt64(x, n)
	if !ok && a.overflow == Checked {
		return 0, opError("mulByInt", ErrOverflow, x, n)
	}
	return z, nil
}

// mulScaled divides the exact 128-bit product of x and y by sm's scale
// factor, rounding per the configured mode.
func (a *Arithmetic) mulScaled(op string, x, y int64, sm *ScaleMetrics) (int64, error) {
	f := sm.factor
	// Special cases: zero and one short-circuit exactly.
	switch {
	case x == 0 || y == 0:
		return 0, nil
	case y == f:
		return x, nil
	case x == f:
		return y, nil
	case y == -f:
		return a.Neg(x)
	case x == -f:
		return a.Neg(y)
	}
	neg := (x < 0) != (y < 0)
	p := wideMul(unsignedAbs(x), unsignedAbs(y))
	z, err := div128Rounded(p, uint64(f), neg, a.rounding, a.overflow)
	if err != nil {
		return 0, opError(op, err, x, y)
	}
	return z, nil
}

// Square calculates x * x at this configuration's scale, i.e. x² / 10^scale
// rounded per the configured mode. The result sign is never negative, so the
// directed modes behave like their positive halves.
func (a *Arithmetic) Square(x int64) (int64, error) {
	f := a.sm.factor
	switch {
	case x == 0:
		return 0, nil
	case x == f || x == -f:
		return f, nil
	}
	ux := unsignedAbs(x)
	// Small operands square within 64 bits; no wide division needed.
	if ux <= 3_037_000_499 { // floor(sqrt(MaxInt64))
		p := ux * ux
		q := p / uint64(f)
		inc, ok := a.rounding.roundingIncrement(false, q&1 != 0, truncatedPartFor(p-q*uint64(f), uint64(f)))
		if !ok {
			return 0, opError("square", ErrRoundingNecessary, x)
		}
		if inc != 0 {
			q++
		}
		return int64(q), nil
	}
	z, err := div128Rounded(wideMul(ux, ux), uint64(f), false, a.rounding, a.overflow)
	if err != nil {
		return 0, opError("square", err, x)
	}
	return z, nil
}
