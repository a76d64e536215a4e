package fixdec

// Div calculates x / y where both operands are unscaled values at this
// configuration's scale, i.e. the true quotient rescaled to this scale and
// rounded per the configured mode. Division by zero always fails.
func (a *Arithmetic) Div(x, y int64) (int64, error) {
	return a.divScaled("div", x, y, a.sm)
}

// DivByUnscaled calculates x / y where x is at this configuration's scale and
// y carries its own scale. The result stays at this configuration's scale.
func (a *Arithmetic) DivByUnscaled(x, y int64, yScale int) (int64, error) {
	ysm, err := MetricsOf(yScale)
	if err != nil {
		return 0, err
	}
	return a.divScaled("divByUnscaled", x, y, ysm)
}

// DivByInt calculates x / n for a plain integer divisor n, rounding per the
// configured mode.
func (a *Arithmetic) DivByInt(x, n int64) (int64, error) {
	if n == 0 {
		return 0, opError("divByInt", ErrDivisionByZero, x, n)
	}
	q, ok := divInt64(x, n)
	if !ok {
		// MinInt64 / -1
		if a.overflow == Checked {
			return 0, opError("divByInt", ErrOverflow, x, n)
		}
		return q, nil
	}
	r := x - q*n
	neg := (x < 0) != (n < 0)
	inc, incOK := a.rounding.roundingIncrement(neg, q&1 != 0, truncatedPartFor(unsignedAbs(r), unsignedAbs(n)))
	if !incOK {
		return 0, opError("divByInt", ErrRoundingNecessary, x, n)
	}
	if inc == 0 {
		return q, nil
	}
	z, ok := addInt64(q, inc)
	if !ok && a.overflow == Checked {
		return 0, opError("divByInt", ErrOverflow, x, n)
	}
	return z, nil
}

// Invert calculates 1 / x at this configuration's scale.
func (a *Arithmetic) Invert(x int64) (int64, error) {
	f := a.sm.factor
	// Special cases: zero, one and minus one.
	switch {
	case x == 0:
		return 0, opError("invert", ErrDivisionByZero, x)
	case x == f:
		return f, nil
	case x == -f:
		return -f, nil
	}
	p := wideMul(uint64(f), uint64(f))
	z, err := div128Rounded(p, unsignedAbs(x), x < 0, a.rounding, a.overflow)
	if err != nil {
		return 0, opError("invert", err, x)
	}
	return z, nil
}

// divScaled divides the exact 128-bit product x * 10^(y's scale) by y,
// rounding per the configured mode.
func (a *Arithmetic) divScaled(op string, x, y int64, sm *ScaleMetrics) (int64, error) {
	f := sm.factor
	// Special cases: zero, one and equal operands short-circuit exactly.
	switch {
	case y == 0:
		return 0, opError(op, ErrDivisionByZero, x, y)
	case x == 0:
		return 0, nil
	case y == f:
		return x, nil
	case y == -f:
		return a.Neg(x)
	case x == y:
		return f, nil
	case x == -y:
		return -f, nil
	}
	neg := (x < 0) != (y < 0)
	p := wideMul(unsignedAbs(x), uint64(f))
	z, err := div128Rounded(p, unsignedAbs(y), neg, a.rounding, a.overflow)
	if err != nil {
		return 0, opError(op, err, x, y)
	}
	return z, nil
}
