package fixdec

// Add calculates x + y. In checked mode an overflowing sum fails with
// ErrOverflow; in unchecked mode it wraps.
func (a *Arithmetic) Add(x, y int64) (int64, error) {
	z, ok := addInt64(x, y)
	if !ok && a.overflow == Checked {
		return 0, opError("add", ErrOverflow, x, y)
	}
	return z, nil
}

// Sub calculates x - y. In checked mode an overflowing difference fails with
// ErrOverflow; in unchecked mode it wraps.
func (a *Arithmetic) Sub(x, y int64) (int64, error) {
	z, ok := subInt64(x, y)
	if !ok && a.overflow == Checked {
		return 0, opError("sub", ErrOverflow, x, y)
	}
	return z, nil
}

// Neg calculates -x. The negation of MinInt64 overflows.
func (a *Arithmetic) Neg(x int64) (int64, error) {
	z, ok := negInt64(x)
	if !ok && a.overflow == Checked {
		return 0, opError("neg", ErrOverflow, x)
	}
	return z, nil
}

// Abs calculates |x|. The absolute value of MinInt64 overflows.
func (a *Arithmetic) Abs(x int64) (int64, error) {
	z, ok := absInt64(x)
	if !ok && a.overflow == Checked {
		return 0, opError("abs", ErrOverflow, x)
	}
	return z, nil
}

// AddUnscaled calculates x + y where y carries its own scale. The sum is
// rounded at this configuration's scale; rounding applies to the exact sum,
// not to a pre-rounded addend, so HALF_EVEN ties break on the sum's parity.
func (a *Arithmetic) AddUnscaled(x, y int64, yScale int) (int64, error) {
	ysm, err := MetricsOf(yScale)
	if err != nil {
		return 0, err
	}
	diff := ysm.scale - a.sm.scale
	if diff <= 0 {
		// y is coarser: scale it up exactly and add.
		k := pow10[-diff]
		if z, ok := mulInt64(y, k); ok {
			return a.Add(x, z)
		}
		// The scaled addend leaves 64 bits but the sum may still fit;
		// finish in the 128-bit domain.
		return a.addWide("addUnscaled", x, unsignedAbs(y), y < 0, uint64(k))
	}
	d := pow10[diff]
	t := y / d
	r := y - t*d
	return a.addRounded(x, t, r, d)
}

// SubUnscaled calculates x - y where y carries its own scale, with the same
// exact-sum rounding as AddUnscaled.
func (a *Arithmetic) SubUnscaled(x, y int64, yScale int) (int64, error) {
	ysm, err := MetricsOf(yScale)
	if err != nil {
		return 0, err
	}
	diff := ysm.scale - a.sm.scale
	if diff <= 0 {
		k := pow10[-diff]
		if z, ok := mulInt64(y, k); ok {
			return a.Sub(x, z)
		}
		// Subtraction is addition of the negated addend; the flipped sign
		// flag covers y == MinInt64 as well.
		return a.addWide("subUnscaled", x, unsignedAbs(y), y >= 0, uint64(k))
	}
	// Negating the split parts stays in range even for y == MinInt64,
	// because |y/d| < 2^62 and |r| < d once d > 1.
	d := pow10[diff]
	t := y / d
	r := y - t*d
	return a.addRounded(x, -t, -r, d)
}

// addWide adds x and the scaled addend ymag*k of sign yneg whose magnitude no
// longer fits in 64 bits. The sum is exact, so only a result outside the
// int64 range fails in checked mode. The opposite-sign branch never borrows:
// ymag*k overflowed int64, so its magnitude is at least 2^63 >= |x|.
func (a *Arithmetic) addWide(op string, x int64, ymag uint64, yneg bool, k uint64) (int64, error) {
	m := wideMul(ymag, k)
	if (x < 0) == yneg {
		m = m.add(u128{lo: unsignedAbs(x)})
	} else {
		m = m.sub(u128{lo: unsignedAbs(x)})
	}
	if m.hi != 0 && a.overflow == Checked {
		return 0, opError(op, ErrOverflow, x)
	}
	z, ok := toSigned(m.lo, yneg)
	if !ok && a.overflow == Checked {
		return 0, opError(op, ErrOverflow, x)
	}
	return z, nil
}

// addRounded adds x and the fractional value t + r/d, rounding the exact sum.
// r carries the fraction's sign and |r| < d.
func (a *Arithmetic) addRounded(x, t, r, d int64) (int64, error) {
	z, ok := addInt64(x, t)
	if !ok && a.overflow == Checked {
		return 0, opError("addUnscaled", ErrOverflow, x, t)
	}
	// Align the truncated sum and the remainder to a common sign, so the
	// remainder classification reflects the exact sum.
	switch {
	case z > 0 && r < 0:
		z--
		r += d
	case z < 0 && r > 0:
		z++
		r -= d
	}
	neg := z < 0 || (z == 0 && r < 0)
	inc, incOK := a.rounding.roundingIncrement(neg, z&1 != 0, truncatedPartFor(unsignedAbs(r), uint64(d)))
	if !incOK {
		return 0, opError("addUnscaled", ErrRoundingNecessary, x, t, r)
	}
	if inc == 0 {
		return z, nil
	}
	z, ok = addInt64(z, inc)
	if !ok && a.overflow == Checked {
		return 0, opError("addUnscaled", ErrOverflow, x, t)
	}
	return z, nil
}
