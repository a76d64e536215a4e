package fixdec

import (
	"math"
	"math/bits"
)

// Bit-exact conversion between unscaled values and IEEE-754 binary floating
// point. Both directions work directly on the bit layouts: no intermediate
// arbitrary-precision value and no round-trip through text.

const (
	f64MantBits = 52
	f64ExpBias  = 1023
	f32MantBits = 23
	f32ExpBias  = 127
)

// ToFloat64 converts x to the float64 nearest under the configured rounding
// mode. Every representable unscaled value lies strictly inside the float64
// normal range, so the only possible failure is UNNECESSARY rounding.
func (a *Arithmetic) ToFloat64(x int64) (float64, error) {
	if x == 0 {
		return 0, nil
	}
	neg, mant, exp, err := a.toBinary(x, f64MantBits)
	if err != nil {
		return 0, opError("toFloat64", err, x)
	}
	b := uint64(exp+f64ExpBias)<<f64MantBits | mant&(uint64(1)<<f64MantBits-1)
	if neg {
		b |= 1 << 63
	}
	return math.Float64frombits(b), nil
}

// ToFloat32 converts x to the float32 nearest under the configured rounding
// mode.
func (a *Arithmetic) ToFloat32(x int64) (float32, error) {
	if x == 0 {
		return 0, nil
	}
	neg, mant, exp, err := a.toBinary(x, f32MantBits)
	if err != nil {
		return 0, opError("toFloat32", err, x)
	}
	b := uint32(exp+f32ExpBias)<<f32MantBits | uint32(mant)&(uint32(1)<<f32MantBits-1)
	if neg {
		b |= 1 << 31
	}
	return math.Float32frombits(b), nil
}

// toBinary computes the sign, mantissa (with implicit leading one) and
// unbiased exponent of x / 10^scale. The magnitude is pre-shifted to the top
// of its word and divided against the scale factor in the 128-bit domain, so
// the quotient always carries more than mantBits+1 significant bits; the
// surplus bits and the division remainder drive the rounding decision.
func (a *Arithmetic) toBinary(x int64, mantBits uint) (neg bool, mant uint64, exp int64, err error) {
	neg = x < 0
	m := unsignedAbs(x)
	f := uint64(a.sm.factor)

	s := uint(bits.LeadingZeros64(m))
	m <<= s
	// q = floor(m * 2^64 / f); at least 2^67 since m is normalized and
	// f has at most 60 bits.
	qHi := m / f
	qLo, r := bits.Div64(m%f, 0, f)
	q := u128{hi: qHi, lo: qLo}

	msb := uint(127 - q.leadingZeros())
	exp = int64(msb) - 64 - int64(s)

	shift := msb - mantBits // > 0 by construction
	mant = q.shr(shift).lo

	top := TruncatedPartZero
	if q.bit(shift-1) != 0 {
		top = TruncatedPartEqualToHalf
	}
	part := truncatedPartWithSticky(top, q.nonzeroBelow(shift-1) || r != 0)
	inc, ok := a.rounding.roundingIncrement(neg, mant&1 != 0, part)
	if !ok {
		return false, 0, 0, ErrRoundingNecessary
	}
	if inc != 0 {
		mant++
		if mant == uint64(1)<<(mantBits+1) {
			mant >>= 1
			exp++
		}
	}
	return neg, mant, exp, nil
}

// FromFloat64 converts a float64 to an unscaled value at this configuration's
// scale, rounding per the configured mode. NaN and infinities are invalid
// input; a magnitude beyond the representable range fails with ErrOverflow in
// either overflow mode.
func (a *Arithmetic) FromFloat64(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, opError("fromFloat64", ErrNotFinite)
	}
	if v == 0 {
		return 0, nil
	}
	b := math.Float64bits(v)
	neg := b>>63 != 0
	be := int64(b >> f64MantBits & 0x7FF)
	frac := b & (uint64(1)<<f64MantBits - 1)
	var sig uint64
	var e int64
	if be == 0 {
		sig = frac // subnormal
		e = 1 - f64ExpBias - f64MantBits
	} else {
		sig = frac | 1<<f64MantBits
		e = be - f64ExpBias - f64MantBits
	}
	z, err := a.fromBinary(sig, e, neg)
	if err != nil {
		return 0, opError("fromFloat64", err)
	}
	return z, nil
}

// FromFloat32 converts a float32 to an unscaled value at this configuration's
// scale, rounding per the configured mode.
func (a *Arithmetic) FromFloat32(v float32) (int64, error) {
	if v != v || v > math.MaxFloat32 || v < -math.MaxFloat32 {
		return 0, opError("fromFloat32", ErrNotFinite)
	}
	if v == 0 {
		return 0, nil
	}
	b := math.Float32bits(v)
	neg := b>>31 != 0
	be := int64(b >> f32MantBits & 0xFF)
	frac := uint64(b & (uint32(1)<<f32MantBits - 1))
	var sig uint64
	var e int64
	if be == 0 {
		sig = frac // subnormal
		e = 1 - f32ExpBias - f32MantBits
	} else {
		sig = frac | 1<<f32MantBits
		e = be - f32ExpBias - f32MantBits
	}
	z, err := a.fromBinary(sig, e, neg)
	if err != nil {
		return 0, opError("fromFloat32", err)
	}
	return z, nil
}

// fromBinary converts the significand-and-exponent form sig * 2^e to an
// unscaled value: the significand is multiplied by the scale factor in the
// 128-bit domain, then aligned by the binary exponent, rounding any
// shifted-out bits per the configured mode.
func (a *Arithmetic) fromBinary(sig uint64, e int64, neg bool) (int64, error) {
	p := wideMul(sig, uint64(a.sm.factor))
	if e >= 0 {
		if e >= 128 || e > int64(p.leadingZeros()) {
			return 0, ErrOverflow
		}
		sh := p.shl(uint(e))
		if sh.hi != 0 {
			return 0, ErrOverflow
		}
		z, ok := toSigned(sh.lo, neg)
		if !ok {
			return 0, ErrOverflow
		}
		return z, nil
	}
	k := uint(128)
	if -e < 128 {
		k = uint(-e)
	}
	trunc := p.shr(k)
	top := TruncatedPartZero
	var sticky bool
	if k == 128 && -e > 128 {
		// Everything, including the half position, is far below the
		// binary point.
		sticky = !p.isZero()
	} else {
		if p.bit(k-1) != 0 {
			top = TruncatedPartEqualToHalf
		}
		sticky = p.nonzeroBelow(k - 1)
	}
	part := truncatedPartWithSticky(top, sticky)
	inc, ok := a.rounding.roundingIncrement(neg, trunc.lo&1 != 0, part)
	if !ok {
		return 0, ErrRoundingNecessary
	}
	if trunc.hi != 0 {
		return 0, ErrOverflow
	}
	mag := trunc.lo
	if inc != 0 {
		mag++
		if mag == 0 {
			return 0, ErrOverflow
		}
	}
	z, ok := toSigned(mag, neg)
	if !ok {
		return 0, ErrOverflow
	}
	return z, nil
}
