package fixdec

import "math/bits"

// MinPowExponent and MaxPowExponent bound the exponent accepted by Pow.
const (
	MinPowExponent = -999_999_999
	MaxPowExponent = 999_999_999
)

// Pow calculates x raised to exp at this configuration's scale. Integer bases
// with a positive exponent are powered exactly in 64 bits. Fractional bases
// reduce x / 10^scale to lowest terms p/q and compute p^|exp| * 10^scale / q^|exp|
// as one exact 128-by-64 rounded division whenever the powers fit; every
// decimal-exact representable result takes this path, so DOWN never
// undershoots an exact value and UNNECESSARY accepts it. Larger exponents
// fall back to exponentiation by squaring on a normalized 128-bit binary
// accumulator, which keeps the intermediate error below one unit in the last
// place of the final result. A negative exponent powers the reciprocal ratio,
// so the configured rounding is applied only once, to the final result.
func (a *Arithmetic) Pow(x int64, exp int) (int64, error) {
	f := a.sm.factor
	// Special cases
	switch {
	case exp < MinPowExponent || exp > MaxPowExponent:
		return 0, opError("pow", ErrExponentRange, x, int64(exp))
	case exp == 0:
		return f, nil
	case x == 0:
		if exp < 0 {
			return 0, opError("pow", ErrDivisionByZero, x, int64(exp))
		}
		return 0, nil
	case exp == 1:
		return x, nil
	case x == f:
		return f, nil
	case x == -f:
		if exp&1 == 0 {
			return f, nil
		}
		return -f, nil
	case exp == -1:
		return a.Invert(x)
	}
	// Integer bases power exactly.
	if exp > 0 && x%f == 0 {
		return a.powInt(x/f, exp)
	}
	n := exp
	if n < 0 {
		n = -n
	}
	num, den := unsignedAbs(x), uint64(f)
	if exp < 0 {
		num, den = den, num
	}
	neg := x < 0 && exp&1 != 0
	// Reduced-fraction path: with num/den = p/q in lowest terms the result
	// is p^n * 10^scale / q^n. An exact representable result z has
	// p^n * 10^scale = z * q^n < 2^127, so it always fits here.
	g := gcdUint64(num, den)
	if pn, ok := powWide(num/g, n); ok {
		if qn, ok := powUint64(den/g, n); ok {
			if pnf, ok := pn.mulChecked(u128{lo: uint64(f)}); ok {
				z, err := div128Rounded(pnf, qn, neg, a.rounding, a.overflow)
				if err != nil {
					return 0, opError("pow", err, x, int64(exp))
				}
				return z, nil
			}
		}
	}
	base := accFromRatio(num, den)
	r := accOne
	for n > 0 {
		if n&1 != 0 {
			r = r.mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.mul(base)
		}
	}
	z, err := a.finishAcc(r, neg)
	if err != nil {
		return 0, opError("pow", err, x, int64(exp))
	}
	return z, nil
}

// powInt calculates b^exp * 10^scale for an integer base b and positive exp.
func (a *Arithmetic) powInt(b int64, exp int) (int64, error) {
	if a.overflow == Unchecked {
		r := int64(1)
		e := exp
		for e > 0 {
			if e&1 != 0 {
				r *= b
			}
			b *= b
			e >>= 1
		}
		return r * a.sm.factor, nil
	}
	r := int64(1)
	e := exp
	for {
		var ok bool
		if e&1 != 0 {
			r, ok = mulInt64(r, b)
			if !ok {
				return 0, opError("pow", ErrOverflow, b, int64(exp))
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		b, ok = mulInt64(b, b)
		if !ok {
			return 0, opError("pow", ErrOverflow, b, int64(exp))
		}
	}
	z, ok := mulInt64(r, a.sm.factor)
	if !ok {
		return 0, opError("pow", ErrOverflow, b, int64(exp))
	}
	return z, nil
}

// gcdUint64 returns the greatest common divisor of a and b.
func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// powUint64 calculates b^n, failing when the power leaves 64 bits.
func powUint64(b uint64, n int) (uint64, bool) {
	r := uint64(1)
	for {
		if n&1 != 0 {
			hi, lo := bits.Mul64(r, b)
			if hi != 0 {
				return 0, false
			}
			r = lo
		}
		n >>= 1
		if n == 0 {
			return r, true
		}
		hi, lo := bits.Mul64(b, b)
		if hi != 0 {
			return 0, false
		}
		b = lo
	}
}

// powWide calculates b^n in the 128-bit domain, failing when the power
// leaves 128 bits.
func powWide(b uint64, n int) (u128, bool) {
	r := u128{lo: 1}
	w := u128{lo: b}
	for {
		if n&1 != 0 {
			var ok bool
			if r, ok = r.mulChecked(w); !ok {
				return u128{}, false
			}
		}
		n >>= 1
		if n == 0 {
			return r, true
		}
		var ok bool
		if w, ok = w.mulChecked(w); !ok {
			return u128{}, false
		}
	}
}

// acc128 is a positive fixed-point accumulator: the value mant * 2^exp with
// mant normalized to [2^127, 2^128). inexact records that truncated bits have
// been dropped somewhere below the mantissa.
type acc128 struct {
	mant    u128
	exp     int64
	inexact bool
}

// accOne is the accumulator representation of 1.
var accOne = acc128{mant: u128{hi: 1 << 63}, exp: -127}

// mul multiplies two accumulators, keeping the top 128 bits of the 256-bit
// product and folding everything below into the inexact flag.
func (p acc128) mul(q acc128) acc128 {
	top, bottom := mul256(p.mant, q.mant)
	e := p.exp + q.exp + 128
	if top.hi&(1<<63) == 0 {
		// Both mantissas are normalized, so at most one shift is needed.
		top = top.shl(1)
		if bottom.hi&(1<<63) != 0 {
			top.lo |= 1
		}
		bottom = bottom.shl(1)
		e--
	}
	return acc128{
		mant:    top,
		exp:     e,
		inexact: p.inexact || q.inexact || !bottom.isZero(),
	}
}

// accFromRatio returns the accumulator for num/den, carrying at least 128
// significant quotient bits. num and den must be nonzero.
func accFromRatio(num, den uint64) acc128 {
	s := bits.LeadingZeros64(num)
	n := num << s
	// Q = floor(n * 2^128 / den) as three 64-bit limbs, top first.
	q0 := n / den
	r := n % den
	q1, r := bits.Div64(r, 0, den)
	q2, r := bits.Div64(r, 0, den)
	e := int64(-s) - 128
	if q0 == 0 {
		// n >= 2^63 guarantees q1 is normalized here.
		return acc128{mant: u128{hi: q1, lo: q2}, exp: e, inexact: r != 0}
	}
	sh := uint(64 - bits.LeadingZeros64(q0))
	var mant u128
	var dropped uint64
	if sh == 64 {
		mant = u128{hi: q0, lo: q1}
		dropped = q2
	} else {
		mant = u128{hi: q0<<(64-sh) | q1>>sh, lo: q1<<(64-sh) | q2>>sh}
		dropped = q2 & (uint64(1)<<sh - 1)
	}
	return acc128{mant: mant, exp: e + int64(sh), inexact: dropped != 0 || r != 0}
}

// finishAcc converts the accumulator back to an unscaled value: it multiplies
// by the scale factor, splits the 192-bit product at the binary point, and
// rounds the discarded part per the configured mode.
func (a *Arithmetic) finishAcc(r acc128, neg bool) (int64, error) {
	top, bottom := mul256(r.mant, u128{lo: uint64(a.sm.factor)})
	// The scale factor has at most 60 bits, so the product fits in three
	// limbs, least significant first.
	p := [3]uint64{bottom.lo, bottom.hi, top.lo}
	if r.exp >= 0 {
		if a.overflow == Checked {
			return 0, ErrOverflow
		}
		var z uint64
		if r.exp < 64 {
			z = p[0] << uint(r.exp)
		}
		if neg {
			return -int64(z), nil
		}
		return int64(z), nil
	}
	k := -r.exp
	mag, hiNonzero, part := shr192Rounded(p, k, r.inexact)
	inc, ok := a.rounding.roundingIncrement(neg, mag&1 != 0, part)
	if !ok {
		return 0, ErrRoundingNecessary
	}
	if inc != 0 {
		mag++
		if mag == 0 {
			hiNonzero = true
		}
	}
	if a.overflow == Unchecked {
		if neg {
			return -int64(mag), nil
		}
		return int64(mag), nil
	}
	if hiNonzero {
		return 0, ErrOverflow
	}
	z, ok := toSigned(mag, neg)
	if !ok {
		return 0, ErrOverflow
	}
	return z, nil
}

// shr192Rounded shifts the three-limb value p right by k bits, returning the
// low 64 bits of the integer part, whether any higher integer bit is set, and
// the classification of the discarded fraction against one half.
func shr192Rounded(p [3]uint64, k int64, sticky bool) (lo uint64, hiNonzero bool, part TruncatedPart) {
	limbBit := func(i int64) uint64 {
		if i < 0 || i >= 192 {
			return 0
		}
		return p[i/64] >> uint(i%64) & 1
	}
	anyBelow := func(i int64) bool {
		if i <= 0 {
			return false
		}
		if i >= 192 {
			return p[0] != 0 || p[1] != 0 || p[2] != 0
		}
		w := i / 64
		for j := int64(0); j < w; j++ {
			if p[j] != 0 {
				return true
			}
		}
		return p[w]&(uint64(1)<<uint(i%64)-1) != 0
	}

	// Fraction classification: the half bit sits at position k-1.
	top := TruncatedPartZero
	if limbBit(k-1) != 0 {
		top = TruncatedPartEqualToHalf
	}
	part = truncatedPartWithSticky(top, anyBelow(k-1) || sticky)

	// Integer part: p >> k, word-wise. Go defines shifts of 64 or more
	// as zero, so the boundary cases fall out naturally.
	w, b := int(k/64), uint(k%64)
	var q [3]uint64
	for i := 0; i+w < 3; i++ {
		q[i] = p[i+w] >> b
		if b > 0 && i+w+1 < 3 {
			q[i] |= p[i+w+1] << (64 - b)
		}
	}
	return q[0], q[1] != 0 || q[2] != 0, part
}
