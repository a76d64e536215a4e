package fixdec

import "math/bits"

// u128 is an unsigned 128-bit value as a hi/lo pair of 64-bit limbs.
// It is the substrate for every intermediate that can leave the 64-bit
// range: multiply, divide, square, square root, power and the binary
// floating-point conversions.
type u128 struct {
	hi, lo uint64
}

// wideMul returns the exact 128-bit product of x and y.
func wideMul(x, y uint64) u128 {
	hi, lo := bits.Mul64(x, y)
	return u128{hi: hi, lo: lo}
}

func (u u128) isZero() bool {
	return u.hi == 0 && u.lo == 0
}

func (u u128) cmp(v u128) int {
	if u.hi != v.hi {
		return cmpUint64(u.hi, v.hi)
	}
	return cmpUint64(u.lo, v.lo)
}

// add calculates u + v with silent wraparound.
func (u u128) add(v u128) u128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return u128{hi: hi, lo: lo}
}

// sub calculates u - v with silent wraparound.
func (u u128) sub(v u128) u128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return u128{hi: hi, lo: lo}
}

// shl calculates u << n. Shifts of 128 or more yield zero.
func (u u128) shl(n uint) u128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{hi: u.lo << (n - 64)}
	}
	return u128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

// shr calculates u >> n. Shifts of 128 or more yield zero.
func (u u128) shr(n uint) u128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{lo: u.hi >> (n - 64)}
	}
	return u128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

func (u u128) leadingZeros() int {
	if u.hi != 0 {
		return bits.LeadingZeros64(u.hi)
	}
	return 64 + bits.LeadingZeros64(u.lo)
}

func (u u128) isOdd() bool {
	return u.lo&1 != 0
}

// bit returns bit i of u. Positions of 128 or more read as zero.
func (u u128) bit(i uint) uint64 {
	switch {
	case i >= 128:
		return 0
	case i >= 64:
		return u.hi >> (i - 64) & 1
	}
	return u.lo >> i & 1
}

// nonzeroBelow reports whether any bit strictly below position i is set.
func (u u128) nonzeroBelow(i uint) bool {
	switch {
	case i == 0:
		return false
	case i >= 128:
		return !u.isZero()
	case i > 64:
		return u.hi&(uint64(1)<<(i-64)-1) != 0 || u.lo != 0
	case i == 64:
		return u.lo != 0
	}
	return u.lo&(uint64(1)<<i-1) != 0
}

// mulChecked calculates u * v, failing when the product leaves 128 bits.
func (u u128) mulChecked(v u128) (u128, bool) {
	top, bottom := mul256(u, v)
	if !top.isZero() {
		return u128{}, false
	}
	return bottom, true
}

// mul256 returns the full 256-bit product of x and y as 128-bit halves,
// combining four 64x64 partial products with carries.
func mul256(x, y u128) (top, bottom u128) {
	h1, l1 := bits.Mul64(x.lo, y.lo)
	h2, l2 := bits.Mul64(x.hi, y.lo)
	h3, l3 := bits.Mul64(x.lo, y.hi)
	h4, l4 := bits.Mul64(x.hi, y.hi)

	b1, c1 := bits.Add64(h1, l2, 0)
	b1, c2 := bits.Add64(b1, l3, 0)

	t0, c3 := bits.Add64(l4, h2, 0)
	t0, c4 := bits.Add64(t0, h3, 0)
	t0, c5 := bits.Add64(t0, c1+c2, 0)
	t1 := h4 + c3 + c4 + c5

	return u128{hi: t1, lo: t0}, u128{hi: b1, lo: l1}
}

// div128by64 divides u by d, returning the 64-bit quotient and remainder.
// ok is false when d is zero or the true quotient needs more than 64 bits.
func div128by64(u u128, d uint64) (q, r uint64, ok bool) {
	if d == 0 || u.hi >= d {
		return 0, 0, false
	}
	q, r = bits.Div64(u.hi, u.lo, d)
	return q, r, true
}

// div128by64Wrap divides u by d, returning the low 64 bits of the true
// quotient and the true remainder. d must be nonzero.
//
// Reducing the high limb modulo d first keeps the bits.Div64 precondition
// while preserving both the remainder and the quotient's low limb:
// with u.hi = a*d + b, the true quotient is a*2^64 + (b*2^64 + u.lo)/d.
func div128by64Wrap(u u128, d uint64) (q, r uint64) {
	return bits.Div64(u.hi%d, u.lo, d)
}

// div128Rounded divides the magnitude u by d, applies the rounding mode for a
// result of the given sign, and returns the signed 64-bit quotient.
// In checked mode a quotient outside the int64 range fails with ErrOverflow;
// in unchecked mode it wraps. A nonzero remainder under UNNECESSARY fails
// with ErrRoundingNecessary in either mode.
func div128Rounded(u u128, d uint64, neg bool, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if overflow == Unchecked {
		q, r := div128by64Wrap(u, d)
		inc, ok := rounding.roundingIncrement(neg, q&1 != 0, truncatedPartFor(r, d))
		if !ok {
			return 0, ErrRoundingNecessary
		}
		if inc != 0 {
			q++
		}
		if neg {
			return -int64(q), nil
		}
		return int64(q), nil
	}
	q, r, ok := div128by64(u, d)
	if !ok {
		return 0, ErrOverflow
	}
	inc, ok := rounding.roundingIncrement(neg, q&1 != 0, truncatedPartFor(r, d))
	if !ok {
		return 0, ErrRoundingNecessary
	}
	if inc != 0 {
		if q == ^uint64(0) {
			return 0, ErrOverflow
		}
		q++
	}
	z, ok := toSigned(q, neg)
	if !ok {
		return 0, ErrOverflow
	}
	return z, nil
}
