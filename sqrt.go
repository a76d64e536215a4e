package fixdec

// Sqrt calculates the square root of x at this configuration's scale, i.e.
// the integer square root of the 128-bit product x * 10^scale, with the
// remainder rounded per the configured mode. A negative operand always fails.
func (a *Arithmetic) Sqrt(x int64) (int64, error) {
	switch {
	case x < 0:
		return 0, opError("sqrt", ErrNegativeRoot, x)
	case x == 0:
		return 0, nil
	case x == a.sm.factor:
		return x, nil
	}
	root, rem := sqrt128(wideMul(uint64(x), uint64(a.sm.factor)))
	// The true root exceeds root+1/2 exactly when rem > root, since
	// (root+1/2)^2 = root^2 + root + 1/4; an exact half cannot occur.
	part := TruncatedPartZero
	switch {
	case rem == 0:
	case rem <= root:
		part = TruncatedPartLessThanHalf
	default:
		part = TruncatedPartGreaterThanHalf
	}
	inc, ok := a.rounding.roundingIncrement(false, root&1 != 0, part)
	if !ok {
		return 0, opError("sqrt", ErrRoundingNecessary, x)
	}
	if inc != 0 {
		root++
	}
	return int64(root), nil
}

// sqrt128 computes the exact truncated square root of n together with the
// remainder n - root^2, working digit by digit in base 4 over the 128-bit
// operand. For n below 2^126 both results fit in 64 bits, the remainder
// being bounded by 2*root.
func sqrt128(n u128) (root, rem uint64) {
	if n.isZero() {
		return 0, 0
	}
	var res u128
	bit := u128{lo: 1}.shl(uint((127 - n.leadingZeros()) &^ 1))
	x := n
	for !bit.isZero() {
		t := res.add(bit)
		if x.cmp(t) >= 0 {
			x = x.sub(t)
			res = res.shr(1).add(bit)
		} else {
			res = res.shr(1)
		}
		bit = bit.shr(2)
	}
	return res.lo, x.lo
}
