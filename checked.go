package fixdec

import "math"

// Overflow-signalling primitives on raw 64-bit integers.
// Each returns the two's-complement wraparound result together with ok=false
// when the mathematical result does not fit in 64 bits, so that the unchecked
// paths can reuse the wrapped value and the checked paths can fail.

// addInt64 calculates x + y and checks overflow.
func addInt64(x, y int64) (z int64, ok bool) {
	z = x + y
	// Overflow iff both operands have the sign opposite to the result.
	return z, (x^z)&(y^z) >= 0
}

// subInt64 calculates x - y and checks overflow.
func subInt64(x, y int64) (z int64, ok bool) {
	z = x - y
	return z, (x^y)&(x^z) >= 0
}

// mulInt64 calculates x * y and checks overflow.
// The cheap sign-bit test covers the MinInt64 corner; the division test
// covers the rest.
func mulInt64(x, y int64) (z int64, ok bool) {
	z = x * y
	if x == 0 || y == 0 {
		return z, true
	}
	if x == math.MinInt64 && y == -1 || y == math.MinInt64 && x == -1 {
		return z, false
	}
	return z, z/y == x
}

// divInt64 calculates x / y, truncating towards zero, and checks overflow.
// The only overflowing quotient is MinInt64 / -1, which wraps to MinInt64.
// Division by zero must be excluded by the caller.
func divInt64(x, y int64) (z int64, ok bool) {
	if x == math.MinInt64 && y == -1 {
		return math.MinInt64, false
	}
	return x / y, true
}

// negInt64 calculates -x and checks overflow.
func negInt64(x int64) (z int64, ok bool) {
	return -x, x != math.MinInt64
}

// absInt64 calculates |x| and checks overflow.
func absInt64(x int64) (z int64, ok bool) {
	if x < 0 {
		return negInt64(x)
	}
	return x, true
}
