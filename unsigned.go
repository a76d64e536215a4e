package fixdec

// Helpers for treating 64-bit values under unsigned semantics.
// Signed operations work on magnitudes wherever an intermediate could pass
// 2^63-1; these keep the sign handling in one place.

// unsignedAbs returns |x| as a uint64.
// Unlike absInt64 it is total: the magnitude of MinInt64 is representable.
func unsignedAbs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// cmpUint64 compares x and y and returns -1, 0 or +1.
func cmpUint64(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// toSigned converts a magnitude and sign back to an int64.
// ok is false when the value does not fit; the wrapped low 64 bits are
// returned regardless so that unchecked callers can use them.
func toSigned(mag uint64, neg bool) (z int64, ok bool) {
	if neg {
		if mag > 1<<63 {
			return -int64(mag), false
		}
		return -int64(mag), true
	}
	if mag > 1<<63-1 {
		return int64(mag), false
	}
	return int64(mag), true
}
