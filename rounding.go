package fixdec

// RoundingMode determines how an inexact result is mapped to a representable
// unscaled value. The modes mirror the classic decimal rounding semantics:
// UP and DOWN round away from and towards zero, CEILING and FLOOR round
// towards positive and negative infinity, the HALF modes round to the nearest
// neighbor with their respective tie-break, and UNNECESSARY asserts that no
// rounding is needed at all.
type RoundingMode uint8

const (
	RoundUp RoundingMode = iota
	RoundDown
	RoundCeiling
	RoundFloor
	RoundHalfUp
	RoundHalfDown
	RoundHalfEven
	RoundUnnecessary

	numRoundingModes = int(RoundUnnecessary) + 1
)

func (m RoundingMode) String() string {
	switch m {
	case RoundUp:
		return "UP"
	case RoundDown:
		return "DOWN"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfDown:
		return "HALF_DOWN"
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundUnnecessary:
		return "UNNECESSARY"
	}
	return "UNKNOWN"
}

// ParseRoundingMode converts a mode name as produced by String back to the mode.
func ParseRoundingMode(s string) (RoundingMode, bool) {
	for m := RoundUp; m <= RoundUnnecessary; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// TruncatedPart classifies a discarded remainder relative to half of the
// divisor. It decouples the rounding decision from the remainder's magnitude:
// every inexact operation reduces its leftover to one of these four values
// and feeds it through the same increment table.
type TruncatedPart uint8

const (
	TruncatedPartZero TruncatedPart = iota
	TruncatedPartLessThanHalf
	TruncatedPartEqualToHalf
	TruncatedPartGreaterThanHalf
)

func (p TruncatedPart) String() string {
	switch p {
	case TruncatedPartZero:
		return "ZERO"
	case TruncatedPartLessThanHalf:
		return "LESS_THAN_HALF"
	case TruncatedPartEqualToHalf:
		return "EQUAL_TO_HALF"
	case TruncatedPartGreaterThanHalf:
		return "GREATER_THAN_HALF"
	}
	return "UNKNOWN"
}

func (p TruncatedPart) isNonZero() bool {
	return p != TruncatedPartZero
}

func (p TruncatedPart) isHalfOrMore() bool {
	return p == TruncatedPartEqualToHalf || p == TruncatedPartGreaterThanHalf
}

func (p TruncatedPart) isMoreThanHalf() bool {
	return p == TruncatedPartGreaterThanHalf
}

// truncatedPartFor classifies the remainder rem of a division by divisor.
// Both values are magnitudes; rem must be less than divisor.
// For an odd divisor EQUAL_TO_HALF cannot occur.
func truncatedPartFor(rem, divisor uint64) TruncatedPart {
	if rem == 0 {
		return TruncatedPartZero
	}
	half := divisor >> 1
	switch {
	case rem < half:
		return TruncatedPartLessThanHalf
	case rem == half:
		if divisor&1 != 0 {
			// rem*2 == divisor-1
			return TruncatedPartLessThanHalf
		}
		return TruncatedPartEqualToHalf
	}
	return TruncatedPartGreaterThanHalf
}

// truncatedPartWithSticky refines a half/rest split: top carries the
// comparison against half, sticky reports any nonzero bits below it.
// It is used where the remainder is wider than 64 bits and has been reduced
// to a leading comparison plus a sticky flag.
func truncatedPartWithSticky(top TruncatedPart, sticky bool) TruncatedPart {
	if !sticky {
		return top
	}
	switch top {
	case TruncatedPartZero:
		return TruncatedPartLessThanHalf
	case TruncatedPartEqualToHalf:
		return TruncatedPartGreaterThanHalf
	}
	return top
}

// roundingIncrement is the single decision table shared by every inexact
// operation. Given the sign of the true result, the parity of the truncated
// result and the classified remainder, it returns the signed unit to add to
// the truncated result. ok is false when the mode is UNNECESSARY and a
// nonzero part was discarded.
func (m RoundingMode) roundingIncrement(neg, odd bool, part TruncatedPart) (inc int64, ok bool) {
	away := func() int64 {
		if neg {
			return -1
		}
		return 1
	}
	switch m {
	case RoundDown:
		return 0, true
	case RoundUp:
		if part.isNonZero() {
			return away(), true
		}
		return 0, true
	case RoundCeiling:
		if part.isNonZero() && !neg {
			return 1, true
		}
		return 0, true
	case RoundFloor:
		if part.isNonZero() && neg {
			return -1, true
		}
		return 0, true
	case RoundHalfUp:
		if part.isHalfOrMore() {
			return away(), true
		}
		return 0, true
	case RoundHalfDown:
		if part.isMoreThanHalf() {
			return away(), true
		}
		return 0, true
	case RoundHalfEven:
		if part.isMoreThanHalf() || (part == TruncatedPartEqualToHalf && odd) {
			return away(), true
		}
		return 0, true
	case RoundUnnecessary:
		if part.isNonZero() {
			return 0, false
		}
		return 0, true
	}
	return 0, true
}
