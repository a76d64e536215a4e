package fixdec

import (
	"fmt"
	"math"
)

// Plain-notation text conversion: [sign] digits ['.' digits], no exponent
// form. Parsing accumulates digits straight into a 64-bit magnitude with
// overflow checks; formatting walks a fixed byte buffer from the right.
// Neither direction goes through an arbitrary-precision intermediate.

// Parse converts a plain decimal literal to an unscaled value at this
// configuration's scale, rounding excess fraction digits per the configured
// mode.
func (a *Arithmetic) Parse(dec string) (int64, error) {
	return ParseUnscaled(dec, a.sm.scale, a.rounding)
}

// Format returns the plain-notation representation of x at this
// configuration's scale.
func (a *Arithmetic) Format(x int64) string {
	return formatUnscaled(x, a.sm.scale)
}

// ParseUnscaled converts a plain decimal literal to an unscaled value at the
// given scale. Fraction digits beyond the scale are classified against half
// of one unit in the last place and rounded per the given mode; a value
// outside the 64-bit range always fails with ErrOverflow.
func ParseUnscaled(dec string, scale int, rounding RoundingMode) (int64, error) {
	if _, err := MetricsOf(scale); err != nil {
		return 0, err
	}

	var (
		pos     int
		neg     bool
		mag     uint64
		hasint  bool
		kept    int
		extra   TruncatedPart
		ok      bool
	)
	width := len(dec)

	// Sign
	switch {
	case pos == width:
		// fall through to the no-digits error
	case dec[pos] == '-':
		neg = true
		pos++
	case dec[pos] == '+':
		pos++
	}

	// Integer digits
	for pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
		hasint = true
		mag, ok = accumDigit(mag, dec[pos]-'0')
		if !ok {
			return 0, fmt.Errorf("parsing %q: %w", dec, ErrOverflow)
		}
		pos++
	}
	if !hasint {
		return 0, fmt.Errorf("parsing %q: no digits: %w", dec, ErrInvalidDecimal)
	}

	// Fraction digits
	if pos < width && dec[pos] == '.' {
		pos++
		start := pos
		for pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
			d := dec[pos] - '0'
			if kept < scale {
				mag, ok = accumDigit(mag, d)
				if !ok {
					return 0, fmt.Errorf("parsing %q: %w", dec, ErrOverflow)
				}
				kept++
			} else {
				extra = extraDigit(extra, d, pos == start+scale)
			}
			pos++
		}
		if pos == start {
			return 0, fmt.Errorf("parsing %q: no digits after decimal point: %w", dec, ErrInvalidDecimal)
		}
	}
	if pos != width {
		return 0, fmt.Errorf("parsing %q: invalid character %q: %w", dec, dec[pos], ErrInvalidDecimal)
	}

	// Pad to the target scale.
	for ; kept < scale; kept++ {
		if mag > math.MaxUint64/10 {
			return 0, fmt.Errorf("parsing %q: %w", dec, ErrOverflow)
		}
		mag *= 10
	}

	inc, incOK := rounding.roundingIncrement(neg, mag&1 != 0, extra)
	if !incOK {
		return 0, fmt.Errorf("parsing %q: %w", dec, ErrRoundingNecessary)
	}
	if inc != 0 {
		mag++
		if mag == 0 {
			return 0, fmt.Errorf("parsing %q: %w", dec, ErrOverflow)
		}
	}
	z, ok := toSigned(mag, neg)
	if !ok {
		return 0, fmt.Errorf("parsing %q: %w", dec, ErrOverflow)
	}
	return z, nil
}

// accumDigit calculates mag * 10 + d and checks overflow.
func accumDigit(mag uint64, d byte) (uint64, bool) {
	if mag > (math.MaxUint64-uint64(d))/10 {
		return 0, false
	}
	return mag*10 + uint64(d), true
}

// extraDigit folds one discarded fraction digit into the running
// classification. The first discarded digit decides which side of one half
// the tail starts on; every later nonzero digit can only push it upward.
func extraDigit(part TruncatedPart, d byte, first bool) TruncatedPart {
	if first {
		switch {
		case d == 0:
			return TruncatedPartZero
		case d < 5:
			return TruncatedPartLessThanHalf
		case d == 5:
			return TruncatedPartEqualToHalf
		}
		return TruncatedPartGreaterThanHalf
	}
	if d == 0 {
		return part
	}
	switch part {
	case TruncatedPartZero:
		return TruncatedPartLessThanHalf
	case TruncatedPartEqualToHalf:
		return TruncatedPartGreaterThanHalf
	}
	return part
}

// FormatUnscaled returns the plain-notation representation of x at the given
// scale: the decimal point is inserted scale digits from the right, emitting
// exactly scale fraction digits.
func FormatUnscaled(x int64, scale int) (string, error) {
	if _, err := MetricsOf(scale); err != nil {
		return "", err
	}
	return formatUnscaled(x, scale), nil
}

func formatUnscaled(x int64, scale int) string {
	var buf [21]byte // sign + 19 digits + point
	pos := len(buf)
	m := unsignedAbs(x)

	if scale > 0 {
		for i := 0; i < scale; i++ {
			pos--
			buf[pos] = byte('0' + m%10)
			m /= 10
		}
		pos--
		buf[pos] = '.'
	}
	for {
		pos--
		buf[pos] = byte('0' + m%10)
		m /= 10
		if m == 0 {
			break
		}
	}
	if x < 0 {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
