package fixdec

import "errors"

var (
	ErrScaleRange        = errors.New("scale out of range")
	ErrPrecisionRange    = errors.New("precision out of range")
	ErrExponentRange     = errors.New("exponent out of range")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNegativeRoot      = errors.New("square root of negative value")
	ErrInvalidDecimal    = errors.New("invalid decimal")
	ErrNotFinite         = errors.New("not a finite number")
	ErrOverflow          = errors.New("overflow")
	ErrRoundingNecessary = errors.New("rounding necessary")
)
