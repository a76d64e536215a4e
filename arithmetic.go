package fixdec

import "fmt"

// OverflowMode determines what happens when the true result of an operation
// does not fit in 64 bits.
type OverflowMode uint8

const (
	// Unchecked silently wraps overflowing results in two's complement.
	// The wrapped bits are well defined, not merely "some wrong value".
	Unchecked OverflowMode = iota
	// Checked fails overflowing operations with ErrOverflow.
	Checked
)

const numOverflowModes = int(Checked) + 1

func (o OverflowMode) String() string {
	switch o {
	case Unchecked:
		return "UNCHECKED"
	case Checked:
		return "CHECKED"
	}
	return "UNKNOWN"
}

// Arithmetic is the operation surface for one (scale, rounding, overflow)
// configuration. Operands and results are raw unscaled 64-bit integers whose
// decimal meaning is value * 10^-scale; the configuration is baked in, so an
// instance is an immutable strategy safe for unsynchronized concurrent use.
//
// Instances come from a fixed table built once per process; deriving a
// different configuration returns a different instance and never mutates the
// receiver.
type Arithmetic struct {
	sm       *ScaleMetrics
	rounding RoundingMode
	overflow OverflowMode
}

// arithmetics is the fixed 19x8x2 instance table.
var arithmetics = func() [MaxScale + 1][numRoundingModes][numOverflowModes]Arithmetic {
	var as [MaxScale + 1][numRoundingModes][numOverflowModes]Arithmetic
	for s := MinScale; s <= MaxScale; s++ {
		for r := 0; r < numRoundingModes; r++ {
			for o := 0; o < numOverflowModes; o++ {
				as[s][r][o] = Arithmetic{
					sm:       &scaleMetrics[s],
					rounding: RoundingMode(r),
					overflow: OverflowMode(o),
				}
			}
		}
	}
	return as
}()

// ArithmeticFor returns the shared instance for the given configuration.
func ArithmeticFor(scale int, rounding RoundingMode, overflow OverflowMode) (*Arithmetic, error) {
	switch {
	case scale < MinScale || scale > MaxScale:
		return nil, fmt.Errorf("scale %d not in [%d, %d]: %w", scale, MinScale, MaxScale, ErrScaleRange)
	case int(rounding) >= numRoundingModes:
		return nil, fmt.Errorf("unknown rounding mode %d: %w", rounding, ErrInvalidDecimal)
	case int(overflow) >= numOverflowModes:
		return nil, fmt.Errorf("unknown overflow mode %d: %w", overflow, ErrInvalidDecimal)
	}
	return &arithmetics[scale][rounding][overflow], nil
}

// MustArithmeticFor is like [ArithmeticFor] but panics on invalid
// configuration. It simplifies initialization of variables holding a fixed
// configuration.
func MustArithmeticFor(scale int, rounding RoundingMode, overflow OverflowMode) *Arithmetic {
	a, err := ArithmeticFor(scale, rounding, overflow)
	if err != nil {
		panic(fmt.Sprintf("MustArithmeticFor(%v, %v, %v) failed: %v", scale, rounding, overflow, err))
	}
	return a
}

// Scale returns the number of fraction digits of this configuration.
func (a *Arithmetic) Scale() int {
	return a.sm.scale
}

// ScaleMetrics returns the constant table of this configuration's scale.
func (a *Arithmetic) ScaleMetrics() *ScaleMetrics {
	return a.sm
}

// RoundingMode returns the configured rounding mode.
func (a *Arithmetic) RoundingMode() RoundingMode {
	return a.rounding
}

// OverflowMode returns the configured overflow mode.
func (a *Arithmetic) OverflowMode() OverflowMode {
	return a.overflow
}

// One returns the unscaled representation of 1 at this scale.
func (a *Arithmetic) One() int64 {
	return a.sm.factor
}

// DeriveScale returns the instance with the given scale and this instance's
// rounding and overflow modes.
func (a *Arithmetic) DeriveScale(scale int) (*Arithmetic, error) {
	return ArithmeticFor(scale, a.rounding, a.overflow)
}

// DeriveRounding returns the instance with the given rounding mode and this
// instance's scale and overflow mode.
func (a *Arithmetic) DeriveRounding(rounding RoundingMode) (*Arithmetic, error) {
	return ArithmeticFor(a.sm.scale, rounding, a.overflow)
}

// DeriveOverflow returns the instance with the given overflow mode and this
// instance's scale and rounding mode.
func (a *Arithmetic) DeriveOverflow(overflow OverflowMode) (*Arithmetic, error) {
	return ArithmeticFor(a.sm.scale, a.rounding, overflow)
}

// opError attaches operation context to a sentinel error.
func opError(op string, err error, args ...int64) error {
	return fmt.Errorf("%s%v failed: %w", op, args, err)
}
