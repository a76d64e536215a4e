package fixdec

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	// MinScale is the smallest supported number of fraction digits.
	MinScale = 0
	// MaxScale is the largest supported number of fraction digits.
	// 10^MaxScale is the largest power of ten that fits in an int64.
	MaxScale = 18
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [MaxScale + 1]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// ScaleMetrics is the immutable constant table for one scale in
// [MinScale, MaxScale]: the scale factor 10^scale, its bit geometry, the
// representable integral range, and the multiply/divide/modulo-by-scale-factor
// primitives every operation module is built from.
//
// There is exactly one instance per scale for the lifetime of the process;
// obtain it with [MetricsOf].
type ScaleMetrics struct {
	scale       int
	factor      int64
	nlz         int   // leading zeros of factor
	maxIntegral int64 // largest whole number representable at this scale
	minIntegral int64 // smallest whole number representable at this scale
}

// scaleMetrics holds the 19 singletons, indexed by scale.
var scaleMetrics = func() [MaxScale + 1]ScaleMetrics {
	var sms [MaxScale + 1]ScaleMetrics
	for s := MinScale; s <= MaxScale; s++ {
		f := pow10[s]
		sms[s] = ScaleMetrics{
			scale:       s,
			factor:      f,
			nlz:         bits.LeadingZeros64(uint64(f)),
			maxIntegral: math.MaxInt64 / f,
			minIntegral: math.MinInt64 / f,
		}
	}
	return sms
}()

// MetricsOf returns the constant table for the given scale.
func MetricsOf(scale int) (*ScaleMetrics, error) {
	if scale < MinScale || scale > MaxScale {
		return nil, fmt.Errorf("scale %d not in [%d, %d]: %w", scale, MinScale, MaxScale, ErrScaleRange)
	}
	return &scaleMetrics[scale], nil
}

// MustMetricsOf is like [MetricsOf] but panics on an invalid scale.
// It simplifies initialization of variables holding metrics for a fixed scale.
func MustMetricsOf(scale int) *ScaleMetrics {
	sm, err := MetricsOf(scale)
	if err != nil {
		panic(fmt.Sprintf("MustMetricsOf(%v) failed: %v", scale, err))
	}
	return sm
}

// Scale returns the number of fraction digits.
func (sm *ScaleMetrics) Scale() int {
	return sm.scale
}

// ScaleFactor returns 10^scale.
func (sm *ScaleMetrics) ScaleFactor() int64 {
	return sm.factor
}

// FactorLeadingZeros returns the number of leading zero bits in the scale factor.
func (sm *ScaleMetrics) FactorLeadingZeros() int {
	return sm.nlz
}

// MaxIntegerValue returns the largest whole number representable at this
// scale, i.e. MaxInt64 / 10^scale truncated.
func (sm *ScaleMetrics) MaxIntegerValue() int64 {
	return sm.maxIntegral
}

// MinIntegerValue returns the smallest whole number representable at this
// scale, i.e. MinInt64 / 10^scale truncated.
func (sm *ScaleMetrics) MinIntegerValue() int64 {
	return sm.minIntegral
}

// MulByScaleFactor calculates x * 10^scale with silent wraparound.
func (sm *ScaleMetrics) MulByScaleFactor(x int64) int64 {
	return x * sm.factor
}

// MulByScaleFactorChecked calculates x * 10^scale and checks overflow.
func (sm *ScaleMetrics) MulByScaleFactorChecked(x int64) (int64, bool) {
	if sm.scale == 0 {
		return x, true
	}
	return mulInt64(x, sm.factor)
}

// DivByScaleFactor calculates x / 10^scale, truncating towards zero.
func (sm *ScaleMetrics) DivByScaleFactor(x int64) int64 {
	return x / sm.factor
}

// ModByScaleFactor calculates x % 10^scale. The result carries the sign of x.
func (sm *ScaleMetrics) ModByScaleFactor(x int64) int64 {
	return x % sm.factor
}

// DivRemByScaleFactor calculates both x / 10^scale and x % 10^scale.
func (sm *ScaleMetrics) DivRemByScaleFactor(x int64) (q, r int64) {
	q = x / sm.factor
	return q, x - q*sm.factor
}

// WideMulByScaleFactor returns the exact 128-bit product x * 10^scale.
// It is the substrate the conversion components build their oversized
// intermediates on.
func (sm *ScaleMetrics) WideMulByScaleFactor(x uint64) u128 {
	return wideMul(x, uint64(sm.factor))
}
