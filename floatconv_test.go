package fixdec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToFloat64(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfEven, Checked)

	// Exactly representable values convert without rounding.
	z, err := a.ToFloat64(25) // 0.25
	require.NoError(t, err)
	require.Equal(t, 0.25, z)

	z, err = a.ToFloat64(-150)
	require.NoError(t, err)
	require.Equal(t, -1.5, z)

	z, err = a.ToFloat64(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, z)

	// Inexact values land on the nearest double, matching the literal.
	z, err = a.ToFloat64(10)
	require.NoError(t, err)
	require.Equal(t, 0.1, z)

	z, err = a.ToFloat64(-12345)
	require.NoError(t, err)
	require.Equal(t, -123.45, z)
}

// With HALF_EVEN the conversion agrees with the correctly rounded float
// division for every operand the double can represent exactly.
func TestToFloat64MatchesDivision(t *testing.T) {
	values := []int64{1, 3, 7, 10, 99, 12345, -12345, 1_000_000_007, -999_999_999_999}
	for _, s := range []int{0, 2, 9, 18} {
		a := MustArithmeticFor(s, RoundHalfEven, Checked)
		f := float64(a.One())
		for _, x := range values {
			z, err := a.ToFloat64(x)
			require.NoError(t, err)
			require.Equal(t, float64(x)/f, z, "scale %d value %d", s, x)
		}
	}
}

func TestToFloat64Unnecessary(t *testing.T) {
	a := MustArithmeticFor(2, RoundUnnecessary, Checked)

	z, err := a.ToFloat64(25)
	require.NoError(t, err)
	require.Equal(t, 0.25, z)

	_, err = a.ToFloat64(10) // 0.1 has no exact double
	require.ErrorIs(t, err, ErrRoundingNecessary)
}

func TestToFloat32(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfEven, Checked)

	z, err := a.ToFloat32(25)
	require.NoError(t, err)
	require.Equal(t, float32(0.25), z)

	z, err = a.ToFloat32(10)
	require.NoError(t, err)
	require.Equal(t, float32(0.1), z)

	z, err = a.ToFloat32(-12345)
	require.NoError(t, err)
	require.Equal(t, float32(-123.45), z)

	z, err = a.ToFloat32(0)
	require.NoError(t, err)
	require.Equal(t, float32(0), z)
}

func TestFromFloat64(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfEven, Checked)

	testcases := []struct {
		name string
		v    float64
		want int64
	}{
		{"exact quarter", 0.25, 25},
		{"negative", -1.5, -150},
		{"zero", 0, 0},
		{"negative zero", math.Copysign(0, -1), 0},
		{"tenth", 0.1, 10},
		{"price", 123.45, 12345},
		{"whole", 42, 4200},
		{"rounds excess", 0.001, 0}, // below half a unit
		{"rounds excess up", 0.009, 1},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			z, err := a.FromFloat64(tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.want, z)
		})
	}
}

func TestFromFloat64Errors(t *testing.T) {
	a := MustArithmeticFor(0, RoundHalfEven, Checked)

	_, err := a.FromFloat64(math.NaN())
	require.ErrorIs(t, err, ErrNotFinite)
	_, err = a.FromFloat64(math.Inf(1))
	require.ErrorIs(t, err, ErrNotFinite)
	_, err = a.FromFloat64(math.Inf(-1))
	require.ErrorIs(t, err, ErrNotFinite)

	// Conversion overflow fails in either overflow mode.
	_, err = a.FromFloat64(1e19)
	require.ErrorIs(t, err, ErrOverflow)
	u := MustArithmeticFor(0, RoundHalfEven, Unchecked)
	_, err = u.FromFloat64(1e19)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = u.FromFloat64(-1e19)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestFromFloat64Subnormal(t *testing.T) {
	a := MustArithmeticFor(18, RoundHalfEven, Checked)

	// The smallest positive double truncates to zero.
	z, err := a.FromFloat64(5e-324)
	require.NoError(t, err)
	require.Equal(t, int64(0), z)

	// But it is not zero, so UP pulls it away from zero.
	up := MustArithmeticFor(18, RoundUp, Checked)
	z, err = up.FromFloat64(5e-324)
	require.NoError(t, err)
	require.Equal(t, int64(1), z)

	z, err = up.FromFloat64(-5e-324)
	require.NoError(t, err)
	require.Equal(t, int64(-1), z)
}

func TestFromFloat32(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfEven, Checked)

	z, err := a.FromFloat32(0.25)
	require.NoError(t, err)
	require.Equal(t, int64(25), z)

	z, err = a.FromFloat32(-1.5)
	require.NoError(t, err)
	require.Equal(t, int64(-150), z)

	z, err = a.FromFloat32(0)
	require.NoError(t, err)
	require.Equal(t, int64(0), z)

	_, err = a.FromFloat32(float32(math.NaN()))
	require.ErrorIs(t, err, ErrNotFinite)
	_, err = a.FromFloat32(float32(math.Inf(1)))
	require.ErrorIs(t, err, ErrNotFinite)
}

// Converting to a double and back recovers the value whenever the decimal has
// at most 15 significant digits.
func TestFloatRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 25, 12345, -12345, 999_999_999_999_999, -987_654_321_012_345}
	for _, s := range []int{0, 2, 9} {
		a := MustArithmeticFor(s, RoundHalfEven, Checked)
		for _, x := range values {
			f, err := a.ToFloat64(x)
			require.NoError(t, err)
			z, err := a.FromFloat64(f)
			require.NoError(t, err)
			require.Equal(t, x, z, "scale %d value %d", s, x)
		}
	}
}
