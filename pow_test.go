package fixdec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowInteger(t *testing.T) {
	a := MustArithmeticFor(0, RoundHalfUp, Checked)

	testcases := []struct {
		name string
		x    int64
		exp  int
		want int64
	}{
		{"two to ten", 2, 10, 1024},
		{"three to four", 3, 4, 81},
		{"ten to eighteen", 10, 18, 1_000_000_000_000_000_000},
		{"negative base odd", -2, 3, -8},
		{"negative base even", -2, 2, 4},
		{"one to anything", 1, 999_999_999, 1},
		{"minus one even", -1, 1000, 1},
		{"minus one odd", -1, 999, -1},
		{"zero exponent", 7, 0, 1},
		{"zero base", 0, 5, 0},
		{"first power", 42, 1, 42},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			z, err := a.Pow(tc.x, tc.exp)
			require.NoError(t, err)
			require.Equal(t, tc.want, z)
		})
	}

	_, err := a.Pow(10, 19)
	require.ErrorIs(t, err, ErrOverflow)

	u := MustArithmeticFor(0, RoundHalfUp, Unchecked)
	_, err = u.Pow(10, 19) // wraps silently
	require.NoError(t, err)
}

func TestPowFractional(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	// 1.05^10 = 1.62889462677744140625
	z, err := a.Pow(105, 10)
	require.NoError(t, err)
	require.Equal(t, int64(163), z)

	d := MustArithmeticFor(2, RoundDown, Checked)
	z, err = d.Pow(105, 10)
	require.NoError(t, err)
	require.Equal(t, int64(162), z)

	// 0.5^2 = 0.25 exactly
	z, err = a.Pow(50, 2)
	require.NoError(t, err)
	require.Equal(t, int64(25), z)

	// (-1.05)^3 = -1.157625
	z, err = a.Pow(-105, 3)
	require.NoError(t, err)
	require.Equal(t, int64(-116), z)

	// 1.05^100 = 131.50125...
	z, err = a.Pow(105, 100)
	require.NoError(t, err)
	require.Equal(t, int64(13150), z)
}

// A power whose exact value is representable at the target scale must come
// back exactly under every mode: DOWN must not undershoot it and UNNECESSARY
// must accept it.
func TestPowExactFraction(t *testing.T) {
	d := MustArithmeticFor(2, RoundDown, Checked)

	// 1.1^2 = 1.21 exactly
	z, err := d.Pow(110, 2)
	require.NoError(t, err)
	require.Equal(t, int64(121), z)

	// 0.2^2 = 0.04 exactly
	z, err = d.Pow(20, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), z)

	un := MustArithmeticFor(2, RoundUnnecessary, Checked)
	z, err = un.Pow(110, 2)
	require.NoError(t, err)
	require.Equal(t, int64(121), z)

	// 0.2^5 = 0.00032 exactly at scale 5
	un5 := MustArithmeticFor(5, RoundUnnecessary, Checked)
	z, err = un5.Pow(20000, 5)
	require.NoError(t, err)
	require.Equal(t, int64(32), z)

	// 1.25^-2 = 0.64 exactly
	z, err = un.Pow(125, -2)
	require.NoError(t, err)
	require.Equal(t, int64(64), z)

	// (-1.1)^3 = -1.331 exactly at scale 3
	un3 := MustArithmeticFor(3, RoundUnnecessary, Checked)
	z, err = un3.Pow(-1100, 3)
	require.NoError(t, err)
	require.Equal(t, int64(-1331), z)
}

func TestPowNegativeExponent(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	// 2^-2 = 0.25 exactly
	z, err := a.Pow(200, -2)
	require.NoError(t, err)
	require.Equal(t, int64(25), z)

	// 4^-1 via the invert special case
	z, err = a.Pow(400, -1)
	require.NoError(t, err)
	require.Equal(t, int64(25), z)

	// 1.05^-10 = 0.61391325...
	z, err = a.Pow(105, -10)
	require.NoError(t, err)
	require.Equal(t, int64(61), z)

	// 3^-1 = 0.333...
	z, err = a.Pow(300, -1)
	require.NoError(t, err)
	require.Equal(t, int64(33), z)

	// An exact reciprocal power satisfies UNNECESSARY.
	un := MustArithmeticFor(2, RoundUnnecessary, Checked)
	z, err = un.Pow(200, -2)
	require.NoError(t, err)
	require.Equal(t, int64(25), z)
}

func TestPowErrors(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	_, err := a.Pow(100, MaxPowExponent+1)
	require.ErrorIs(t, err, ErrExponentRange)
	_, err = a.Pow(100, MinPowExponent-1)
	require.ErrorIs(t, err, ErrExponentRange)

	_, err = a.Pow(0, -1)
	require.ErrorIs(t, err, ErrDivisionByZero)

	// 1.05^1000 is astronomically large.
	_, err = a.Pow(105, 1000)
	require.ErrorIs(t, err, ErrOverflow)

	un := MustArithmeticFor(2, RoundUnnecessary, Checked)
	_, err = un.Pow(105, 10)
	require.ErrorIs(t, err, ErrRoundingNecessary)
}

func TestPowSpecialBases(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	z, err := a.Pow(100, 12345) // 1^n
	require.NoError(t, err)
	require.Equal(t, int64(100), z)

	z, err = a.Pow(-100, 12345) // (-1)^odd
	require.NoError(t, err)
	require.Equal(t, int64(-100), z)

	z, err = a.Pow(-100, 12346) // (-1)^even
	require.NoError(t, err)
	require.Equal(t, int64(100), z)

	z, err = a.Pow(0, 0) // by convention
	require.NoError(t, err)
	require.Equal(t, int64(100), z)

	z, err = a.Pow(math.MinInt64, 1)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), z)
}
