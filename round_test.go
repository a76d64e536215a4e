package fixdec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	testcases := []struct {
		name      string
		rounding  RoundingMode
		x         int64
		precision int
		want      int64
	}{
		{"half up on tie", RoundHalfUp, 1055, 1, 1060},
		{"half even odd keeper", RoundHalfEven, 1055, 1, 1060},
		{"half even even keeper", RoundHalfEven, 1045, 1, 1040},
		{"down", RoundDown, 159, 0, 100},
		{"up", RoundUp, 101, 0, 200},
		{"negative value floor", RoundFloor, -101, 0, -200},
		{"negative value ceiling", RoundCeiling, -199, 0, -100},
		{"full precision is identity", RoundHalfUp, 1234, 2, 1234},
		{"beyond scale is identity", RoundHalfUp, 1234, 5, 1234},
		{"negative precision", RoundHalfUp, 123456, -1, 123000}, // 1234.56 -> 1230.00
		{"exact needs no rounding", RoundUnnecessary, 1200, 0, 1200},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			a := MustArithmeticFor(2, tc.rounding, Checked)
			z, err := a.Round(tc.x, tc.precision)
			require.NoError(t, err)
			require.Equal(t, tc.want, z)
		})
	}
}

func TestRoundErrors(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	// Discarded span beyond MaxScale digits.
	_, err := a.Round(123, -17)
	require.ErrorIs(t, err, ErrPrecisionRange)

	un := MustArithmeticFor(2, RoundUnnecessary, Checked)
	_, err = un.Round(105, 1)
	require.ErrorIs(t, err, ErrRoundingNecessary)

	// Scaling the rounded value back up can overflow.
	up := MustArithmeticFor(0, RoundUp, Checked)
	_, err = up.Round(math.MaxInt64, -1)
	require.ErrorIs(t, err, ErrOverflow)

	uu := MustArithmeticFor(0, RoundUp, Unchecked)
	_, err = uu.Round(math.MaxInt64, -1)
	require.NoError(t, err)
}
