package fixdec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmp(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	require.Equal(t, 0, a.Cmp(100, 100))
	require.Equal(t, -1, a.Cmp(99, 100))
	require.Equal(t, 1, a.Cmp(100, 99))
	require.Equal(t, -1, a.Cmp(-100, 100))
}

func TestCompareUnscaled(t *testing.T) {
	testcases := []struct {
		name           string
		x              int64
		xScale         int
		y              int64
		yScale         int
		want           int
	}{
		{"same scale", 100, 2, 99, 2, 1},
		{"equal across scales", 100, 2, 1, 0, 0},
		{"greater across scales", 101, 2, 1, 0, 1},
		{"less across scales", 99, 2, 1, 0, -1},
		{"swapped scales", 1, 0, 100, 2, 0},
		{"zero against zero", 0, 5, 0, 12, 0},
		{"zero against negative", 0, 5, -1, 12, 1},
		{"signs decide", -1, 18, 1, 0, -1},
		{"huge against tiny", math.MaxInt64, 0, 1, 18, 1},
		{"tiny against huge", 1, 18, math.MaxInt64, 0, -1},
		{"min against min finer", math.MinInt64, 0, math.MinInt64, 18, -1},
		{"equal max across widest gap", 1, 0, 1_000_000_000_000_000_000, 18, 0},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := CompareUnscaled(tc.x, tc.xScale, tc.y, tc.yScale)
			require.NoError(t, err)
			require.Equal(t, tc.want, c)
		})
	}

	_, err := CompareUnscaled(1, 19, 1, 0)
	require.ErrorIs(t, err, ErrScaleRange)
	_, err = CompareUnscaled(1, 0, 1, -1)
	require.ErrorIs(t, err, ErrScaleRange)
}

func TestCmpToUnscaled(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	c, err := a.CmpToUnscaled(150, 15, 1) // 1.50 vs 1.5
	require.NoError(t, err)
	require.Equal(t, 0, c)

	c, err = a.CmpToUnscaled(150, 2, 0) // 1.50 vs 2
	require.NoError(t, err)
	require.Equal(t, -1, c)

	_, err = a.CmpToUnscaled(150, 15, 99)
	require.ErrorIs(t, err, ErrScaleRange)
}
