package fixdec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticFor(t *testing.T) {
	a, err := ArithmeticFor(2, RoundHalfUp, Checked)
	require.NoError(t, err)
	require.Equal(t, 2, a.Scale())
	require.Equal(t, RoundHalfUp, a.RoundingMode())
	require.Equal(t, Checked, a.OverflowMode())
	require.Equal(t, int64(100), a.One())
	require.Same(t, MustMetricsOf(2), a.ScaleMetrics())

	// Instances are shared singletons.
	b := MustArithmeticFor(2, RoundHalfUp, Checked)
	require.Same(t, a, b)

	_, err = ArithmeticFor(19, RoundHalfUp, Checked)
	require.ErrorIs(t, err, ErrScaleRange)
	_, err = ArithmeticFor(-1, RoundHalfUp, Checked)
	require.ErrorIs(t, err, ErrScaleRange)
	require.Panics(t, func() { MustArithmeticFor(19, RoundHalfUp, Checked) })
}

func TestArithmeticDerive(t *testing.T) {
	a := MustArithmeticFor(2, RoundHalfUp, Checked)

	b, err := a.DeriveScale(9)
	require.NoError(t, err)
	require.Equal(t, 9, b.Scale())
	require.Equal(t, RoundHalfUp, b.RoundingMode())
	require.Equal(t, Checked, b.OverflowMode())

	c, err := a.DeriveRounding(RoundFloor)
	require.NoError(t, err)
	require.Equal(t, 2, c.Scale())
	require.Equal(t, RoundFloor, c.RoundingMode())

	d, err := a.DeriveOverflow(Unchecked)
	require.NoError(t, err)
	require.Equal(t, Unchecked, d.OverflowMode())
	require.Same(t, MustArithmeticFor(2, RoundHalfUp, Unchecked), d)

	// The receiver is never mutated.
	require.Equal(t, 2, a.Scale())
	require.Equal(t, RoundHalfUp, a.RoundingMode())
	require.Equal(t, Checked, a.OverflowMode())

	_, err = a.DeriveScale(42)
	require.ErrorIs(t, err, ErrScaleRange)
}

func TestOverflowModeString(t *testing.T) {
	require.Equal(t, "UNCHECKED", Unchecked.String())
	require.Equal(t, "CHECKED", Checked.String())
}
