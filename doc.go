/*
Package fixdec implements fixed-point decimal arithmetic on 64-bit integers.
It is specifically designed for use in transactional financial systems.

# Representation

A value is a raw int64 holding the unscaled representation of a decimal
number: the numeric value is unscaled / 10^scale, where the scale is the fixed
number of fraction digits, between 0 and 18. The scale is not stored with the
value; it is carried by the [Arithmetic] configuration the value is used with.
For example, the unscaled value 12345 at scale 2 represents 123.45.

Because values are plain integers, slices of them are dense, comparisons of
same-scale values are native, and arithmetic allocates nothing.

# Arithmetic

[Arithmetic] bundles a scale, a [RoundingMode] and an [OverflowMode] into an
immutable operation surface:

	a := fixdec.MustArithmeticFor(2, fixdec.RoundHalfEven, fixdec.Checked)
	x, _ := a.Parse("123.45")
	y, _ := a.Parse("0.55")
	z, _ := a.Add(x, y)
	s := a.Format(z) // "124.00"

Instances come from a fixed table built once per process and are safe for
unsynchronized concurrent use.

# Rounding

Inexact results are rounded per the configured [RoundingMode]: UP, DOWN,
CEILING, FLOOR, HALF_UP, HALF_DOWN, HALF_EVEN or UNNECESSARY. UNNECESSARY
asserts exactness and fails with [ErrRoundingNecessary] when any nonzero part
is discarded.

# Overflow

The [OverflowMode] determines what happens when a true result does not fit in
64 bits. [Checked] fails with [ErrOverflow]; [Unchecked] wraps in two's
complement, with well-defined wrapped bits rather than an arbitrary wrong
value. Rounding assertions and the conversions to and from floating point fail
on overflow in either mode.

# Operations

Beyond the basic arithmetic (addition, subtraction, multiplication, division,
negation, absolute value), the package provides square, square root, integer
powers, overflow-safe averaging, binary shifts with rounding, rounding to a
given precision, cross-scale comparison, plain-notation string conversion and
bit-exact conversion to and from IEEE-754 binary floating point. All
operations with 128-bit intermediates are computed exactly before a single
rounding step.
*/
package fixdec
