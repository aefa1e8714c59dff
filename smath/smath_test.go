// SPDX-License-Identifier: MIT

package smath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nani/smath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestAbs covers negative, zero and positive inputs across integer and float types.
func TestAbs(t *testing.T) {
	assert.Equal(t, 3, smath.Abs(-3))
	assert.Equal(t, 0, smath.Abs(0))
	assert.Equal(t, 2.5, smath.Abs(2.5))
	assert.Equal(t, 2.5, smath.Abs(-2.5))
	assert.Equal(t, float32(1.25), smath.Abs(float32(-1.25)))
	assert.Equal(t, uint(7), smath.Abs(uint(7))) // unsigned values are never negative
}

// TestFactorial checks the base case and a few small values.
func TestFactorial(t *testing.T) {
	cases := []struct {
		n    uint
		want uint
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{5, 120},
		{10, 3628800},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, smath.Factorial(tc.n), "n=%d", tc.n)
	}
}

// TestPow checks repeated multiplication, including the zero exponent on a zero base.
func TestPow(t *testing.T) {
	assert.Equal(t, 1.0, smath.Pow(0.0, 0))
	assert.Equal(t, 1.0, smath.Pow(123.4, 0))
	assert.Equal(t, 0.0, smath.Pow(0.0, 3))
	assert.Equal(t, 1024, smath.Pow(2, 10))
	assert.Equal(t, -8.0, smath.Pow(-2.0, 3))
	assert.Equal(t, 0.25, smath.Pow(0.5, 2))
}

// TestMax checks ordering and the tie rule (ties return the second argument).
func TestMax(t *testing.T) {
	assert.Equal(t, 5, smath.Max(5, 3))
	assert.Equal(t, 5, smath.Max(3, 5))
	assert.Equal(t, "b", smath.Max("a", "b"))

	// Ties return b: distinguishable with signed zeros, since 0.0 > -0.0 is false.
	negZero := math.Copysign(0, -1)
	got := smath.Max(0.0, negZero)
	assert.True(t, math.Signbit(got), "tie must return b (-0)")
}

// TestEpsilon verifies the machine epsilon for both float widths.
func TestEpsilon(t *testing.T) {
	assert.Equal(t, 0x1p-52, smath.Epsilon[float64]())
	assert.Equal(t, float32(0x1p-23), smath.Epsilon[float32]())
	assert.Equal(t, 1.0, 1.0+smath.Epsilon[float64]()/2)
}

// TestSqrtNative checks the run-time path for both widths.
func TestSqrtNative(t *testing.T) {
	assert.Equal(t, 5.0, smath.Sqrt(25.0))
	assert.Equal(t, math.Sqrt(2), smath.Sqrt(2.0))
	assert.Equal(t, float32(3), smath.Sqrt(float32(9)))
	assert.True(t, math.IsNaN(smath.Sqrt(-1.0)))
}

// TestNewtonSqrtAgreesWithNative compares the iterative path against math.Sqrt.
func TestNewtonSqrtAgreesWithNative(t *testing.T) {
	inputs := []float64{1e-10, 0.25, 0.5, 1, 2, 3, 9, 10, 25, 1234.5678, 1e10, 1e300}
	for _, a := range inputs {
		got := smath.NewtonSqrt(a)
		want := math.Sqrt(a)
		require.True(t, floats.EqualWithinAbsOrRel(got, want, 0, 1e-15), "a=%g got=%v want=%v", a, got, want)
		require.LessOrEqual(t, smath.Abs(a-got*got), 4*smath.Epsilon[float64]()*a, "a=%g", a)
	}
}

// TestNewtonSqrtFloat32 runs the iteration in single precision.
func TestNewtonSqrtFloat32(t *testing.T) {
	got := smath.NewtonSqrt(float32(2))
	assert.InDelta(t, math.Sqrt2, float64(got), 1e-6)
}

// TestNewtonSqrtEdgeCases pins the decisions for inputs the plain iteration cannot handle.
func TestNewtonSqrtEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, smath.NewtonSqrt(0.0))
	assert.True(t, math.IsNaN(smath.NewtonSqrt(-4.0)))
	assert.True(t, math.IsNaN(smath.NewtonSqrt(math.NaN())))
	assert.True(t, math.IsInf(smath.NewtonSqrt(math.Inf(1)), 1))

	// Subnormal input: the tolerance underflows to zero, the iteration cap ends the loop.
	tiny := 5e-324
	assert.InEpsilon(t, math.Sqrt(tiny), smath.NewtonSqrt(tiny), 1e-6)
}

// TestBitSize verifies the float width probe.
func TestBitSize(t *testing.T) {
	assert.Equal(t, 32, smath.BitSize[float32]())
	assert.Equal(t, 64, smath.BitSize[float64]())
}
