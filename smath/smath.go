// SPDX-License-Identifier: MIT

package smath

import (
	"cmp"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any built-in floating-point type.
type Float interface {
	constraints.Float
}

// MaxNewtonIterations bounds the NewtonSqrt loop. Starting from 1, reaching
// sqrt(MaxFloat64) needs about 520 halvings; the rest is headroom for inputs
// whose tolerance cannot be met exactly in floating point.
const MaxNewtonIterations = 2048

// Abs returns a if a is non-negative, otherwise -a.
func Abs[T Number](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// Factorial returns n! by recursive multiplication; Factorial(0) == 1.
// Overflow is not detected.
func Factorial(n uint) uint {
	if n == 0 {
		return 1
	}

	return n * Factorial(n-1)
}

// Pow returns a raised to the non-negative integer power n, computed by n
// repeated multiplications starting from 1. Pow(a, 0) == 1 for every a,
// including zero.
func Pow[T Number](a T, n uint) T {
	result := T(1)
	for ; n != 0; n-- {
		result *= a
	}

	return result
}

// Max returns a when a > b, otherwise b. Ties return b.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Epsilon returns the machine epsilon of F: 2^-23 for float32, 2^-52 for float64.
func Epsilon[F Float]() F {
	if is32[F]() {
		return F(0x1p-23)
	}

	return F(0x1p-52)
}

// Sqrt returns the square root of a using the native routine for F's width.
// Negative inputs yield NaN.
func Sqrt[F Float](a F) F {
	if is32[F]() {
		return F(math32.Sqrt(float32(a)))
	}

	return F(math.Sqrt(float64(a)))
}

// NewtonSqrt returns the square root of a by Newton–Raphson iteration.
//
// Implementation:
//   - Stage 1: dispose of inputs the iteration cannot handle: NaN and
//     negatives give NaN, zero gives zero, +Inf gives +Inf.
//   - Stage 2: r = 1; while |a - r*r| > eps*a: r = (r + a/r) / 2.
//
// The loop stops after MaxNewtonIterations even when the tolerance was not
// met, so the call always terminates.
//
// Complexity:
//   - O(log a) iterations to reach the quadratic regime, then O(1).
func NewtonSqrt[F Float](a F) F {
	switch {
	case a != a || a < 0:
		return F(math.NaN())
	case a == 0:
		return 0
	case math.IsInf(float64(a), 1):
		return a
	}

	tol := Epsilon[F]() * a
	result := F(1)
	for i := 0; i < MaxNewtonIterations && Abs(a-result*result) > tol; i++ {
		result = (result + a/result) / 2
	}

	return result
}

// BitSize returns the width of F in bits: 32 or 64.
func BitSize[F Float]() int {
	if is32[F]() {
		return 32
	}

	return 64
}

// is32 reports whether F is a 32-bit float.
func is32[F Float]() bool {
	var zero F
	return unsafe.Sizeof(zero) == 4
}
