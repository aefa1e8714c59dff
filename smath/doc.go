// SPDX-License-Identifier: MIT

// Package smath provides the scalar primitives the vector and matrix kernels
// are built on: Abs, Factorial, Pow, Sqrt, Max.
//
// Square root comes in two flavours:
//
//   - Sqrt delegates to the platform routine (math.Sqrt for float64,
//     math32.Sqrt for float32). This is the run-time path used by L2 norms.
//   - NewtonSqrt runs a deterministic Newton–Raphson iteration from an
//     initial guess of 1 until |a - r*r| <= eps*a. It uses only basic
//     arithmetic and gives identical results on every platform.
//
// Close compares two scalars under absolute/relative tolerances configured
// with functional options (WithAbsTol, WithRelTol). The defaults are zero,
// i.e. exact comparison, matching the kernel's equality operators.
package smath
