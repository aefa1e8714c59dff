// SPDX-License-Identifier: MIT

// Package nani is a small fixed-size linear-algebra kernel for 2D/3D style
// geometry: vectors and matrices whose dimensions are part of their type, so
// shape mismatches are compile errors rather than runtime checks.
//
// What is in the box?
//
//   - dim/         : dimension marker types D0…D8 and the Dim / Small constraints
//   - smath/       : generic scalar helpers (Abs, Pow, Factorial, Sqrt, NewtonSqrt) + tolerances
//   - staticarray/ : Array[T, N], a value-semantics fixed-size container
//   - wrapiter/    : random-access Iterator over a cursor (mutable Ptr, read-only ConstPtr)
//   - vector/      : Vector[F, N]: arithmetic, dot, 2D cross, norm, normalize, normal
//   - matrix/      : Matrix[F, R, C]: arithmetic, products, transpose, determinant, gonum interop
//   - meta/        : build-time debug switch (-tags nanidebug)
//
// Quick example:
//
//	a := vector.Vec2(3.0, 4.0)
//	n := vector.Normalize(a)                    // (0.6, 0.8)
//	m, _ := matrix.New[float64, dim.D2, dim.D2](1, 2, 3, 4)
//	d := matrix.Determinant(m)                  // -2
//	y := m.MulVec(a)                            // (11, 25)
//
// All types are plain values: no allocation, no locking, no hidden state.
// Storage is sized to dim.MaxLen and only the first N slots are live.
//
//	go get github.com/katalvlaran/nani
package nani
