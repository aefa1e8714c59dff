// SPDX-License-Identifier: MIT

// Package vector provides Vector[F, N], a point in an N-dimensional real
// space whose dimension is part of its type.
//
// What & Why:
//
//	Mesh and finite-volume codes juggle millions of tiny vectors (face
//	normals, fluxes, gradients). Vector keeps them on the stack, checks
//	dimensions at compile time and spells each operator as a method:
//
//	  a + b  → a.Add(b)          a * b  → a.Dot(b)
//	  a - b  → a.Sub(b)          a * s  → a.Scale(s), s * a → Scale(s, a)
//	  a += b → a.AddAssign(b)    a / s  → a.Div(s)
//	  a == b → a.Equal(b)        a ^ b  → Cross(a, b)   (2D only)
//
// Dimension-restricted operations are free functions whose signatures fix
// the dimension: Vec1/ToScalar (N = 1), Cross/Normal (N = 2).
//
// Numeric policy:
//   - Equal is exact: every component pair must satisfy |a_i - b_i| <= 0.
//     ApproxEqual takes smath tolerance options.
//   - Div and Normalize never check for zero; IEEE Inf/NaN propagate.
//
// Complexity:
//   - Every operation is O(N) and allocation-free.
package vector
