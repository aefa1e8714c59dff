// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[F, R, C], a fixed R×C grid of F whose shape
// is part of its type, and the small-matrix algebra built on it.
//
// What & Why:
//
//	A Matrix[F, R, C] is a linear map from C-dimensional to R-dimensional
//	space. It is stored as R rows, each a staticarray.Array[F, C], lives on
//	the stack and never allocates. Every operand shape is checked by the
//	compiler:
//
//	  a + b, a - b   → a.Add(b), a.Sub(b)              (same R×C)
//	  a * v          → a.MulVec(v)                      (R×C · C → R)
//	  v * a          → VecMul(v, a)                     (R · R×C → C)
//	  a * b          → Mul(a, b)                        (R×S · S×T → R×T)
//	  a * s, s * a   → a.Scale(s), Scale(s, a)
//	  a / s          → a.Div(s)
//	  outer(u, v)    → Outer(u, v)                      (R, C → R×C)
//	  det(a)         → Determinant(a)                   (square, R ≤ 5)
//
// Shape-restricted constructors and conversions (Identity, FromScalar,
// FromColumn, FromRow, ToScalar, ColumnVector, RowVector) fix the shape in
// their signatures.
//
// Determinant and permanent:
//
//	Both expand over all R! permutations of the row indices, enumerated in
//	lexicographic order from the identity. Determinant weights each term by
//	the permutation's sign (Leibniz); Permanent does not. The permutation
//	count grows factorially, so both accept only dim.Small shapes (R ≤ 5);
//	larger matrices do not compile.
//
// gonum interop:
//
//	Matrix implements gonum.org/v1/gonum/mat.Matrix (Dims, At, T), so a
//	kernel matrix can be handed to any gonum routine that reads a Matrix.
//
// Complexity:
//   - Add/Sub/Scale/Div/Outer: O(R*C). MulVec/VecMul: O(R*C).
//   - Mul: O(R*S*T). Determinant/Permanent: O(R! * R).
package matrix
