// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/nani/dim"
	"github.com/katalvlaran/nani/smath"
	"github.com/katalvlaran/nani/vector"
)

// AddAssign adds b element-wise into the receiver (a += b).
func (m *Matrix[F, R, C]) AddAssign(b Matrix[F, R, C]) *Matrix[F, R, C] {
	for i := range dim.Len[R]() {
		for j := range dim.Len[C]() {
			*m.ref(i, j) += b.Get(i, j)
		}
	}

	return m
}

// SubAssign subtracts b element-wise from the receiver (a -= b).
func (m *Matrix[F, R, C]) SubAssign(b Matrix[F, R, C]) *Matrix[F, R, C] {
	for i := range dim.Len[R]() {
		for j := range dim.Len[C]() {
			*m.ref(i, j) -= b.Get(i, j)
		}
	}

	return m
}

// Add returns the element-wise sum a + b.
// Implementation:
//   - Stage 1: Copy a (value receiver).
//   - Stage 2: Accumulate b into the copy row by row.
//
// Complexity:
//   - Time O(R*C), Space O(1) beyond the returned value.
func (m Matrix[F, R, C]) Add(b Matrix[F, R, C]) Matrix[F, R, C] { return *m.AddAssign(b) }

// Sub returns the element-wise difference a - b.
// Complexity:
//   - Time O(R*C), Space O(1) beyond the returned value.
func (m Matrix[F, R, C]) Sub(b Matrix[F, R, C]) Matrix[F, R, C] { return *m.SubAssign(b) }

// Scale returns every entry multiplied by s.
func (m Matrix[F, R, C]) Scale(s F) Matrix[F, R, C] {
	for i := range dim.Len[R]() {
		for j := range dim.Len[C]() {
			*m.ref(i, j) *= s
		}
	}

	return m
}

// Div returns every entry divided by s. A zero s is not checked.
func (m Matrix[F, R, C]) Div(s F) Matrix[F, R, C] {
	for i := range dim.Len[R]() {
		for j := range dim.Len[C]() {
			*m.ref(i, j) /= s
		}
	}

	return m
}

// Scale returns s * m (scalar on the left).
func Scale[F smath.Float, R, C dim.Dim](s F, m Matrix[F, R, C]) Matrix[F, R, C] {
	return m.Scale(s)
}

// MulVec returns the column product y = M × v.
// Implementation:
//   - Stage 1: View each row of M as a vector of length C.
//   - Stage 2: y[i] = row_i · v.
//
// Determinism:
//   - Fixed i→j order; row i is reduced left to right.
//
// Complexity:
//   - Time O(R*C), Space O(R) for the result.
func (m Matrix[F, R, C]) MulVec(v vector.Vector[F, C]) vector.Vector[F, R] {
	var y vector.Vector[F, R]
	for i := range dim.Len[R]() {
		y.Set(i, vector.Create(m.RowAt(i)).Dot(v))
	}

	return y
}

// VecMul returns the row product y = v × M.
// Complexity:
//   - Time O(R*C), Space O(C) for the result.
func VecMul[F smath.Float, R, C dim.Dim](v vector.Vector[F, R], m Matrix[F, R, C]) vector.Vector[F, C] {
	var y vector.Vector[F, C]
	for j := range dim.Len[C]() {
		var sum F
		for i := range dim.Len[R]() {
			sum += v.At(i) * m.Get(i, j)
		}
		y.Set(j, sum)
	}

	return y
}

// Mul performs standard matrix multiplication P = A × B.
// Implementation:
//   - Stage 1: Shapes are checked by the type system: A is R×S, B is S×T.
//   - Stage 2: P[i,j] = sum_k A[i,k]*B[k,j] with a fixed i→j→k order.
//
// Behavior highlights:
//   - No zero-skipping, so NaN and Inf propagate exactly as in the scalar sum.
//
// Determinism:
//   - Each entry is reduced in increasing k.
//
// Complexity:
//   - Time O(R*S*T), Space O(R*T) for the result.
func Mul[F smath.Float, R, S, T dim.Dim](a Matrix[F, R, S], b Matrix[F, S, T]) Matrix[F, R, T] {
	var p Matrix[F, R, T]
	inner := dim.Len[S]()
	for i := range dim.Len[R]() {
		for j := range dim.Len[T]() {
			var sum F
			for k := range inner {
				sum += a.Get(i, k) * b.Get(k, j)
			}
			p.Set(i, j, sum)
		}
	}

	return p
}

// Outer returns the R×C outer product a ⊗ b with P[i,j] = a_i * b_j.
func Outer[F smath.Float, R, C dim.Dim](a vector.Vector[F, R], b vector.Vector[F, C]) Matrix[F, R, C] {
	var p Matrix[F, R, C]
	for i := range dim.Len[R]() {
		for j := range dim.Len[C]() {
			p.Set(i, j, a.At(i)*b.At(j))
		}
	}

	return p
}

// Transpose returns the C×R matrix mᵀ.
// Complexity:
//   - Time O(R*C), Space O(R*C).
//
// Notes:
//   - Transpose is a full materialization; T() gives gonum a lazy view instead.
func Transpose[F smath.Float, R, C dim.Dim](m Matrix[F, R, C]) Matrix[F, C, R] {
	var t Matrix[F, C, R]
	for i := range dim.Len[R]() {
		for j := range dim.Len[C]() {
			t.Set(j, i, m.Get(i, j))
		}
	}

	return t
}

// Equal reports whether every entry pair satisfies |a - b| <= 0.
// Any NaN entry makes the matrices unequal.
func (m Matrix[F, R, C]) Equal(b Matrix[F, R, C]) bool {
	for i := range dim.Len[R]() {
		if !vector.Create(m.RowAt(i)).Equal(vector.Create(b.RowAt(i))) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m Matrix[F, R, C]) NotEqual(b Matrix[F, R, C]) bool { return !m.Equal(b) }

// ApproxEqual reports whether every entry pair is smath.Close under opts.
func (m Matrix[F, R, C]) ApproxEqual(b Matrix[F, R, C], opts ...smath.Option) bool {
	o := smath.Gather(opts...)
	for i := range dim.Len[R]() {
		for j := range dim.Len[C]() {
			if !o.Close(float64(m.Get(i, j)), float64(b.Get(i, j))) {
				return false
			}
		}
	}

	return true
}
