// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/nani/dim"
	"github.com/katalvlaran/nani/smath"
	"github.com/katalvlaran/nani/staticarray"
	"github.com/katalvlaran/nani/vector"
	"gonum.org/v1/gonum/mat"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a fixed R×C grid of F stored as R rows of C elements.
// The zero value is the zero matrix.
type Matrix[F smath.Float, R, C dim.Dim] struct {
	x staticarray.Array[staticarray.Array[F, C], R]
}

// Compile-time assertions for gonum & fmt.Stringer conformance.
var (
	_ mat.Matrix   = Matrix[float64, dim.D3, dim.D2]{}
	_ fmt.Stringer = Matrix[float64, dim.D3, dim.D2]{}
)

// New builds a matrix from R*C values given in row-major order.
// Returns ErrArity when len(vals) differs from R*C.
func New[F smath.Float, R, C dim.Dim](vals ...F) (Matrix[F, R, C], error) {
	var m Matrix[F, R, C]
	rows, cols := dim.Len[R](), dim.Len[C]()
	if len(vals) != rows*cols {
		return m, fmt.Errorf("matrix.New: got %d values for %dx%d: %w", len(vals), rows, cols, ErrArity)
	}
	for i := range rows {
		copy(m.Row(i).Slice(), vals[i*cols:(i+1)*cols])
	}

	return m, nil
}

// Zero returns the R×C matrix with every entry zero.
func Zero[F smath.Float, R, C dim.Dim]() Matrix[F, R, C] {
	var m Matrix[F, R, C]
	for i := range dim.Len[R]() {
		m.Row(i).Fill(0)
	}

	return m
}

// Identity returns the N×N matrix with ones on the diagonal.
func Identity[F smath.Float, N dim.Dim]() Matrix[F, N, N] {
	m := Zero[F, N, N]()
	for i := range dim.Len[N]() {
		m.Set(i, i, 1)
	}

	return m
}

// FromScalar builds the 1×1 matrix holding s.
func FromScalar[F smath.Float](s F) Matrix[F, dim.D1, dim.D1] {
	var m Matrix[F, dim.D1, dim.D1]
	m.Set(0, 0, s)
	return m
}

// FromColumn builds the R×1 matrix whose single column is v.
func FromColumn[F smath.Float, R dim.Dim](v vector.Vector[F, R]) Matrix[F, R, dim.D1] {
	var m Matrix[F, R, dim.D1]
	for i := range dim.Len[R]() {
		m.Set(i, 0, v.At(i))
	}

	return m
}

// FromRow builds the 1×C matrix whose single row is v.
func FromRow[F smath.Float, C dim.Dim](v vector.Vector[F, C]) Matrix[F, dim.D1, C] {
	var m Matrix[F, dim.D1, C]
	*m.Row(0) = v.Array()
	return m
}

// ToScalar converts a 1×1 matrix to its only entry.
func ToScalar[F smath.Float](m Matrix[F, dim.D1, dim.D1]) F {
	return m.Get(0, 0)
}

// ColumnVector converts an R×1 matrix to the vector of its column.
func ColumnVector[F smath.Float, R dim.Dim](m Matrix[F, R, dim.D1]) vector.Vector[F, R] {
	var v vector.Vector[F, R]
	for i := range dim.Len[R]() {
		v.Set(i, m.Get(i, 0))
	}

	return v
}

// RowVector converts a 1×C matrix to the vector of its row.
func RowVector[F smath.Float, C dim.Dim](m Matrix[F, dim.D1, C]) vector.Vector[F, C] {
	return vector.Create(m.RowAt(0))
}

// Row returns row i for in-place reads and writes.
func (m *Matrix[F, R, C]) Row(i int) *staticarray.Array[F, C] { return m.x.Ref(i) }

// RowAt returns a copy of row i.
func (m Matrix[F, R, C]) RowAt(i int) staticarray.Array[F, C] { return m.x.At(i) }

// Get returns the entry at (i, j).
func (m Matrix[F, R, C]) Get(i, j int) F { return m.x.Ref(i).At(j) }

// Set stores v at (i, j).
func (m *Matrix[F, R, C]) Set(i, j int, v F) { m.x.Ref(i).Set(j, v) }

// ref returns the address of the entry at (i, j).
func (m *Matrix[F, R, C]) ref(i, j int) *F { return m.x.Ref(i).Ref(j) }

// Size returns the (R, C) pair.
func (m Matrix[F, R, C]) Size() staticarray.Array[int, dim.D2] {
	return staticarray.MustNew[int, dim.D2](dim.Len[R](), dim.Len[C]())
}

// Dims returns the number of rows and columns (gonum mat.Matrix).
func (m Matrix[F, R, C]) Dims() (r, c int) { return dim.Len[R](), dim.Len[C]() }

// At returns the entry at (i, j) widened to float64 (gonum mat.Matrix).
func (m Matrix[F, R, C]) At(i, j int) float64 { return float64(m.Get(i, j)) }

// T returns a lazy transpose view for gonum (mat.Matrix). Use Transpose for
// a kernel matrix.
func (m Matrix[F, R, C]) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Complexity: O(R*C).
func (m Matrix[F, R, C]) String() string {
	var sb strings.Builder
	rows, cols := m.Dims()
	for i := range rows {
		sb.WriteString(_fmtRowOpen)
		for j := range cols {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(float64(m.Get(i, j)), 'g', -1, smath.BitSize[F]()))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
