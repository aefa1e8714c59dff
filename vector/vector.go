// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/nani/dim"
	"github.com/katalvlaran/nani/meta"
	"github.com/katalvlaran/nani/smath"
	"github.com/katalvlaran/nani/staticarray"
	"github.com/katalvlaran/nani/wrapiter"
)

// Vector is a fixed-dimension tuple of F. The zero value is the zero vector.
type Vector[F smath.Float, N dim.Dim] struct {
	x staticarray.Array[F, N]
}

// New builds a vector from exactly N components.
// Returns ErrArity when len(vals) differs from N.
func New[F smath.Float, N dim.Dim](vals ...F) (Vector[F, N], error) {
	x, err := staticarray.New[F, N](vals...)
	if err != nil {
		return Vector[F, N]{}, fmt.Errorf("vector.New: got %d components for dimension %d: %w",
			len(vals), dim.Len[N](), ErrArity)
	}

	return Vector[F, N]{x: x}, nil
}

// Vec1 builds a one-dimensional vector from a scalar.
func Vec1[F smath.Float](x F) Vector[F, dim.D1] {
	var v Vector[F, dim.D1]
	v.x.Set(0, x)
	return v
}

// Vec2 builds a two-dimensional vector.
func Vec2[F smath.Float](x, y F) Vector[F, dim.D2] {
	return Create(staticarray.MustNew[F, dim.D2](x, y))
}

// Vec3 builds a three-dimensional vector.
func Vec3[F smath.Float](x, y, z F) Vector[F, dim.D3] {
	return Create(staticarray.MustNew[F, dim.D3](x, y, z))
}

// Vec4 builds a four-dimensional vector.
func Vec4[F smath.Float](x, y, z, w F) Vector[F, dim.D4] {
	return Create(staticarray.MustNew[F, dim.D4](x, y, z, w))
}

// Create builds a vector that takes a copy of a as its components.
func Create[F smath.Float, N dim.Dim](a staticarray.Array[F, N]) Vector[F, N] {
	return Vector[F, N]{x: a}
}

// Fill returns a vector whose components all equal value.
func Fill[F smath.Float, N dim.Dim](value F) Vector[F, N] {
	var v Vector[F, N]
	v.x.Fill(value)
	return v
}

// Unit returns the basis vector e_i: all zeros except a one at index i.
//
// Behavior highlights:
//   - Debug builds (nanidebug tag) reject i outside [0, N) with ErrOutOfRange.
//   - Normal builds do not check; an invalid i panics in the runtime bounds
//     check when the one is written.
func Unit[F smath.Float, N dim.Dim](i int) (Vector[F, N], error) {
	v := Fill[F, N](0)
	if meta.IsDebugBuild() {
		if n := dim.Len[N](); i < 0 || i >= n {
			return v, fmt.Errorf("vector.Unit(%d) for dimension %d: %w", i, n, ErrOutOfRange)
		}
	}
	v.x.Set(i, 1)

	return v, nil
}

// ToScalar converts a one-dimensional vector to its only component.
func ToScalar[F smath.Float](v Vector[F, dim.D1]) F {
	return v.x.At(0)
}

// Len returns N.
func (a Vector[F, N]) Len() int { return dim.Len[N]() }

// At returns component i.
func (a Vector[F, N]) At(i int) F { return a.x.At(i) }

// Ref returns the address of component i.
func (a *Vector[F, N]) Ref(i int) *F { return a.x.Ref(i) }

// Set stores value at component i.
func (a *Vector[F, N]) Set(i int, value F) { a.x.Set(i, value) }

// Array returns a copy of the backing container.
func (a Vector[F, N]) Array() staticarray.Array[F, N] { return a.x }

// Begin returns a read-write iterator at the first component.
func (a *Vector[F, N]) Begin() wrapiter.Iterator[wrapiter.Ptr[F], F] { return a.x.Begin() }

// End returns a read-write iterator one past the last component.
func (a *Vector[F, N]) End() wrapiter.Iterator[wrapiter.Ptr[F], F] { return a.x.End() }

// CBegin returns a read-only iterator at the first component.
func (a *Vector[F, N]) CBegin() wrapiter.Iterator[wrapiter.ConstPtr[F], F] { return a.x.CBegin() }

// CEnd returns a read-only iterator one past the last component.
func (a *Vector[F, N]) CEnd() wrapiter.Iterator[wrapiter.ConstPtr[F], F] { return a.x.CEnd() }

// AddAssign adds b component-wise into the receiver (a += b).
func (a *Vector[F, N]) AddAssign(b Vector[F, N]) *Vector[F, N] {
	for i := range dim.Len[N]() {
		*a.x.Ref(i) += b.At(i)
	}

	return a
}

// SubAssign subtracts b component-wise from the receiver (a -= b).
func (a *Vector[F, N]) SubAssign(b Vector[F, N]) *Vector[F, N] {
	for i := range dim.Len[N]() {
		*a.x.Ref(i) -= b.At(i)
	}

	return a
}

// Add returns a + b.
func (a Vector[F, N]) Add(b Vector[F, N]) Vector[F, N] {
	return *a.AddAssign(b)
}

// Sub returns a - b.
func (a Vector[F, N]) Sub(b Vector[F, N]) Vector[F, N] {
	return *a.SubAssign(b)
}

// Equal reports whether no component of a differs from b's: |a_i - b_i| <= 0
// for every i. Any NaN component makes the vectors unequal.
func (a Vector[F, N]) Equal(b Vector[F, N]) bool {
	for i := range dim.Len[N]() {
		if !(smath.Abs(a.At(i)-b.At(i)) <= 0) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (a Vector[F, N]) NotEqual(b Vector[F, N]) bool { return !a.Equal(b) }

// ApproxEqual reports whether every component pair is smath.Close under opts.
func (a Vector[F, N]) ApproxEqual(b Vector[F, N], opts ...smath.Option) bool {
	o := smath.Gather(opts...)
	for i := range dim.Len[N]() {
		if !o.Close(float64(a.At(i)), float64(b.At(i))) {
			return false
		}
	}

	return true
}

// Dot returns the inner product sum(a_i * b_i).
func (a Vector[F, N]) Dot(b Vector[F, N]) F {
	var result F
	for i := range dim.Len[N]() {
		result += a.At(i) * b.At(i)
	}

	return result
}

// Scale returns a * s.
func (a Vector[F, N]) Scale(s F) Vector[F, N] {
	for i := range dim.Len[N]() {
		*a.x.Ref(i) *= s
	}

	return a
}

// Div returns a / s. A zero s is not checked.
func (a Vector[F, N]) Div(s F) Vector[F, N] {
	for i := range dim.Len[N]() {
		*a.x.Ref(i) /= s
	}

	return a
}

// String renders the vector as "(x0, x1, ...)".
func (a Vector[F, N]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range dim.Len[N]() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(a.At(i)), 'g', -1, smath.BitSize[F]()))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Scale returns s * a.
func Scale[F smath.Float, N dim.Dim](s F, a Vector[F, N]) Vector[F, N] {
	for i := range dim.Len[N]() {
		*a.x.Ref(i) = s * a.At(i)
	}

	return a
}

// Cross returns the scalar 2D cross product a0*b1 - a1*b0.
func Cross[F smath.Float](a, b Vector[F, dim.D2]) F {
	return a.At(0)*b.At(1) - a.At(1)*b.At(0)
}

// L2Norm returns the Euclidean length sqrt(sum(a_i^2)).
func L2Norm[F smath.Float, N dim.Dim](a Vector[F, N]) F {
	var norm F
	for i := range dim.Len[N]() {
		norm += a.At(i) * a.At(i)
	}

	return smath.Sqrt(norm)
}

// Normalize returns a scaled to unit length. The zero vector yields NaN
// components.
func Normalize[F smath.Float, N dim.Dim](a Vector[F, N]) Vector[F, N] {
	return a.Div(L2Norm(a))
}

// Normal returns a rotated 90° counter-clockwise, (-a1, a0). The result has
// a's length; it is not normalized.
func Normal[F smath.Float](a Vector[F, dim.D2]) Vector[F, dim.D2] {
	return Vec2(-a.At(1), a.At(0))
}
