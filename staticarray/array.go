// SPDX-License-Identifier: MIT

package staticarray

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nani/dim"
	"github.com/katalvlaran/nani/wrapiter"
)

// Array is a fixed-size sequence of exactly dim.Len[N]() values of T.
// The zero value holds N zero values.
type Array[T any, N dim.Dim] struct {
	v [dim.MaxLen]T // slots past Len() are never read or written
}

// New builds an array from exactly N values.
// Returns ErrArity when len(vals) differs from N.
func New[T any, N dim.Dim](vals ...T) (Array[T, N], error) {
	var a Array[T, N]
	if n := dim.Len[N](); len(vals) != n {
		return a, fmt.Errorf("staticarray.New: got %d values for dimension %d: %w", len(vals), n, ErrArity)
	}
	copy(a.v[:], vals)

	return a, nil
}

// MustNew is New for values known to be well-formed, such as package-level
// literals. It panics on ErrArity.
func MustNew[T any, N dim.Dim](vals ...T) Array[T, N] {
	a, err := New[T, N](vals...)
	if err != nil {
		panic(err)
	}

	return a
}

// Len returns N.
func (a *Array[T, N]) Len() int { return dim.Len[N]() }

// Slice returns the live elements as a slice aliasing the array's storage.
func (a *Array[T, N]) Slice() []T {
	n := dim.Len[N]()
	return a.v[:n:n]
}

// At returns the element at index i.
func (a *Array[T, N]) At(i int) T { return a.Slice()[i] }

// Ref returns the address of the element at index i.
func (a *Array[T, N]) Ref(i int) *T { return &a.Slice()[i] }

// Set stores v at index i.
func (a *Array[T, N]) Set(i int, v T) { a.Slice()[i] = v }

// Fill overwrites every element with v and returns the receiver.
func (a *Array[T, N]) Fill(v T) *Array[T, N] {
	s := a.Slice()
	for i := range s {
		s[i] = v
	}

	return a
}

// Begin returns a read-write iterator at the first element.
func (a *Array[T, N]) Begin() wrapiter.Iterator[wrapiter.Ptr[T], T] {
	return wrapiter.Begin(a.Slice())
}

// End returns a read-write iterator one past the last element.
func (a *Array[T, N]) End() wrapiter.Iterator[wrapiter.Ptr[T], T] {
	return wrapiter.End(a.Slice())
}

// CBegin returns a read-only iterator at the first element.
func (a *Array[T, N]) CBegin() wrapiter.Iterator[wrapiter.ConstPtr[T], T] {
	return wrapiter.CBegin(a.Slice())
}

// CEnd returns a read-only iterator one past the last element.
func (a *Array[T, N]) CEnd() wrapiter.Iterator[wrapiter.ConstPtr[T], T] {
	return wrapiter.CEnd(a.Slice())
}

// All yields index/value pairs in index order.
func (a *Array[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements in index order.
func (a *Array[T, N]) Values() iter.Seq[T] {
	return wrapiter.Values(a.CBegin(), a.CEnd())
}
