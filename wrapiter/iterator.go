// SPDX-License-Identifier: MIT

package wrapiter

import (
	"cmp"
	"iter"
)

// Iterator wraps a raw cursor C over elements of type T and forwards every
// operation to it. It never owns the sequence; copying an Iterator copies
// the position only.
type Iterator[C Cursor[C, T], T any] struct {
	cur C
}

// Wrap returns an Iterator positioned where c is.
func Wrap[C Cursor[C, T], T any](c C) Iterator[C, T] {
	return Iterator[C, T]{cur: c}
}

// Begin returns a read-write iterator at the first element of s.
func Begin[T any](s []T) Iterator[Ptr[T], T] {
	return Wrap[Ptr[T], T](NewPtr(s, 0))
}

// End returns a read-write iterator one past the last element of s.
func End[T any](s []T) Iterator[Ptr[T], T] {
	return Wrap[Ptr[T], T](NewPtr(s, len(s)))
}

// CBegin returns a read-only iterator at the first element of s.
func CBegin[T any](s []T) Iterator[ConstPtr[T], T] {
	return Wrap[ConstPtr[T], T](NewConstPtr(s, 0))
}

// CEnd returns a read-only iterator one past the last element of s.
func CEnd[T any](s []T) Iterator[ConstPtr[T], T] {
	return Wrap[ConstPtr[T], T](NewConstPtr(s, len(s)))
}

// From builds an Iterator[D, T] from an iterator whose cursor converts to D,
// e.g. a read-only iterator from a read-write one:
//
//	c := wrapiter.From[wrapiter.ConstPtr[float64]](it)
func From[D Cursor[D, T], S interface {
	Cursor[S, T]
	Converter[D]
}, T any](it Iterator[S, T]) Iterator[D, T] {
	return Iterator[D, T]{cur: it.cur.Convert()}
}

// Base returns the wrapped cursor.
func (it Iterator[C, T]) Base() C { return it.cur }

// Offset returns the position within the underlying sequence.
func (it Iterator[C, T]) Offset() int { return it.cur.Offset() }

// Value dereferences the iterator.
func (it Iterator[C, T]) Value() T { return it.cur.Load(0) }

// At returns the element n positions away, like it[n].
func (it Iterator[C, T]) At(n int) T { return it.cur.Load(n) }

// Inc advances by one (pre-increment) and returns the receiver.
func (it *Iterator[C, T]) Inc() *Iterator[C, T] {
	it.cur = it.cur.Move(1)
	return it
}

// Dec steps back by one (pre-decrement) and returns the receiver.
func (it *Iterator[C, T]) Dec() *Iterator[C, T] {
	it.cur = it.cur.Move(-1)
	return it
}

// PostInc advances by one and returns the position held before the move.
func (it *Iterator[C, T]) PostInc() Iterator[C, T] {
	prev := *it
	it.Inc()
	return prev
}

// PostDec steps back by one and returns the position held before the move.
func (it *Iterator[C, T]) PostDec() Iterator[C, T] {
	prev := *it
	it.Dec()
	return prev
}

// AddAssign advances by n in place (it += n).
func (it *Iterator[C, T]) AddAssign(n int) *Iterator[C, T] {
	it.cur = it.cur.Move(n)
	return it
}

// SubAssign steps back by n in place (it -= n).
func (it *Iterator[C, T]) SubAssign(n int) *Iterator[C, T] {
	it.cur = it.cur.Move(-n)
	return it
}

// Add returns a copy advanced by n (it + n).
func (it Iterator[C, T]) Add(n int) Iterator[C, T] {
	return *it.AddAssign(n)
}

// Sub returns a copy moved back by n (it - n).
func (it Iterator[C, T]) Sub(n int) Iterator[C, T] {
	return *it.SubAssign(n)
}

// Distance returns it - o in elements.
func (it Iterator[C, T]) Distance(o Iterator[C, T]) int { return it.Offset() - o.Offset() }

func (it Iterator[C, T]) Equal(o Iterator[C, T]) bool     { return it.Offset() == o.Offset() }
func (it Iterator[C, T]) NotEqual(o Iterator[C, T]) bool  { return !it.Equal(o) }
func (it Iterator[C, T]) Less(o Iterator[C, T]) bool      { return it.Offset() < o.Offset() }
func (it Iterator[C, T]) LessEq(o Iterator[C, T]) bool    { return it.Offset() <= o.Offset() }
func (it Iterator[C, T]) Greater(o Iterator[C, T]) bool   { return it.Offset() > o.Offset() }
func (it Iterator[C, T]) GreaterEq(o Iterator[C, T]) bool { return it.Offset() >= o.Offset() }

// AddTo returns it advanced by n; the n + it spelling of Iterator.Add.
func AddTo[C Cursor[C, T], T any](n int, it Iterator[C, T]) Iterator[C, T] {
	return it.Add(n)
}

// Store writes v at the iterator's position. Only read-write cursors qualify.
func Store[C Mutable[C, T], T any](it Iterator[C, T], v T) {
	it.cur.Store(0, v)
}

// Addr returns the address of the element under the iterator, giving member
// access to struct elements. Only read-write cursors qualify.
func Addr[C Mutable[C, T], T any](it Iterator[C, T]) *T {
	return it.cur.Addr(0)
}

// Compare orders two iterators over possibly different cursor types by
// position: -1, 0 or +1.
func Compare[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) int {
	return cmp.Compare(a.Offset(), b.Offset())
}

// Equal reports whether a and b point at the same position.
func Equal[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) bool {
	return Compare(a, b) == 0
}

// NotEqual is the negation of Equal.
func NotEqual[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) bool {
	return !Equal(a, b)
}

// Less reports whether a is before b.
func Less[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) bool {
	return Compare(a, b) < 0
}

// LessEq reports whether a is not after b.
func LessEq[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a is after b.
func Greater[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) bool {
	return Compare(a, b) > 0
}

// GreaterEq reports whether a is not before b.
func GreaterEq[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) bool {
	return Compare(a, b) >= 0
}

// Distance returns a - b in elements.
func Distance[A Cursor[A, T], B Cursor[B, T], T any](a Iterator[A, T], b Iterator[B, T]) int {
	return a.Offset() - b.Offset()
}

// Values yields the elements in [begin, end).
func Values[C Cursor[C, T], T any](begin, end Iterator[C, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; it.Less(end); it.Inc() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
