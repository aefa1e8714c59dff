// SPDX-License-Identifier: MIT

package wrapiter

// Cursor is a raw position within a contiguous sequence of T.
// C is the concrete cursor type itself, so Move can return it unboxed.
type Cursor[C any, T any] interface {
	// Load returns the element n positions away from the cursor.
	Load(n int) T

	// Offset returns the position within the underlying sequence.
	Offset() int

	// Move returns a copy of the cursor shifted by n positions.
	Move(n int) C
}

// Mutable is a Cursor that can also write through to the sequence.
type Mutable[C any, T any] interface {
	Cursor[C, T]

	// Store overwrites the element n positions away from the cursor.
	Store(n int, v T)

	// Addr returns the address of the element n positions away from the cursor.
	Addr(n int) *T
}

// Converter is implemented by cursors that convert to cursor type D.
type Converter[D any] interface {
	Convert() D
}

// Ptr is a read-write cursor over a slice.
type Ptr[T any] struct {
	seq []T
	off int
}

// ConstPtr is a read-only cursor over a slice.
type ConstPtr[T any] struct {
	seq []T
	off int
}

// Compile-time conformance.
var (
	_ Mutable[Ptr[int], int]     = Ptr[int]{}
	_ Cursor[ConstPtr[int], int] = ConstPtr[int]{}
	_ Converter[ConstPtr[int]]   = Ptr[int]{}
)

// NewPtr returns a read-write cursor at offset off of seq.
func NewPtr[T any](seq []T, off int) Ptr[T] { return Ptr[T]{seq: seq, off: off} }

// NewConstPtr returns a read-only cursor at offset off of seq.
func NewConstPtr[T any](seq []T, off int) ConstPtr[T] { return ConstPtr[T]{seq: seq, off: off} }

func (p Ptr[T]) Load(n int) T      { return p.seq[p.off+n] }
func (p Ptr[T]) Offset() int       { return p.off }
func (p Ptr[T]) Store(n int, v T)  { p.seq[p.off+n] = v }
func (p Ptr[T]) Addr(n int) *T     { return &p.seq[p.off+n] }
func (p Ptr[T]) Move(n int) Ptr[T] { p.off += n; return p }

// Convert drops write access.
func (p Ptr[T]) Convert() ConstPtr[T] { return ConstPtr[T](p) }

func (p ConstPtr[T]) Load(n int) T           { return p.seq[p.off+n] }
func (p ConstPtr[T]) Offset() int            { return p.off }
func (p ConstPtr[T]) Move(n int) ConstPtr[T] { p.off += n; return p }
