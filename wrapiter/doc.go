// SPDX-License-Identifier: MIT

// Package wrapiter provides a random-access iterator over contiguous storage
// that is a distinct type from the raw position it wraps.
//
// What & Why:
//
//	In contiguous containers a position is just "sequence + offset". Passing
//	bare offsets (or slices) around makes it easy to mix a position in one
//	container with arithmetic meant for another. Iterator wraps a raw cursor
//	and forwards every operation to it, so code that walks a container works
//	with a dedicated type while the storage stays a plain array.
//
// Pieces:
//   - Cursor / Mutable: the contract of a raw position.
//   - Ptr[T] (read-write) and ConstPtr[T] (read-only): slice-backed cursors.
//   - Iterator[C, T]: the wrapper. Methods cover dereference, subscript,
//     pre/post increment and decrement, compound and plain offset arithmetic,
//     ordering and difference against the same iterator type.
//   - Free functions Compare, Equal, Less, ..., Distance accept iterators over
//     two different cursor types, e.g. a mutable and a read-only iterator
//     into the same array.
//   - From converts an iterator whose cursor converts to another cursor type
//     (Ptr → ConstPtr).
//
// Ordering and distance are meaningful only between iterators over the same
// sequence; nothing checks that.
//
// Complexity:
//   - Every operation is O(1) and allocation-free.
package wrapiter
