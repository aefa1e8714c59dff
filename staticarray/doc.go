// SPDX-License-Identifier: MIT

// Package staticarray provides Array[T, N], a container of exactly N values
// whose size is part of its type.
//
// What & Why:
//
//	Array is the storage layer of the vector and matrix kernels. It is a
//	plain value: it lives wherever its owner lives (usually the stack), is
//	copied by assignment and never allocates. The element count is the
//	dimension type N (see package dim), so two arrays of different sizes are
//	different types.
//
// Index policy:
//
//	The container itself validates nothing. An index outside [0, N) fails
//	the Go runtime bounds check and panics; callers own their indices.
//
// Complexity:
//   - At/Ref/Set/Len: O(1). Fill: O(N). Begin/End/CBegin/CEnd: O(1).
package staticarray
