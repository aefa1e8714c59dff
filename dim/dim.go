// SPDX-License-Identifier: MIT

// Package dim encodes compile-time dimensions as types.
//
// Go generics cannot be parameterized by integers, so every size used by the
// kernel is a distinct zero-size type (D0 … D8). Sized containers carry their
// dimension as a type parameter, which makes Vector[float64, D2] and
// Vector[float64, D3] different types: mixing them is a compile error, never a
// runtime check.
//
// Limits:
//   - The dimension set is sealed at D8, so no container exceeds 8 per axis.
//   - Storage is always MaxLen slots: a Vector[float64, D2] occupies 64 bytes
//     and every float64 Matrix occupies 512, whatever its shape.
//
// Complexity:
//   - Len[N]() is O(1) and is inlined to a constant by the compiler.
package dim

// MaxLen is the largest dimension the kernel can represent. Sized containers
// reserve exactly MaxLen slots of storage and use the first Len[N]() of them.
const MaxLen = 8

// D0 is the empty dimension.
type D0 struct{}

// D1 is a one-element dimension.
type D1 struct{}

// D2 is a two-element dimension.
type D2 struct{}

// D3 is a three-element dimension.
type D3 struct{}

// D4 is a four-element dimension.
type D4 struct{}

// D5 is a five-element dimension.
type D5 struct{}

// D6 is a six-element dimension.
type D6 struct{}

// D7 is a seven-element dimension.
type D7 struct{}

// D8 is an eight-element dimension.
type D8 struct{}

func (D0) Len() int { return 0 }
func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }

// Dim is the sealed set of dimension types. The union keeps user-defined
// types out, so no dimension can exceed MaxLen.
type Dim interface {
	D0 | D1 | D2 | D3 | D4 | D5 | D6 | D7 | D8
	Len() int
}

// Small is the subset of dimensions accepted by permutation expansions
// (determinant, permanent). Beyond five the R! term count stops being cheap.
type Small interface {
	D0 | D1 | D2 | D3 | D4 | D5
	Len() int
}

// Len returns the size encoded by N.
func Len[N Dim]() int {
	var n N
	return n.Len()
}
