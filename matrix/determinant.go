// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/nani/dim"
	"github.com/katalvlaran/nani/smath"
	"github.com/katalvlaran/nani/staticarray"
)

// Determinant returns det(A) by the Leibniz expansion
//
//	det(A) = sum over σ of sgn(σ) * prod_i A[i, σ(i)].
//
// Implementation:
//   - Stage 1: Start from the identity permutation.
//   - Stage 2: Visit all R! permutations in lexicographic order, tracking the
//     parity of the swaps made by each step.
//   - Stage 3: Add or subtract the product of the selected entries.
//
// Behavior highlights:
//   - R is restricted to dim.Small (at most 5), so at most 120 terms.
//   - The 0×0 determinant is 1 (one empty product).
//
// Complexity:
//   - Time O(R! * R), Space O(R).
func Determinant[F smath.Float, R dim.Small](a Matrix[F, R, R]) F {
	return expand(a, true)
}

// Permanent returns the unsigned permutation sum
//
//	perm(A) = sum over σ of prod_i A[i, σ(i)].
//
// It shares the traversal of Determinant but never flips a sign, so it equals
// the determinant only when every signed term is zero or positive.
func Permanent[F smath.Float, R dim.Small](a Matrix[F, R, R]) F {
	return expand(a, false)
}

func expand[F smath.Float, R dim.Small](a Matrix[F, R, R], signed bool) F {
	n := dim.Len[R]()
	var perm staticarray.Array[int, R]
	p := perm.Slice()
	for i := range p {
		p[i] = i
	}

	var sum F
	odd := false
	for range smath.Factorial(uint(n)) {
		term := F(1)
		for i, j := range p {
			term *= a.Get(i, j)
		}
		if signed && odd {
			sum -= term
		} else {
			sum += term
		}
		if nextPermutation(p)%2 == 1 {
			odd = !odd
		}
	}

	return sum
}

// nextPermutation rearranges p into its lexicographic successor, wrapping the
// last permutation around to the first, and returns the number of element
// swaps the step performed.
func nextPermutation(p []int) int {
	n := len(p)
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		reverse(p)
		return n / 2
	}
	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	reverse(p[i+1:])

	return 1 + (n-i-1)/2
}

func reverse(p []int) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
