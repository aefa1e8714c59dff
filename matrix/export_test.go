// SPDX-License-Identifier: MIT

package matrix

// NextPermutation exposes the permutation stepper to matrix_test.
var NextPermutation = nextPermutation
