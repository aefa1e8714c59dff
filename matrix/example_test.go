// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/nani/dim"
	"github.com/katalvlaran/nani/matrix"
	"github.com/katalvlaran/nani/vector"
)

// ExampleMatrix demonstrates products, transposition and the determinant.
func ExampleMatrix() {
	a, _ := matrix.New[float64, dim.D2, dim.D2](1, 2, 3, 4)
	fmt.Print(matrix.Mul(a, matrix.Transpose(a)))
	fmt.Println(a.MulVec(vector.Vec2(1.0, 1.0)))
	fmt.Println(matrix.Determinant(a), matrix.Permanent(a))
	// Output:
	// [5, 11]
	// [11, 25]
	// (3, 7)
	// -2 10
}

// ExampleOuter builds a rank-one matrix from two vectors.
func ExampleOuter() {
	p := matrix.Outer(vector.Vec2(1.0, 2.0), vector.Vec3(1.0, 0.0, -1.0))
	fmt.Print(p)
	// Output:
	// [1, 0, -1]
	// [2, 0, -2]
}
