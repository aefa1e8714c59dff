// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/nani/vector"
)

// ExampleVector shows the operator set on 2D vectors.
func ExampleVector() {
	a := vector.Vec2(3.0, 4.0)
	b := vector.Vec2(1.0, 2.0)

	fmt.Println(a.Add(b), a.Sub(b))
	fmt.Println(a.Dot(b), vector.Cross(a, b))
	fmt.Println(vector.L2Norm(a), vector.Normalize(a), vector.Normal(a))

	// Output:
	// (4, 6) (2, 2)
	// 11 2
	// 5 (0.6, 0.8) (-4, 3)
}

// ExampleUnit builds a basis vector.
func ExampleUnit() {
	e2, err := vector.Unit[float64, dim3](2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e2)

	// Output:
	// (0, 0, 1)
}
