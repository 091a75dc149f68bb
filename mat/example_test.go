// SPDX-License-Identifier: MIT

package mat_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/vec"
)

// ExampleMat3_Inverse inverts a matrix with unit determinant.
func ExampleMat3_Inverse() {
	m := mat.New3([3][3]float64{
		{1, 2, 3},
		{0, 1, 4},
		{5, 6, 0},
	})
	inv, err := m.Inverse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("det:", m.Det())
	fmt.Print(inv)
	fmt.Print(m.Mul(inv))
	// Output:
	// det: 1
	// [-24, 18, 5]
	// [20, -15, -4]
	// [-5, 4, 1]
	// [1, 0, 0]
	// [0, 1, 0]
	// [0, 0, 1]
}

// ExampleMat2_MulVec applies the identity to a vector.
func ExampleMat2_MulVec() {
	fmt.Println(mat.Identity2().MulVec(vec.New2(3.0, 4)))
	// Output:
	// [3 4]
}

// ExampleMat2_Inverse shows the explicit failure on a singular matrix.
func ExampleMat2_Inverse() {
	_, err := mat.Mat2{{1, 2}, {2, 4}}.Inverse()
	fmt.Println(errors.Is(err, mat.ErrSingular), err)
	// Output:
	// true mat: Mat2.Inverse: mat: singular matrix
}
