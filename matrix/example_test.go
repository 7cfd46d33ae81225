package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/qft/matrix"
)

// ExampleConjTranspose shows the Hermitian adjoint of a 2×2 matrix.
func ExampleConjTranspose() {
	m, _ := matrix.NewDenseFrom(2, 2, []complex128{1, 2i, 3 - 1i, 4})
	h, _ := matrix.ConjTranspose(m)
	fmt.Print(h)

	// Output:
	// [(1-0i), (3+1i)]
	// [(0-2i), (4-0i)]
}

// ExampleMatVec multiplies a matrix by a column vector.
func ExampleMatVec() {
	m, _ := matrix.NewDenseFrom(2, 2, []complex128{1, 1i, 1i, 1})
	y, _ := matrix.MatVec(m, []complex128{1, 1})
	fmt.Println(y)

	// Output:
	// [(1+1i) (1+1i)]
}
