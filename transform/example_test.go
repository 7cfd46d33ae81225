// SPDX-License-Identifier: MIT

package transform_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/qft/transform"
)

// ExampleBuild transforms |0⟩ on one qubit into the uniform superposition.
func ExampleBuild() {
	m, err := transform.Build(1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e0, _ := transform.BasisVector(1, 0)
	state, _ := transform.Apply(m, e0)

	for _, a := range transform.AmplitudesAboveThreshold(state, transform.DefaultThreshold) {
		fmt.Printf("%s: %s\n", transform.Label(a.Index, 1), transform.FormatComplex(a.Value))
	}
	// Output:
	// |0⟩: 0.7071 + 0.0000i
	// |1⟩: 0.7071 + 0.0000i
}

// ExampleDFT shows the classical convention on a constant signal.
func ExampleDFT() {
	out, _ := transform.DFT(transform.Vector{1, 1, 1, 1})
	for _, v := range out {
		fmt.Printf("%.4f\n", cmplx.Abs(v))
	}
	// Output:
	// 4.0000
	// 0.0000
	// 0.0000
	// 0.0000
}

func ExampleBasisVector() {
	_, err := transform.BasisVector(2, 4)
	fmt.Println(err)
	v, _ := transform.BasisVectorLenient(2, 4)
	fmt.Println(v)
	// Output:
	// transform: BasisVector: matrix: index out of range
	// [(0+0i) (0+0i) (0+0i) (0+0i)]
}
