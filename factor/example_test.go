package factor_test

import (
	"fmt"

	"github.com/katalvlaran/qft/factor"
)

func ExampleFindOrderSpectral() {
	r, err := factor.FindOrderSpectral(7, 15)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order of 7 mod 15:", r)
	// Output:
	// order of 7 mod 15: 4
}

func ExampleFactor() {
	p, q, err := factor.Factor(15, factor.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p, q)
	// Output:
	// 3 5
}
