// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the squared-magnitude cut-off used when reporting
// significant amplitudes.
const DefaultThreshold = 1e-10

// AmplitudesAboveThreshold returns, in ascending index order, every
// (index, amplitude) whose squared magnitude is strictly greater than
// threshold. A NaN threshold matches nothing.
func AmplitudesAboveThreshold(state Vector, threshold float64) []Amplitude {
	var out []Amplitude
	for i, v := range state {
		a := Amplitude{Index: i, Value: v}
		if a.Probability() > threshold {
			out = append(out, a)
		}
	}

	return out
}

// Components splits v into its real and imaginary series, in vector order.
func Components(v Vector) (re, im []float64) {
	re = make([]float64, len(v))
	im = make([]float64, len(v))
	for i, c := range v {
		re[i], im[i] = real(c), imag(c)
	}

	return re, im
}

// Probabilities returns |v[i]|² for every index.
func Probabilities(v Vector) []float64 {
	p := make([]float64, len(v))
	for i, c := range v {
		p[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	return p
}

// Norm2 returns Σ|v[i]|². A normalized state has Norm2 == 1.
func Norm2(v Vector) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Sum(Probabilities(v))
}

// MostLikely returns the index with the largest probability, ties resolved
// to the lowest index. It returns -1 for an empty vector.
func MostLikely(v Vector) int {
	if len(v) == 0 {
		return -1
	}

	return floats.MaxIdx(Probabilities(v))
}

// Label renders index as a ket of nBits binary digits, e.g. Label(1, 2)
// is "|01⟩". Indices wider than nBits are printed in full.
func Label(index, nBits int) string {
	return fmt.Sprintf("|%0*b⟩", nBits, index)
}
