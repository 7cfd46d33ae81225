// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Vector is a state vector of complex amplitudes. Length N = 2^n for the
// quantum transform; the legacy DFT accepts any positive length.
type Vector []complex128

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Amplitude pairs a basis index with its complex amplitude.
type Amplitude struct {
	Index int
	Value complex128
}

// Probability returns |Value|².
func (a Amplitude) Probability() float64 {
	return real(a.Value)*real(a.Value) + imag(a.Value)*imag(a.Value)
}

// Magnitude returns |Value|.
func (a Amplitude) Magnitude() float64 { return cmplx.Abs(a.Value) }

// String renders "index: re + imi" with four decimals.
func (a Amplitude) String() string {
	return fmt.Sprintf("%d: %s", a.Index, FormatComplex(a.Value))
}

// FormatComplex renders c as "a.aaaa + b.bbbbi" (or "a.aaaa - b.bbbbi").
// Components that round to zero print as 0.0000, never -0.0000.
func FormatComplex(c complex128) string {
	re, im := roundZero(real(c)), roundZero(imag(c))
	if im < 0 {
		return fmt.Sprintf("%.4f - %.4fi", re, -im)
	}

	return fmt.Sprintf("%.4f + %.4fi", re, im)
}

// roundZero folds values below the printed precision to +0.
func roundZero(x float64) float64 {
	if math.Abs(x) < 5e-5 {
		return 0
	}

	return x
}
