// SPDX-License-Identifier: MIT

package transform

import (
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FastTransform evaluates the same transform as
// Apply(NewMatrix(len(input), opts...), input) in O(N log N) using a
// mixed-radix FFT. Any length N ≥ 1 is accepted. Results agree with the
// direct sum within floating-point tolerance, not bit for bit.
//
// Forward maps to the FFT's inverse (sequence) pass, whose exponent is
// +2πi·j·k/N; Inverse maps to the coefficient pass (−2πi). Both passes are
// unnormalized and scaled afterwards.
//
// Errors: ErrDimensionMismatch for an empty input; ErrOutOfRange when
// N > MaxFastLength.
func FastTransform(input Vector, opts ...Option) (Vector, error) {
	n := len(input)
	if n == 0 {
		return nil, transformErrorf(opFast, ErrDimensionMismatch)
	}
	if n > MaxFastLength {
		return nil, transformErrorf(opFast, ErrOutOfRange)
	}
	o := gatherOptions(opts...)

	fft := fourier.NewCmplxFFT(n)
	var out []complex128
	if o.direction == Forward {
		out = fft.Sequence(nil, input)
	} else {
		out = fft.Coefficients(nil, input)
	}
	if s := scaleFor(o.normalization, n); s != 1 {
		cmplxs.Scale(complex(s, 0), out)
	}

	return out, nil
}
