// SPDX-License-Identifier: MIT

package transform

// DFT computes the classical discrete Fourier transform by direct summation:
// out[k] = Σ_t input[t]·exp(−2πi·k·t/N), unnormalized. Any length N ≥ 1 is
// accepted. It is NewMatrix with Inverse direction and NormNone applied to
// input.
//
// Errors: ErrDimensionMismatch for an empty input; ErrOutOfRange when
// N > MaxDimension.
func DFT(input Vector) (Vector, error) {
	return direct(opDFT, input, WithDirection(Inverse), WithNormalization(NormNone))
}

// IDFT inverts DFT: out[t] = (1/N)·Σ_k input[k]·exp(+2πi·k·t/N).
func IDFT(input Vector) (Vector, error) {
	return direct(opIDFT, input, WithDirection(Forward), WithNormalization(NormByN))
}

// direct evaluates NewMatrix(len(input), opts...)·input.
func direct(tag string, input Vector, opts ...Option) (Vector, error) {
	if len(input) == 0 {
		return nil, transformErrorf(tag, ErrDimensionMismatch)
	}
	m, err := NewMatrix(len(input), opts...)
	if err != nil {
		return nil, transformErrorf(tag, err)
	}
	out, err := Apply(m, input)
	if err != nil {
		return nil, transformErrorf(tag, err)
	}

	return out, nil
}
