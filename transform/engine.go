// SPDX-License-Identifier: MIT
// Package transform: matrix construction and the direct O(N²) evaluation.
//
// Every transform matrix in the package comes out of NewMatrix. Build is the
// quantum Fourier transform (Forward, NormUnitary) on 2^nBits points; the
// legacy DFT in dft.go is the Inverse/NormNone member of the same family.

package transform

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qft/matrix"
)

// MaxQubits is the largest nBits accepted by Build, BasisVector and
// Transform on every platform. The dense matrix at this size is
// 4096×4096 entries, 256 MiB, well inside matrix.MaxElements.
const MaxQubits = 12

// MaxDimension is 2^MaxQubits, the largest dimension NewMatrix and the
// direct DFT accept.
const MaxDimension = 1 << MaxQubits

// MaxFastLength is the largest input FastTransform accepts: 2^24 points,
// 256 MiB per vector. The FFT never materializes the matrix.
const MaxFastLength = 1 << 24

// Dimension returns N = 2^nBits.
// Errors: ErrOutOfRange when nBits is negative or above MaxQubits.
func Dimension(nBits int) (int, error) {
	if nBits < 0 || nBits > MaxQubits {
		return 0, ErrOutOfRange
	}

	return 1 << nBits, nil
}

// scaleFor returns the per-entry factor for the normalization mode.
func scaleFor(n Normalization, dim int) float64 {
	switch n {
	case NormNone:
		return 1
	case NormByN:
		return 1 / float64(dim)
	default:
		return 1 / math.Sqrt(float64(dim))
	}
}

// twiddles returns w[p] = scale·exp(sign·2πi·p/dim) for p in [0, dim).
func twiddles(dim int, o options) []complex128 {
	scale := scaleFor(o.normalization, dim)
	step := o.direction.Sign() * 2 * math.Pi / float64(dim)
	w := make([]complex128, dim)
	for p := range w {
		w[p] = cmplx.Rect(scale, step*float64(p))
	}

	return w
}

// NewMatrix builds the dim×dim transform matrix with entries
// scale·exp(sign·2πi·j·k/dim), sign from WithDirection and scale from
// WithNormalization. Defaults give the unitary forward transform.
//
// Angles use (j·k) mod dim, accumulated incrementally per row, so the
// argument stays in [0, 2π) and two matrices that differ only in direction
// are exact conjugates of each other.
//
// Errors: ErrOutOfRange when dim < 1 or dim > MaxDimension.
// Complexity: Time O(dim²), Space O(dim²).
func NewMatrix(dim int, opts ...Option) (*matrix.Dense, error) {
	if dim < 1 || dim > MaxDimension {
		return nil, transformErrorf(opNewMatrix, ErrOutOfRange)
	}
	o := gatherOptions(opts...)

	m, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, transformErrorf(opNewMatrix, err)
	}
	w := twiddles(dim, o)

	var j, k, p int
	for j = 0; j < dim; j++ {
		p = 0 // (j*k) mod dim for k = 0
		for k = 0; k < dim; k++ {
			if err = m.Set(j, k, w[p]); err != nil {
				return nil, transformErrorf(opNewMatrix, err)
			}
			p += j
			if p >= dim {
				p -= dim
			}
		}
	}

	return m, nil
}

// Build returns the quantum Fourier transform on N = 2^nBits points:
// entry (j,k) = (1/√N)·exp(+2πi·j·k/N). The result is unitary within 1e-9
// per entry for the sizes the direct form is practical at.
// Options override direction or normalization.
//
// Errors: ErrOutOfRange when nBits is outside [0, MaxQubits].
func Build(nBits int, opts ...Option) (*matrix.Dense, error) {
	dim, err := Dimension(nBits)
	if err != nil {
		return nil, transformErrorf(opBuild, err)
	}

	return NewMatrix(dim, opts...)
}

// BasisVector returns |index⟩ on N = 2^nBits points: 1+0i at index, zero
// elsewhere.
//
// Errors: ErrOutOfRange when nBits is outside [0, MaxQubits] or index is
// outside [0, N).
func BasisVector(nBits, index int) (Vector, error) {
	dim, err := Dimension(nBits)
	if err != nil {
		return nil, transformErrorf(opBasisVector, err)
	}
	if index < 0 || index >= dim {
		return nil, transformErrorf(opBasisVector, ErrOutOfRange)
	}
	v := make(Vector, dim)
	v[index] = 1

	return v, nil
}

// BasisVectorLenient is BasisVector with the permissive index policy: an
// index outside [0, N) yields the all-zero vector of length N instead of an
// error. nBits is still validated.
func BasisVectorLenient(nBits, index int) (Vector, error) {
	dim, err := Dimension(nBits)
	if err != nil {
		return nil, transformErrorf(opBasisVector, err)
	}
	v := make(Vector, dim)
	if index >= 0 && index < dim {
		v[index] = 1
	}

	return v, nil
}

// Apply returns m·input: out[row] = Σ_col m[row][col]·input[col].
// input is not modified.
//
// Errors: matrix.ErrNilMatrix; ErrDimensionMismatch when m is not square or
// len(input) != m.Cols(). Inputs are never padded or truncated.
// Complexity: Time O(N²), Space O(N).
func Apply(m matrix.Matrix, input Vector) (Vector, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, transformErrorf(opApply, err)
	}
	out, err := matrix.MatVec(m, input)
	if err != nil {
		return nil, transformErrorf(opApply, err)
	}

	return out, nil
}

// Invert returns the conjugate transpose of m, which is the inverse of any
// unitary matrix (and of Build's result in particular).
// Errors: matrix.ErrNilMatrix.
func Invert(m matrix.Matrix) (*matrix.Dense, error) {
	h, err := matrix.ConjTranspose(m)
	if err != nil {
		return nil, transformErrorf(opInvert, err)
	}

	return h, nil
}

// Transform builds the 2^nBits matrix and applies it to input.
// Errors: ErrOutOfRange for nBits; ErrDimensionMismatch when
// len(input) != 2^nBits (checked before the matrix is built).
func Transform(nBits int, input Vector, opts ...Option) (Vector, error) {
	dim, err := Dimension(nBits)
	if err != nil {
		return nil, transformErrorf(opTransform, err)
	}
	if err = matrix.ValidateVecLen(input, dim); err != nil {
		return nil, transformErrorf(opTransform, err)
	}
	m, err := NewMatrix(dim, opts...)
	if err != nil {
		return nil, transformErrorf(opTransform, err)
	}

	return Apply(m, input)
}
