// SPDX-License-Identifier: MIT
// Package transform builds and applies discrete Fourier transform matrices
// over complex state vectors.
//
// The engine is purely functional: every call takes immutable inputs and
// returns freshly allocated outputs.
//
//   - Build(nBits) returns the N×N quantum Fourier transform matrix,
//     N = 2^nBits, with entries (1/√N)·exp(+2πi·j·k/N).
//   - NewMatrix(dim, opts...) is the single construction routine behind
//     Build and the legacy DFT; Direction selects the sign of the exponent
//     and Normalization the scale factor.
//   - Apply multiplies a matrix by a vector; Invert returns the conjugate
//     transpose, which is the inverse of any unitary matrix.
//   - BasisVector returns |index⟩; AmplitudesAboveThreshold reports the
//     significant components of a state.
//
// Errors are ErrDimensionMismatch and ErrOutOfRange (shared with the matrix
// package), wrapped with the operation name. The package never logs.
//
// The direct O(N²) definition is the contract. FastTransform computes the
// same result through an FFT and ApplyParallel spreads rows over goroutines;
// both agree with Apply within floating-point tolerance.
package transform
