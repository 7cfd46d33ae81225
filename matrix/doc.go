// Package matrix provides the complex-valued dense matrix used by the
// transform engine.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Kernels: Mul, MatVec, Transpose, ConjTranspose, Scale, Add, Sub.
//   - Checks: AllClose and IsUnitary with an explicit numeric tolerance.
//
// Every kernel allocates a fresh result and never mutates its operands.
// Failures are reported with ErrDimensionMismatch, ErrOutOfRange,
// ErrInvalidDimensions, ErrNilMatrix or ErrNaNInf, wrapped with the name of
// the failing operation; match them with errors.Is.
//
// Kernels take a fast path over the flat buffer when every operand is a
// *Dense and fall back to At/Set otherwise. Both paths visit elements in the
// same fixed order, so results are bitwise identical.
package matrix
