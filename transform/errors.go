// SPDX-License-Identifier: MIT
package transform

import (
	"fmt"

	"github.com/katalvlaran/qft/matrix"
)

// Sentinel errors. They alias the matrix sentinels so errors.Is matches
// regardless of which layer detected the problem.
var (
	// ErrDimensionMismatch reports a matrix and vector (or two vectors) of
	// incompatible lengths. Inputs are never padded or truncated.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOutOfRange reports a requested size or index that the numeric
	// representation cannot address.
	ErrOutOfRange = matrix.ErrOutOfRange
)

// Operation tags used in error wrapping.
const (
	opBuild         = "Build"
	opNewMatrix     = "NewMatrix"
	opBasisVector   = "BasisVector"
	opApply         = "Apply"
	opApplyParallel = "ApplyParallel"
	opInvert        = "Invert"
	opTransform     = "Transform"
	opDFT           = "DFT"
	opIDFT          = "IDFT"
	opFast          = "FastTransform"
)

// transformErrorf wraps err with an operation tag, preserving it for errors.Is.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform: %s: %w", tag, err)
}
