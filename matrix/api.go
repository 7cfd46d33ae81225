// SPDX-License-Identifier: MIT
// Package matrix — constructors and structural checks.
//
// Purpose:
//   - Provide thin, well-documented entry points for neutral elements
//     (zeros, identity) and for tolerance-based comparisons.
//   - Avoid logic duplication: checks compose the canonical kernels.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	opAllClose   = "AllClose"
	opIsUnitary  = "IsUnitary"
	opIdentity   = "IdentityLike"
	opNorms      = "Norms2"
	opMaxAbsDiff = "MaxAbsDiff"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes,
// where |·| is the complex modulus.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Time: O(r*c). Space: O(1). Deterministic, early exit on first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if cmplx.Abs(da.data[idx]-db.data[idx]) > atol+rtol*cmplx.Abs(db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv complex128
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if cmplx.Abs(av-bv) > atol+rtol*cmplx.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a(i,j) - b(i,j)| over all entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst float64
	var av, bv complex128
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			worst = math.Max(worst, cmplx.Abs(av-bv))
		}
	}

	return worst, nil
}

// IsUnitary reports whether mᴴ·m equals the identity within eps per entry
// (absolute tolerance; eps from WithEpsilon, DefaultEpsilon otherwise).
// Implementation:
//   - Stage 1: validate square non-nil.
//   - Stage 2: P = ConjTranspose(m) × m.
//   - Stage 3: AllClose(P, I, 0, eps).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	o := gatherOptions(opts...)

	h, err := ConjTranspose(m)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	p, err := Mul(h, m)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}

	return AllClose(p, id, 0, o.eps)
}

// RowNorms2 returns Σ_j |m(i,j)|² for every row i.
func RowNorms2(m Matrix) ([]float64, error) { return norms2(m, true) }

// ColNorms2 returns Σ_i |m(i,j)|² for every column j.
func ColNorms2(m Matrix) ([]float64, error) { return norms2(m, false) }

// norms2 accumulates squared moduli along rows (byRow) or columns.
func norms2(m Matrix, byRow bool) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNorms, err)
	}
	rows, cols := m.Rows(), m.Cols()
	size := cols
	if byRow {
		size = rows
	}
	out := make([]float64, size)

	var v complex128
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opNorms, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sq := real(v)*real(v) + imag(v)*imag(v)
			if byRow {
				out[i] += sq
			} else {
				out[j] += sq
			}
		}
	}

	return out, nil
}
