// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qft/transform"
)

func TestDFT_ConstantInput(t *testing.T) {
	out, err := transform.DFT(transform.Vector{1, 1, 1, 1})
	require.NoError(t, err)
	requireVecClose(t, transform.Vector{4, 0, 0, 0}, out, tol)
}

func TestDFT_SignConvention(t *testing.T) {
	// DFT of δ[t-1] is exp(−2πi·k/4) = 1, −i, −1, i.
	out, err := transform.DFT(transform.Vector{0, 1, 0, 0})
	require.NoError(t, err)
	requireVecClose(t, transform.Vector{1, -1i, -1, 1i}, out, tol)
}

func TestDFT_ArbitraryLengthRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7, 12} {
		v := randomVector(n, int64(n))
		spec, err := transform.DFT(v)
		require.NoError(t, err)
		back, err := transform.IDFT(spec)
		require.NoError(t, err)
		requireVecClose(t, v, back, tol)
	}
}

func TestDFT_MatchesQFTInverseScaled(t *testing.T) {
	// The unitary inverse QFT is the DFT scaled by 1/√N.
	v := randomVector(8, 11)
	dft, err := transform.DFT(v)
	require.NoError(t, err)
	iqft, err := transform.Transform(3, v, transform.WithDirection(transform.Inverse))
	require.NoError(t, err)

	scaled := make(transform.Vector, len(iqft))
	for i := range iqft {
		scaled[i] = iqft[i] * complex(math.Sqrt(8), 0)
	}
	requireVecClose(t, dft, scaled, tol)
}

func TestDFT_Empty(t *testing.T) {
	_, err := transform.DFT(nil)
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)
	_, err = transform.IDFT(transform.Vector{})
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)
}
