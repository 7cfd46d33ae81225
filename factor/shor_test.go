// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qft/factor"
	"github.com/katalvlaran/qft/transform"
)

// requireSplit checks the Factor postconditions.
func requireSplit(t *testing.T, n, p, q uint64) {
	t.Helper()
	assert.Equal(t, n, p*q)
	assert.Greater(t, p, uint64(1))
	assert.LessOrEqual(t, p, q)
	assert.Less(t, q, n)
}

func TestFactor_OriginalInputs(t *testing.T) {
	for _, n := range []uint64{297, 356, 216} {
		p, q, err := factor.Factor(n, factor.WithSeed(1))
		require.NoErrorf(t, err, "n=%d", n)
		requireSplit(t, n, p, q)
	}
}

func TestFactor_Even(t *testing.T) {
	p, q, err := factor.Factor(356)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), p)
	assert.Equal(t, uint64(178), q)

	p, q, err = factor.Factor(4)
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{2, 2}, [2]uint64{p, q})
}

func TestFactor_Semiprimes(t *testing.T) {
	for _, n := range []uint64{15, 21, 33, 35, 77, 91, 143, 221, 323, 899} {
		p, q, err := factor.Factor(n, factor.WithSeed(int64(n)))
		require.NoErrorf(t, err, "n=%d", n)
		requireSplit(t, n, p, q)
	}
}

func TestFactor_Spectral(t *testing.T) {
	for _, n := range []uint64{15, 21, 35} {
		p, q, err := factor.Factor(n, factor.WithSeed(3), factor.WithOrderFinder(factor.FindOrderSpectral))
		require.NoErrorf(t, err, "n=%d", n)
		requireSplit(t, n, p, q)
	}
}

func TestFactor_Deterministic(t *testing.T) {
	p1, q1, err1 := factor.Factor(899, factor.WithSeed(9))
	p2, q2, err2 := factor.Factor(899, factor.WithSeed(9))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, q1, q2)
}

func TestFactor_Errors(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 3} {
		_, _, err := factor.Factor(n)
		require.ErrorIsf(t, err, factor.ErrInvalidModulus, "n=%d", n)
	}

	_, _, err := factor.Factor(97, factor.WithAttempts(20))
	require.ErrorIs(t, err, factor.ErrFactorNotFound)

	failing := func(a, n uint64) (uint64, error) { return 0, factor.ErrOrderNotFound }
	_, _, err = factor.Factor(7*11, factor.WithOrderFinder(failing), factor.WithAttempts(1), factor.WithSeed(1))
	// A single attempt either hits a shared factor or fails through the finder.
	if err != nil {
		require.ErrorIs(t, err, factor.ErrFactorNotFound)
	}
}

func TestFactor_SpectralModulusTooLarge(t *testing.T) {
	// 1031 is prime, so every base is coprime and reaches the order finder.
	calls := 0
	finder := func(a, n uint64) (uint64, error) {
		calls++

		return factor.FindOrderSpectral(a, n)
	}
	_, _, err := factor.Factor(1031, factor.WithOrderFinder(finder), factor.WithSeed(1))
	require.ErrorIs(t, err, transform.ErrOutOfRange)
	require.NotErrorIs(t, err, factor.ErrFactorNotFound)
	assert.Equal(t, 1, calls)

	// Even moduli never reach the finder.
	p, q, err := factor.Factor(2*1031, factor.WithOrderFinder(factor.FindOrderSpectral))
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{2, 1031}, [2]uint64{p, q})
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { factor.WithAttempts(0) })
	assert.Panics(t, func() { factor.WithOrderFinder(nil) })
	assert.Panics(t, func() { factor.WithRand(nil) })
}
