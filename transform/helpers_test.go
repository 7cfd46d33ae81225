// SPDX-License-Identifier: MIT

package transform_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qft/transform"
)

const tol = 1e-9

// requireVecClose asserts |want[i]-got[i]| ≤ eps component-wise.
func requireVecClose(tb testing.TB, want, got transform.Vector, eps float64) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for i := range want {
		require.InDeltaf(tb, real(want[i]), real(got[i]), eps, "real part at %d", i)
		require.InDeltaf(tb, imag(want[i]), imag(got[i]), eps, "imag part at %d", i)
	}
}

// randomVector returns a deterministic pseudo-random vector of length n.
func randomVector(n int, seed int64) transform.Vector {
	rng := rand.New(rand.NewSource(seed))
	v := make(transform.Vector, n)
	for i := range v {
		v[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return v
}
