// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qft/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithNoValidateNaNInf(),
		matrix.WithEpsilon(1e-6),
		matrix.WithValidateNaNInf(),
	)
	require.Equal(t, 1e-6, o.Epsilon())
	require.True(t, o.ValidateNaNInf())
}

func TestWithEpsilonPanics(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) })
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
