// SPDX-License-Identifier: MIT

package transform_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qft/transform"
)

func TestCache_ReturnsIndependentClones(t *testing.T) {
	c := transform.NewCache()

	a, err := c.Matrix(2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 42))

	b, err := c.Matrix(2)
	require.NoError(t, err)
	v, err := b.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(0.5, 0), v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_KeysByOptions(t *testing.T) {
	c := transform.NewCache()
	_, err := c.Matrix(2)
	require.NoError(t, err)
	_, err = c.Matrix(2, transform.WithDirection(transform.Inverse))
	require.NoError(t, err)
	_, err = c.Matrix(2, transform.WithNormalization(transform.NormNone))
	require.NoError(t, err)
	_, err = c.Matrix(2, transform.WithWorkers(4)) // workers do not affect the matrix
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestCache_Transform(t *testing.T) {
	c := transform.NewCache()
	v := randomVector(16, 2)

	want, err := transform.Transform(4, v)
	require.NoError(t, err)
	got, err := c.Transform(4, v)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = c.Transform(4, v[:3])
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)
	_, err = c.Matrix(transform.MaxQubits + 1)
	require.ErrorIs(t, err, transform.ErrOutOfRange)
}

func TestCache_Concurrent(t *testing.T) {
	c := transform.NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := c.Transform(n%4, make(transform.Vector, 1<<(n%4)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, c.Len())
}
