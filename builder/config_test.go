// SPDX-License-Identifier: MIT
// Package builder contains white-box tests for the configuration primitives.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, "7", cfg.idFn(7))
}

func TestBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	assert.Equal(t, "3", cfg.idFn(3))

	cfg = newBuilderConfig(WithSymbNumb("node"), nil)
	assert.Equal(t, "node4", cfg.idFn(4))
}

func TestBuilderConfig_SeedIsReproducible(t *testing.T) {
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	require.NotSame(t, a.rng, b.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}
