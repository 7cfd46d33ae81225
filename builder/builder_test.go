// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qft/builder"
	"github.com/katalvlaran/qft/core"
)

func TestRandomEdges_Contract(t *testing.T) {
	const nodes, edges = 5, 8
	pairs, err := builder.RandomEdges(nodes, edges, builder.WithSeed(42))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(pairs), edges)
	for _, p := range pairs {
		assert.NotEqual(t, p.From, p.To, "self-loops are dropped")
		assert.GreaterOrEqual(t, p.From, 0)
		assert.Less(t, p.From, nodes)
		assert.GreaterOrEqual(t, p.To, 0)
		assert.Less(t, p.To, nodes)
	}
}

func TestRandomEdges_Deterministic(t *testing.T) {
	a, err := builder.RandomEdges(10, 50, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.RandomEdges(10, 50, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandomEdges_MatchesTrialModel(t *testing.T) {
	// Replaying the draws with the same source reproduces the filter exactly.
	const nodes, edges = 4, 100
	pairs, err := builder.RandomEdges(nodes, edges, builder.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	var want []builder.Pair
	for i := 0; i < edges; i++ {
		u, v := rng.Intn(nodes), rng.Intn(nodes)
		if u != v {
			want = append(want, builder.Pair{From: u, To: v})
		}
	}
	assert.Equal(t, want, pairs)
}

func TestRandomEdges_SingleNodeYieldsNothing(t *testing.T) {
	pairs, err := builder.RandomEdges(1, 20, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestRandomEdges_Errors(t *testing.T) {
	_, err := builder.RandomEdges(0, 3, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomEdges(3, -1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.RandomEdges(3, 2)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	pairs, err := builder.RandomEdges(3, 0)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestPopulate(t *testing.T) {
	g := core.NewGraph(core.WithStrictEdges())
	pairs := []builder.Pair{{From: 0, To: 2}, {From: 2, To: 1}, {From: 0, To: 2}}
	require.NoError(t, builder.Populate(g, pairs, "connects", builder.WithSymbolIDs()))

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"C", "C"}, g.Neighbors("A"))

	n, ok := g.Node("B")
	require.True(t, ok)
	assert.Equal(t, "1", n.Properties[builder.PropIndex])

	// Populating again keeps nodes and appends edges.
	require.NoError(t, builder.Populate(g, pairs[:1], "connects", builder.WithSymbolIDs()))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestPopulate_Errors(t *testing.T) {
	require.ErrorIs(t, builder.Populate(nil, nil, "r"), builder.ErrNilGraph)
	require.ErrorIs(t, builder.Populate(core.NewGraph(), nil, ""), core.ErrEmptyRelation)
}

func TestGenerate(t *testing.T) {
	g := core.NewGraph()
	pairs, err := builder.Generate(g, 6, 10, "edge", builder.WithSeed(5), builder.WithSymbNumb("n"))
	require.NoError(t, err)

	assert.Equal(t, 6, g.NodeCount(), "isolated nodes are added too")
	assert.Equal(t, len(pairs), g.EdgeCount())
	assert.True(t, g.HasNode("n5"))

	_, err = builder.Generate(g, 0, 1, "edge", builder.WithSeed(5))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Generate(nil, 2, 1, "edge")
	require.ErrorIs(t, err, builder.ErrNilGraph)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestPairString(t *testing.T) {
	assert.Equal(t, "1 -> 3", builder.Pair{From: 1, To: 3}.String())
}
