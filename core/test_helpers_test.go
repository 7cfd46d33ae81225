// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qft/core"
)

// Common node IDs and relations used across core tests.
const (
	NodePerson  = "person1"
	NodeCity    = "city1"
	NodeCompany = "company1"

	RelLivesIn = "lives_in"
	RelWorksAt = "works_at"
)

// demoGraph builds the three-node, two-edge graph used throughout the tests.
func demoGraph(tb testing.TB, opts ...core.GraphOption) *core.Graph {
	tb.Helper()
	g := core.NewGraph(opts...)
	require.NoError(tb, g.AddNode(core.Node{ID: NodePerson, Properties: map[string]string{"name": "Alice", "age": "30"}}))
	require.NoError(tb, g.AddNode(core.Node{ID: NodeCity, Properties: map[string]string{"name": "London"}}))
	require.NoError(tb, g.AddNode(core.Node{ID: NodeCompany, Properties: map[string]string{"name": "Acme Corp"}}))
	require.NoError(tb, g.AddEdge(core.Edge{Source: NodePerson, Target: NodeCity, Relation: RelLivesIn}))
	require.NoError(tb, g.AddEdge(core.Edge{Source: NodePerson, Target: NodeCompany, Relation: RelWorksAt}))

	return g
}

// nodeIDs projects nodes to their IDs, preserving order.
func nodeIDs(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}
