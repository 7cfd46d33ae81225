// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_populate.go — loading sampled pairs into a knowledge graph.
//
// Contract:
//   - Node IDs come from cfg.idFn; every node carries an "index" property.
//   - Existing nodes are left untouched, so populating twice is safe.
//   - Edges are appended in pair order with the given relation.

package builder

import (
	"strconv"

	"github.com/katalvlaran/qft/core"
)

const (
	methodPopulate = "Populate"
	methodGenerate = "Generate"

	// PropIndex is the node property holding the sampled index.
	PropIndex = "index"
)

// Populate adds the nodes referenced by pairs and one edge per pair.
//
// Errors: ErrNilGraph; core.ErrEmptyRelation when relation is empty; any
// error from core.Graph (for example ErrNodeNotFound on strict graphs never
// happens because endpoints are added first).
// Complexity: O(len(pairs)).
func Populate(g *core.Graph, pairs []Pair, relation string, opts ...BuilderOption) error {
	if g == nil {
		return builderErrorf(methodPopulate, ErrNilGraph, "relation=%q", relation)
	}
	if relation == "" {
		return builderErrorf(methodPopulate, core.ErrEmptyRelation, "pairs=%d", len(pairs))
	}
	cfg := newBuilderConfig(opts...)

	for _, p := range pairs {
		src, err := ensureNode(g, cfg, p.From)
		if err != nil {
			return builderErrorf(methodPopulate, err, "pair %s", p)
		}
		dst, err := ensureNode(g, cfg, p.To)
		if err != nil {
			return builderErrorf(methodPopulate, err, "pair %s", p)
		}
		if err = g.AddEdge(core.Edge{Source: src, Target: dst, Relation: relation}); err != nil {
			return builderErrorf(methodPopulate, err, "AddEdge(%s→%s)", src, dst)
		}
	}

	return nil
}

// Generate adds nodes 0..numNodes-1 to g, then samples RandomEdges and adds
// them with the given relation. It returns the sampled pairs.
func Generate(g *core.Graph, numNodes, numEdges int, relation string, opts ...BuilderOption) ([]Pair, error) {
	if g == nil {
		return nil, builderErrorf(methodGenerate, ErrNilGraph, "relation=%q", relation)
	}
	pairs, err := RandomEdges(numNodes, numEdges, opts...)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	for i := 0; i < numNodes; i++ {
		if _, err = ensureNode(g, cfg, i); err != nil {
			return nil, builderErrorf(methodGenerate, err, "node %d", i)
		}
	}
	if err = Populate(g, pairs, relation, opts...); err != nil {
		return nil, err
	}

	return pairs, nil
}

// ensureNode adds node idx unless it already exists and returns its ID.
func ensureNode(g *core.Graph, cfg builderConfig, idx int) (string, error) {
	id := cfg.idFn(idx)
	if g.HasNode(id) {
		return id, nil
	}

	return id, g.AddNode(core.Node{ID: id, Properties: map[string]string{PropIndex: strconv.Itoa(idx)}})
}
