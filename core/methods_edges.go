// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge insertion and edge-centric queries.
// Determinism:
//   - every query returns edges in insertion order.

package core

import "sort"

// AddEdge appends edge to the graph. Parallel edges and self-loops are kept.
//
// Errors:
//   - ErrEmptyNodeID if Source or Target is empty.
//   - ErrEmptyRelation if Relation is empty.
//   - ErrNodeNotFound if the graph is strict and an endpoint is missing.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(edge Edge) error {
	if edge.Source == "" || edge.Target == "" {
		return ErrEmptyNodeID
	}
	if edge.Relation == "" {
		return ErrEmptyRelation
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.strictEdges {
		if _, ok := g.nodes[edge.Source]; !ok {
			return ErrNodeNotFound
		}
		if _, ok := g.nodes[edge.Target]; !ok {
			return ErrNodeNotFound
		}
	}
	g.out[edge.Source] = append(g.out[edge.Source], len(g.edges))
	g.edges = append(g.edges, edge)

	return nil
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgesFrom returns the outgoing edges of id in insertion order.
func (g *Graph) EdgesFrom(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx := g.out[id]
	out := make([]Edge, len(idx))
	for i, k := range idx {
		out[i] = g.edges[k]
	}

	return out
}

// Neighbors returns the targets of id's outgoing edges in insertion order.
// A target reached by several edges appears once per edge.
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx := g.out[id]
	out := make([]string, len(idx))
	for i, k := range idx {
		out[i] = g.edges[k].Target
	}

	return out
}

// EdgesByRelation returns every edge whose Relation equals relation.
// Complexity: O(E).
func (g *Graph) EdgesByRelation(relation string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, e := range g.edges {
		if e.Relation == relation {
			out = append(out, e)
		}
	}

	return out
}

// Relations returns the distinct relation names, sorted.
func (g *Graph) Relations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, e := range g.edges {
		seen[e.Relation] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)

	return out
}
