// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only summaries built on the locked getters.

package core

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes     int
	Edges     int
	Relations int
	// Dangling counts edge endpoints that are not nodes of the graph.
	Dangling int
}

// Stats returns a consistent snapshot of the graph's sizes.
// Complexity: O(E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	rels := make(map[string]struct{})
	for _, e := range g.edges {
		rels[e.Relation] = struct{}{}
		if _, ok := g.nodes[e.Source]; !ok {
			s.Dangling++
		}
		if _, ok := g.nodes[e.Target]; !ok {
			s.Dangling++
		}
	}
	s.Relations = len(rels)

	return s
}
