// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: non-mutating graph views.
// Concurrency:
//   - Read locks on the source; the result is a fresh graph instance.

package core

// RelationView returns a new graph with every node of g and only the edges
// whose Relation is one of relations. With no relations the view has no
// edges. g is not modified.
// Complexity: O(V + E).
func RelationView(g *Graph, relations ...string) *Graph {
	keep := make(map[string]bool, len(relations))
	for _, r := range relations {
		keep[r] = true
	}

	return filtered(g, nil, func(e Edge) bool { return keep[e.Relation] })
}

// InducedSubgraph returns a new graph with the nodes of g whose IDs are in
// keep, and the edges whose endpoints are both kept. IDs in keep that are
// not nodes of g are ignored.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return filtered(g,
		func(id string) bool { return keep[id] },
		func(e Edge) bool { return keep[e.Source] && keep[e.Target] },
	)
}

// filtered copies the nodes accepted by keepNode (all when nil) and the
// edges accepted by keepEdge, preserving edge order.
func filtered(g *Graph, keepNode func(string) bool, keepEdge func(Edge) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := NewGraph()
	v.strictEdges = g.strictEdges
	for id, n := range g.nodes {
		if keepNode == nil || keepNode(id) {
			cp := n.clone()
			v.nodes[id] = &cp
		}
	}
	for _, e := range g.edges {
		if keepEdge(e) {
			v.out[e.Source] = append(v.out[e.Source], len(v.edges))
			v.edges = append(v.edges, e)
		}
	}

	return v
}
