// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: deep copies and clearing.

package core

// Clone returns a deep copy of the graph: nodes, property maps, edges and
// the strict-edges flag. The source is only read-locked.
// Complexity: O(V + E + total properties).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	c.strictEdges = g.strictEdges
	for id, n := range g.nodes {
		cp := n.clone()
		c.nodes[id] = &cp
	}
	c.edges = make([]Edge, len(g.edges))
	copy(c.edges, g.edges)
	for src, idx := range g.out {
		c.out[src] = append([]int(nil), idx...)
	}

	return c
}

// Clear removes every node and edge but keeps the configuration.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = nil
	g.out = make(map[string][]int)
}
