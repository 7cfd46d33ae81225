// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: node lifecycle and lookups.

package core

import "sort"

// AddNode inserts node, replacing any node with the same ID.
// The property map is copied; later changes by the caller are not seen.
// Returns ErrEmptyNodeID if node.ID is empty.
// Complexity: O(P) for P properties.
func (g *Graph) AddNode(node Node) error {
	if node.ID == "" {
		return ErrEmptyNodeID
	}
	cp := node.clone()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[cp.ID] = &cp

	return nil
}

// SetProperty sets one property on an existing node.
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
func (g *Graph) SetProperty(id, key, value string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Properties[key] = value

	return nil
}

// Node returns a copy of the node with the given ID.
// Complexity: O(P).
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return n.clone(), true
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns copies of all nodes sorted by ID.
// Complexity: O(V log V + total properties).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
