// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, GraphOption and the sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates a node (or an edge endpoint) with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyRelation indicates an edge without a relation name.
	ErrEmptyRelation = errors.New("core: edge relation is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node is an entity in the knowledge graph.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string

	// Properties holds free-form attributes such as "name" or "age".
	Properties map[string]string
}

// Property returns the value stored under key and whether it exists.
func (n Node) Property(key string) (string, bool) {
	v, ok := n.Properties[key]

	return v, ok
}

// clone returns n with a private copy of its property map.
func (n Node) clone() Node {
	props := make(map[string]string, len(n.Properties))
	for k, v := range n.Properties {
		props[k] = v
	}

	return Node{ID: n.ID, Properties: props}
}

// Edge is a directed, typed fact: Source --Relation--> Target.
type Edge struct {
	Source   string
	Target   string
	Relation string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithStrictEdges makes AddEdge reject edges whose endpoints are not nodes
// of the graph (ErrNodeNotFound).
func WithStrictEdges() GraphOption {
	return func(g *Graph) { g.strictEdges = true }
}

// Graph is the in-memory knowledge graph.
//
// mu guards every field below it. out indexes edges by source so
// Neighbors does not scan the whole edge list.
type Graph struct {
	mu sync.RWMutex

	strictEdges bool

	nodes map[string]*Node // node ID → Node
	edges []Edge           // insertion order
	out   map[string][]int // source ID → indexes into edges
}

// NewGraph creates an empty Graph. By default edges may reference nodes
// that were never added.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		out:   make(map[string][]int),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// StrictEdges reports whether the graph was built WithStrictEdges.
func (g *Graph) StrictEdges() bool { return g.strictEdges }
