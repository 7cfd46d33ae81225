// Package core provides a small, thread-safe in-memory knowledge graph.
//
// A Graph holds labelled nodes (Node: an ID plus string properties) and
// directed, typed edges (Edge: Source → Target with a Relation name).
//
//   - Nodes are keyed by ID. AddNode with an existing ID replaces the node.
//   - Edges are kept in insertion order; parallel edges are allowed.
//   - By default AddEdge does not require its endpoints to exist. Graphs
//     built WithStrictEdges reject edges whose endpoints are missing.
//
// Determinism:
//
//	Nodes() is sorted by ID. Edges(), Neighbors() and EdgesByRelation()
//	follow insertion order.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Mutations take the write lock,
//	queries the read lock. Returned values are copies: mutating a returned
//	Node's Properties never affects the graph.
//
// Views (view.go) derive new graphs without touching the source:
// RelationView keeps a set of relations, InducedSubgraph keeps a node set.
package core
