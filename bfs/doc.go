// Package bfs provides breadth-first search over a core.Graph knowledge graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     edges in their stored direction (Source → Target).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error).
//   - Edge filtering via WithFilterEdge or WithRelations.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Graph.EdgesFrom returns edges in insertion order and BFS enqueues
//	targets in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
