// Package core provides the compact, integer-indexed graph used by the
// shortest-path solvers of this module.
//
// A Graph G = (V,E) has vertices identified by the integers [0, V) and
// undirected, non-negatively weighted edges. Every edge is stored twice in
// the adjacency list (once per direction), so Neighbors(u) is a plain slice
// walk with no map lookups on the hot path of a search.
//
// Why a separate, index-based graph?
//
//   - Search state (distance, parent, closed flag, heuristic) lives in parallel
//     slices indexed by vertex id; ids must therefore be dense and bounded.
//   - Validation happens once, at construction. Algorithms never re-check
//     weights or ranges while relaxing edges.
//   - FromEdges builds the whole graph or nothing: no partially built Graph is
//     ever returned.
//
// Construction:
//
//	g, err := core.FromEdges(4, []core.Edge{
//	    {From: 0, To: 1, Weight: 1},
//	    {From: 1, To: 2, Weight: 1},
//	})
//
// Errors:
//
//	ErrInvalidVertexCount - V <= 0.
//	ErrVertexOutOfRange   - an endpoint or query id outside [0, V).
//	ErrNegativeWeight     - an edge weight below zero.
//
// Self-loops and parallel edges are accepted; a self-loop is stored once.
//
// A Graph is not synchronized. Build it, then share it read-only.
package core
