// Package core defines the Graph, Edge and Neighbor types together with the
// sentinel errors returned by graph construction and queries.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates that a graph was requested with V <= 0.
	ErrInvalidVertexCount = errors.New("core: number of vertices must be > 0")

	// ErrVertexOutOfRange indicates a vertex id outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex outside [0,V)")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is an undirected, weighted connection between two vertices.
type Edge struct {
	From   int   // first endpoint
	To     int   // second endpoint
	Weight int64 // non-negative traversal cost
}

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	To     int   // adjacent vertex
	Weight int64 // cost of the connecting edge
}

// Graph is an undirected weighted graph over the vertices [0, V).
//
// adjacency[u] lists every (v, w) reachable from u in one step. Each edge
// appears in adjacency[From] and adjacency[To]; edges keeps the catalog in
// insertion order for Edges().
type Graph struct {
	vertices  int
	adjacency [][]Neighbor
	edges     []Edge
}
