package core

import "fmt"

// NewGraph returns an edgeless graph over the vertices [0, v).
// Returns ErrInvalidVertexCount if v <= 0.
// Complexity: O(V) time and memory.
func NewGraph(v int) (*Graph, error) {
	if v <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, v)
	}

	return &Graph{
		vertices:  v,
		adjacency: make([][]Neighbor, v),
	}, nil
}

// FromEdges builds a graph over [0, v) holding every edge of the list.
//
// All edges are validated before the first insertion, so on error no graph
// is returned and nothing of the input is retained. The edges slice is copied.
//
// Errors (in order of detection):
//   - ErrInvalidVertexCount if v <= 0.
//   - ErrVertexOutOfRange if an endpoint lies outside [0, v).
//   - ErrNegativeWeight if a weight is negative.
//
// Complexity: O(V + E) time and memory.
func FromEdges(v int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(v)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.validate(e); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}
	g.edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		g.insert(e)
	}

	return g, nil
}

// AddEdge inserts the undirected edge {from, to} with the given weight.
// Returns ErrVertexOutOfRange or ErrNegativeWeight; the graph is unchanged on error.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	e := Edge{From: from, To: to, Weight: weight}
	if err := g.validate(e); err != nil {
		return err
	}
	g.insert(e)

	return nil
}

// validate checks both endpoints and the weight of e.
func (g *Graph) validate(e Edge) error {
	if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
		return fmt.Errorf("%w: %d-%d with V=%d", ErrVertexOutOfRange, e.From, e.To, g.vertices)
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: %d-%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	return nil
}

// insert stores e in the catalog and mirrors it in both adjacency lists.
func (g *Graph) insert(e Edge) {
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], Neighbor{To: e.To, Weight: e.Weight})
	if e.From != e.To {
		g.adjacency[e.To] = append(g.adjacency[e.To], Neighbor{To: e.From, Weight: e.Weight})
	}
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.vertices }

// EdgeCount returns the number of undirected edges (not adjacency entries).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether id lies in [0, V).
func (g *Graph) HasVertex(id int) bool { return id >= 0 && id < g.vertices }

// Neighbors returns the adjacency list of u.
//
// The returned slice is owned by the graph and must not be modified; this
// keeps edge relaxation allocation-free.
// Returns ErrVertexOutOfRange for an unknown u.
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, u)
	}

	return g.adjacency[u], nil
}

// Degree returns the number of adjacency entries of u, or 0 for an unknown u.
func (g *Graph) Degree(u int) int {
	if !g.HasVertex(u) {
		return 0
	}

	return len(g.adjacency[u])
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Weight returns the lightest weight among the edges joining u and v.
// ok is false if no such edge exists or an id is out of range.
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v int) (w int64, ok bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, false
	}
	for _, nb := range g.adjacency[u] {
		if nb.To == v && (!ok || nb.Weight < w) {
			w, ok = nb.Weight, true
		}
	}

	return w, ok
}

// HasEdge reports whether u and v are joined by at least one edge.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Clone returns a deep copy; mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices:  g.vertices,
		adjacency: make([][]Neighbor, g.vertices),
		edges:     g.Edges(),
	}
	for u, nbs := range g.adjacency {
		if len(nbs) == 0 {
			continue
		}
		c.adjacency[u] = make([]Neighbor, len(nbs))
		copy(c.adjacency[u], nbs)
	}

	return c
}
