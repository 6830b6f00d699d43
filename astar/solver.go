package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/ashotpetrossian/Algorithms/core"
	"github.com/ashotpetrossian/Algorithms/gridgraph"
	"github.com/ashotpetrossian/Algorithms/heuristic"
)

// inf marks a vertex not reached yet.
const inf = math.MaxInt64

// Solver runs A* from a fixed source to a fixed destination.
type Solver struct {
	graph       *core.Graph
	h           *heuristic.Table
	source      int
	destination int
	opts        Options

	// Per-search state, sized V at construction and reset by Solve.
	dist   []int64
	parent []int
	closed []bool
	pq     nodePQ

	solved   bool // Solve has run at least once
	found    bool // last Solve reached the destination
	shortest int64
	visited  []int
	stats    Stats
}

// NewSolver validates the inputs and returns a Solver ready to search.
//
// Parameters:
//   - v:           number of vertices, ids are [0, v).
//   - edges:       undirected edges, weights ≥ 0.
//   - grid:        cell layout of vertex ids or gridgraph.Empty; used only for h.
//   - source, destination: ids in [0, v).
//
// Preconditions and validation (in order):
//  1. v > 0 (core.ErrInvalidVertexCount).
//  2. Every edge endpoint in range (core.ErrVertexOutOfRange) and weight ≥ 0
//     (core.ErrNegativeWeight).
//  3. source and destination in range (core.ErrVertexOutOfRange).
//  4. grid non-empty and rectangular, cells in range and unique (gridgraph errors).
//  5. destination present in the grid (gridgraph.ErrVertexNotInGrid).
//  6. With WithStrictGrid, every vertex present in the grid (ErrUnmappedVertex).
//
// On error no Solver is returned. edges and grid are copied.
//
// Complexity: O(V + E + W×H).
func NewSolver(v int, edges []core.Edge, grid [][]int, source, destination int, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := core.FromEdges(v, edges)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(source) || !g.HasVertex(destination) {
		return nil, fmt.Errorf("%w: source=%d destination=%d with V=%d",
			core.ErrVertexOutOfRange, source, destination, v)
	}

	gi, err := gridgraph.NewGridIndex(grid)
	if err != nil {
		return nil, err
	}
	table, err := heuristic.NewTable(gi, v, destination, cfg.Heuristic)
	if err != nil {
		return nil, err
	}
	if unmapped := table.Unmapped(); len(unmapped) > 0 {
		if cfg.StrictGrid {
			return nil, fmt.Errorf("%w: %d vertices, first %d", ErrUnmappedVertex, len(unmapped), unmapped[0])
		}
		cfg.Logger.Debug("vertices without grid cell use zero heuristic", "count", len(unmapped))
	}

	return &Solver{
		graph:       g,
		h:           table,
		source:      source,
		destination: destination,
		opts:        cfg,
		dist:        make([]int64, v),
		parent:      make([]int, v),
		closed:      make([]bool, v),
		pq:          make(nodePQ, 0, v),
	}, nil
}

// Solve runs the search and reports whether the destination was reached.
//
// Every call starts from scratch, so repeated calls on the same Solver give
// the same answer. An unreachable destination is not an error.
func (s *Solver) Solve() bool {
	s.reset()

	s.dist[s.source] = 0
	s.push(s.source, s.h.Value(s.source))

	for {
		// Drop entries whose vertex was finalized after they were pushed.
		for s.pq.Len() > 0 && s.closed[s.pq.top().id] {
			heap.Pop(&s.pq)
			s.stats.Stale++
		}
		if s.pq.Len() == 0 {
			break
		}

		u := heap.Pop(&s.pq).(*nodeItem).id
		s.visit(u)

		if u == s.destination {
			s.found = true
			s.shortest = s.dist[u]
			s.opts.Logger.Debug("destination found",
				"source", s.source, "destination", s.destination,
				"cost", s.shortest, "expanded", s.stats.Expanded)
			return true
		}

		s.closed[u] = true
		s.stats.Expanded++
		s.relax(u)
	}

	s.opts.Logger.Debug("destination cannot be found",
		"source", s.source, "destination", s.destination, "expanded", s.stats.Expanded)
	return false
}

// reset restores the pre-search state without reallocating.
func (s *Solver) reset() {
	for i := range s.dist {
		s.dist[i] = inf
		s.parent[i] = -1
		s.closed[i] = false
	}
	clear(s.pq)
	s.pq = s.pq[:0]
	s.visited = s.visited[:0]
	s.stats = Stats{}
	s.solved = true
	s.found = false
	s.shortest = 0
}

// visit records u as taken off the frontier.
func (s *Solver) visit(u int) {
	s.visited = append(s.visited, u)
	s.stats.Visited++
	s.opts.OnVisit(u, s.dist[u])
}

// relax tries to improve every open neighbor of the freshly closed u.
func (s *Solver) relax(u int) {
	nbs, _ := s.graph.Neighbors(u) // u comes from the heap, always in range
	du := s.dist[u]
	for _, nb := range nbs {
		v := nb.To
		if s.closed[v] {
			continue
		}
		// A sum past MaxInt64 is no better than unreached.
		if nb.Weight > inf-du {
			continue
		}
		tentative := du + nb.Weight
		if tentative >= s.dist[v] {
			continue
		}
		s.dist[v] = tentative
		s.parent[v] = u
		s.opts.OnRelax(u, v, tentative)
		s.push(v, satAdd(tentative, s.h.Value(v)))
	}
}

func (s *Solver) push(id int, f int64) {
	heap.Push(&s.pq, &nodeItem{id: id, f: f})
	s.stats.Pushes++
}

// satAdd returns a+b clamped to MaxInt64; both operands are non-negative.
func satAdd(a, b int64) int64 {
	if b > inf-a {
		return inf
	}
	return a + b
}

// ShortestPath returns the cost of the shortest path, running Solve first if
// it has never run. Returns ErrNoPath if the destination is unreachable.
func (s *Solver) ShortestPath() (int64, error) {
	if !s.solved {
		s.Solve()
	}
	if !s.found {
		return 0, fmt.Errorf("%w: %d -> %d", ErrNoPath, s.source, s.destination)
	}

	return s.shortest, nil
}

// ReconstructPath returns the vertices of the shortest path from source to
// destination, both inclusive. It requires the last Solve to have succeeded;
// otherwise it returns ErrPathNotFound.
//
// Complexity: O(path length).
func (s *Solver) ReconstructPath() ([]int, error) {
	if !s.found {
		return nil, ErrPathNotFound
	}

	path := []int{}
	u := s.destination
	for u != s.source {
		path = append(path, u)
		u = s.parent[u]
	}
	path = append(path, u)
	// reverse to get source → destination
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Visited returns the vertices taken off the frontier by the last Solve, in
// order. A successful search ends with the destination.
func (s *Solver) Visited() []int {
	out := make([]int, len(s.visited))
	copy(out, s.visited)

	return out
}

// Stats returns the counters of the last Solve.
func (s *Solver) Stats() Stats { return s.stats }

// Heuristic returns the precomputed h(node).
func (s *Solver) Heuristic(node int) int64 { return s.h.Value(node) }

// Source returns the source vertex.
func (s *Solver) Source() int { return s.source }

// Destination returns the destination vertex.
func (s *Solver) Destination() int { return s.destination }
