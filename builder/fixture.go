package builder

import (
	"github.com/ashotpetrossian/Algorithms/core"
	"github.com/ashotpetrossian/Algorithms/gridgraph"
	"github.com/ashotpetrossian/Algorithms/heuristic"
)

// Fixture is a generated graph together with its grid layout.
type Fixture struct {
	Vertices int
	Edges    []core.Edge
	Grid     [][]int          // vertex id per cell, gridgraph.Empty elsewhere
	Cells    []gridgraph.Cell // Cells[id] is the cell holding vertex id
}

// Graph builds the adjacency structure of the fixture.
func (f *Fixture) Graph() (*core.Graph, error) {
	return core.FromEdges(f.Vertices, f.Edges)
}

// newFixture allocates a rows×cols grid of empty cells for n vertices.
func newFixture(n, rows, cols int) *Fixture {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			grid[r][c] = gridgraph.Empty
		}
	}

	return &Fixture{
		Vertices: n,
		Grid:     grid,
		Cells:    make([]gridgraph.Cell, n),
	}
}

// place puts vertex id at cell c.
func (f *Fixture) place(id int, c gridgraph.Cell) {
	f.Grid[c.Row][c.Col] = id
	f.Cells[id] = c
}

// connect appends the edge u-v weighing span(u,v) + slack.
func (f *Fixture) connect(u, v int, cfg builderConfig) {
	w := heuristic.Manhattan(f.Cells[u], f.Cells[v]) + cfg.weightFn(cfg.rng)
	f.Edges = append(f.Edges, core.Edge{From: u, To: v, Weight: w})
}
