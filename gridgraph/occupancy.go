package gridgraph

import (
	"fmt"

	"github.com/ashotpetrossian/Algorithms/core"
)

// Layout is an occupancy map converted into solver inputs.
//
// Every non-wall cell becomes a vertex, numbered in row-major order.
// Grid holds the vertex id of each cell (Empty for walls), Edges joins
// neighboring passable cells with unit weight.
type Layout struct {
	Vertices    int
	Edges       []core.Edge
	Grid        [][]int
	Source      int
	Destination int

	cells []Cell // vertex id → cell
}

// CellOf returns the cell of vertex node.
func (l *Layout) CellOf(node int) (Cell, bool) {
	if node < 0 || node >= len(l.cells) {
		return Cell{}, false
	}

	return l.cells[node], true
}

// Cells maps a vertex path back to grid cells. Unknown ids are skipped.
func (l *Layout) Cells(path []int) []Cell {
	out := make([]Cell, 0, len(path))
	for _, node := range path {
		if c, ok := l.CellOf(node); ok {
			out = append(out, c)
		}
	}

	return out
}

// FromOccupancy converts a map of Free/Wall/Start/Endpoint cells into a Layout.
//
// Behavior:
//  1. Validate shape (ErrEmptyGrid, ErrNonRectangular).
//  2. Number every cell that is not a Wall, row-major. Any value other than
//     Wall is passable; Start and Endpoint must each appear exactly once
//     (ErrNoEndpoint, ErrDuplicateEndpoint).
//  3. Join each pair of passable neighbors (per opts.Conn) with one edge of
//     weight 1.
//
// Under Conn8 a diagonal move also costs 1, so Manhattan distance
// overestimates; pair it with a Chebyshev heuristic instead.
//
// Complexity: O(W×H×d) time, O(W×H) memory.
func FromOccupancy(values [][]int, opts GridOptions) (*Layout, error) {
	h, w, err := dimensions(values)
	if err != nil {
		return nil, err
	}
	gi := &GridIndex{Width: w, Height: h}

	l := &Layout{
		Grid:        make([][]int, h),
		Source:      Empty,
		Destination: Empty,
	}
	ids := make([]int, w*h) // row-major index → vertex id
	for r := 0; r < h; r++ {
		l.Grid[r] = make([]int, w)
		for c := 0; c < w; c++ {
			cell := Cell{Row: r, Col: c}
			v := values[r][c]
			if v == Wall {
				l.Grid[r][c] = Empty
				ids[gi.index(cell)] = Empty
				continue
			}
			node := len(l.cells)
			l.cells = append(l.cells, cell)
			l.Grid[r][c] = node
			ids[gi.index(cell)] = node
			switch v {
			case Start:
				if l.Source != Empty {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateEndpoint, r, c)
				}
				l.Source = node
			case Endpoint:
				if l.Destination != Empty {
					return nil, fmt.Errorf("%w: second endpoint at (%d,%d)", ErrDuplicateEndpoint, r, c)
				}
				l.Destination = node
			}
		}
	}
	if l.Source == Empty || l.Destination == Empty {
		return nil, fmt.Errorf("%w: start=%t endpoint=%t", ErrNoEndpoint, l.Source != Empty, l.Destination != Empty)
	}
	l.Vertices = len(l.cells)

	// Each unordered pair is emitted once, from its lower vertex id.
	offsets := opts.Conn.offsets()
	for u, cell := range l.cells {
		for _, d := range offsets {
			nb := Cell{Row: cell.Row + d[0], Col: cell.Col + d[1]}
			if !gi.InBounds(nb) {
				continue
			}
			v := ids[gi.index(nb)]
			if v == Empty || v < u {
				continue
			}
			l.Edges = append(l.Edges, core.Edge{From: u, To: v, Weight: 1})
		}
	}

	return l, nil
}
