package gridgraph

import "fmt"

// NewGridIndex constructs a GridIndex from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridIndex(values [][]int) (*GridIndex, error) {
	h, w, err := dimensions(values)
	if err != nil {
		return nil, err
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &GridIndex{Width: w, Height: h, cells: cells}, nil
}

// dimensions validates the shape of values and returns (rows, cols).
func dimensions(values [][]int) (h, w int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	h, w = len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), w)
		}
	}

	return h, w, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gi *GridIndex) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gi.Height && c.Col >= 0 && c.Col < gi.Width
}

// At returns the vertex stored at c. ok is false for Empty or out-of-bounds cells.
func (gi *GridIndex) At(c Cell) (node int, ok bool) {
	if !gi.InBounds(c) {
		return Empty, false
	}
	node = gi.cells[c.Row][c.Col]

	return node, node != Empty
}

// Locate returns the first cell, in row-major order, that holds node.
// Returns ErrVertexNotInGrid if no cell does.
// Complexity: O(W×H).
func (gi *GridIndex) Locate(node int) (Cell, error) {
	for r := 0; r < gi.Height; r++ {
		for c := 0; c < gi.Width; c++ {
			if gi.cells[r][c] == node {
				return Cell{Row: r, Col: c}, nil
			}
		}
	}

	return Cell{}, fmt.Errorf("%w: vertex %d", ErrVertexNotInGrid, node)
}

// Each calls fn for every non-empty cell in row-major order.
func (gi *GridIndex) Each(fn func(node int, c Cell)) {
	for r := 0; r < gi.Height; r++ {
		for c := 0; c < gi.Width; c++ {
			if node := gi.cells[r][c]; node != Empty {
				fn(node, Cell{Row: r, Col: c})
			}
		}
	}
}

// Validate checks the grid against a graph of v vertices: every non-empty
// cell must hold an id in [0, v) and no id may occupy two cells.
// Returns ErrCellOutOfRange or ErrDuplicateCell with the offending cell.
// Complexity: O(W×H + v).
func (gi *GridIndex) Validate(v int) error {
	seen := make([]bool, max(v, 0))
	for r := 0; r < gi.Height; r++ {
		for c := 0; c < gi.Width; c++ {
			node := gi.cells[r][c]
			if node == Empty {
				continue
			}
			if node < 0 || node >= v {
				return fmt.Errorf("%w: cell (%d,%d) holds %d with V=%d", ErrCellOutOfRange, r, c, node, v)
			}
			if seen[node] {
				return fmt.Errorf("%w: vertex %d again at (%d,%d)", ErrDuplicateCell, node, r, c)
			}
			seen[node] = true
		}
	}

	return nil
}

// Rows returns a deep copy of the underlying grid.
func (gi *GridIndex) Rows() [][]int {
	out := make([][]int, gi.Height)
	for r := range out {
		out[r] = make([]int, gi.Width)
		copy(out[r], gi.cells[r])
	}

	return out
}

// index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gi *GridIndex) index(c Cell) int {
	return c.Row*gi.Width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gi *GridIndex) Coordinate(idx int) Cell {
	return Cell{Row: idx / gi.Width, Col: idx % gi.Width}
}
