// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage.
package gridgraph

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrVertexNotInGrid indicates that no cell holds the requested vertex.
	ErrVertexNotInGrid = errors.New("gridgraph: vertex cannot be found in the grid")
	// ErrCellOutOfRange indicates a cell value that is neither Empty nor in [0, V).
	ErrCellOutOfRange = errors.New("gridgraph: cell holds a vertex outside [0,V)")
	// ErrDuplicateCell indicates a vertex registered in more than one cell.
	ErrDuplicateCell = errors.New("gridgraph: vertex appears in more than one cell")
	// ErrNoEndpoint indicates an occupancy map without a start or an end marker.
	ErrNoEndpoint = errors.New("gridgraph: occupancy map lacks a start or end marker")
	// ErrDuplicateEndpoint indicates an occupancy map with two start or two end markers.
	ErrDuplicateEndpoint = errors.New("gridgraph: occupancy map repeats a start or end marker")
)

// Empty marks a grid cell that holds no vertex.
const Empty = -1

// Occupancy map cell values.
const (
	Free     = 0 // passable cell
	Wall     = 1 // impassable cell
	Start    = 2 // passable cell where the search begins
	Endpoint = 3 // passable cell the search must reach
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the (dRow, dCol) neighbor offsets for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
}

// Cell is a grid coordinate: Row indexes the outer slice, Col the inner one.
type Cell struct {
	Row, Col int
}

// Point returns the cell as a planar point (x = Col, y = Row).
func (c Cell) Point() orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}

// GridOptions contains tunable parameters for occupancy-map conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4, the movement model
// under which Manhattan distance is an admissible heuristic for unit moves.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridIndex treats a 2D grid of vertex ids as a coordinate lookup table.
// It is immutable once built. cells[row][col] holds a vertex id or Empty.
type GridIndex struct {
	Width, Height int
	cells         [][]int
}
