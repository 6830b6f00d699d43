package heuristic

import (
	"fmt"

	"github.com/ashotpetrossian/Algorithms/gridgraph"
)

// Table holds h(n) for every vertex of a graph with respect to one destination.
// It is computed once and never changes.
type Table struct {
	values      []int64
	mapped      []bool
	destination gridgraph.Cell
}

// NewTable precomputes fn(cell(n), cell(destination)) for every vertex n of a
// v-vertex graph that appears in gi. Vertices absent from the grid get 0.
// A nil fn means Manhattan.
//
// Steps:
//  1. Validate gi against v (gridgraph.ErrCellOutOfRange, gridgraph.ErrDuplicateCell).
//  2. Locate the destination by linear scan (gridgraph.ErrVertexNotInGrid).
//  3. Fill the table from every registered cell.
//
// Complexity: O(W×H + V).
func NewTable(gi *gridgraph.GridIndex, v, destination int, fn Func) (*Table, error) {
	if err := gi.Validate(v); err != nil {
		return nil, err
	}
	dst, err := gi.Locate(destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	if fn == nil {
		fn = Manhattan
	}

	t := &Table{
		values:      make([]int64, v),
		mapped:      make([]bool, v),
		destination: dst,
	}
	gi.Each(func(node int, c gridgraph.Cell) {
		t.values[node] = fn(c, dst)
		t.mapped[node] = true
	})

	return t, nil
}

// Value returns h(node). Out-of-range ids yield 0.
func (t *Table) Value(node int) int64 {
	if node < 0 || node >= len(t.values) {
		return 0
	}

	return t.values[node]
}

// Mapped reports whether node has a grid cell.
func (t *Table) Mapped(node int) bool {
	return node >= 0 && node < len(t.mapped) && t.mapped[node]
}

// Unmapped returns, ascending, the vertices that have no grid cell.
func (t *Table) Unmapped() []int {
	var out []int
	for node, ok := range t.mapped {
		if !ok {
			out = append(out, node)
		}
	}

	return out
}

// Destination returns the destination's cell.
func (t *Table) Destination() gridgraph.Cell {
	return t.destination
}

// Len returns the number of vertices covered.
func (t *Table) Len() int {
	return len(t.values)
}
