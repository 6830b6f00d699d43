package gridgraph

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// pointTol is the half-side of the box stored per cell. Squared distances
// between cell centers are integers, so it cannot reorder neighbors.
const pointTol = 1e-6

// cellEntry wraps a registered cell for R-tree storage.
// Each cell is stored as a near-point box on its center (Col, Row), so
// nearest-neighbor ranking follows center distance.
type cellEntry struct {
	node int
	cell Cell
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *cellEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// SpatialIndex answers proximity queries over the registered cells of a GridIndex.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// SpatialIndex builds an R-tree over every non-empty cell of gi.
// Complexity: O(N log N) for N registered cells.
func (gi *GridIndex) SpatialIndex() *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	gi.Each(func(node int, c Cell) {
		bbox := rtreego.Point{float64(c.Col), float64(c.Row)}.ToRect(pointTol)
		tree.Insert(&cellEntry{node: node, cell: c, bbox: bbox})
	})

	return &SpatialIndex{tree: tree}
}

// cellRect returns the square of half-side half centered on c.
func cellRect(c Cell, half float64) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(c.Col) - half, float64(c.Row) - half},
		[]float64{2 * half, 2 * half},
	)
}

// Len returns the number of indexed cells.
func (si *SpatialIndex) Len() int {
	return si.tree.Size()
}

// Nearest snaps c to the registered vertex whose center is closest to c
// in Euclidean distance. c may be empty or even outside the grid. ok is
// false only when the index holds no cells.
// Ties between equally distant cells are broken arbitrarily.
func (si *SpatialIndex) Nearest(c Cell) (node int, at Cell, ok bool) {
	if si.tree.Size() == 0 {
		return Empty, Cell{}, false
	}
	hit := si.tree.NearestNeighbor(rtreego.Point{float64(c.Col), float64(c.Row)})
	if hit == nil {
		return Empty, Cell{}, false
	}
	e := hit.(*cellEntry)

	return e.node, e.cell, true
}

// Within returns the vertices whose cells lie within Manhattan distance
// radius of c, sorted ascending. A negative radius yields nil.
func (si *SpatialIndex) Within(c Cell, radius int) []int {
	if radius < 0 {
		return nil
	}
	// The box reaches a quarter cell past the radius: it holds the centers
	// of the boundary ring and stops short of the next one.
	box, err := cellRect(c, float64(radius)+0.25)
	if err != nil {
		return nil
	}
	var out []int
	for _, hit := range si.tree.SearchIntersect(box) {
		e := hit.(*cellEntry)
		if manhattan(e.cell, c) <= radius {
			out = append(out, e.node)
		}
	}
	sort.Ints(out)

	return out
}

func manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
