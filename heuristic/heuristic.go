// Package heuristic provides grid-distance estimates for A* and the
// per-destination table that caches them.
//
// Every Func returns an integer lower bound on the travel cost between two
// cells. A Func is admissible for a graph when, for every edge, the weight is
// at least the Func's value between the edge's endpoints; the functions here
// are also consistent under that condition, which is what a closed-set A*
// needs to return optimal costs.
//
//	Manhattan ≥ Euclidean ≥ Chebyshev ≥ Zero
//
// Manhattan suits 4-connected grids, Chebyshev 8-connected grids with unit
// diagonal moves, and Zero degrades A* to Dijkstra.
package heuristic

import (
	"math"

	"github.com/ashotpetrossian/Algorithms/gridgraph"
	"github.com/paulmach/orb/planar"
)

// Func estimates the cost of travelling from one cell to another.
type Func func(from, to gridgraph.Cell) int64

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b gridgraph.Cell) int64 {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Euclidean returns the straight-line distance rounded down.
func Euclidean(a, b gridgraph.Cell) int64 {
	return int64(math.Floor(planar.Distance(a.Point(), b.Point())))
}

// Chebyshev returns max(|Δrow|, |Δcol|).
func Chebyshev(a, b gridgraph.Cell) int64 {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

// Zero always returns 0.
func Zero(_, _ gridgraph.Cell) int64 {
	return 0
}

func abs(x int) int64 {
	if x < 0 {
		return int64(-x)
	}
	return int64(x)
}
