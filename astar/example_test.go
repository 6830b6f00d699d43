package astar_test

import (
	"fmt"

	"github.com/ashotpetrossian/Algorithms/astar"
	"github.com/ashotpetrossian/Algorithms/core"
	"github.com/ashotpetrossian/Algorithms/gridgraph"
)

// ExampleSolver shows the full lifecycle on a square where the direct edge
// is more expensive than going around.
func ExampleSolver() {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 0, To: 3, Weight: 5},
	}
	grid := [][]int{
		{0, 1},
		{3, 2},
	}

	s, err := astar.NewSolver(4, edges, grid, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !s.Solve() {
		fmt.Println("unreachable")
		return
	}
	cost, _ := s.ShortestPath()
	path, _ := s.ReconstructPath()
	fmt.Println("cost:", cost)
	fmt.Println("path:", path)
	// Output:
	// cost: 3
	// path: [0 1 2 3]
}

// ExampleNewSolver_negativeWeight shows that invalid input yields no solver.
func ExampleNewSolver_negativeWeight() {
	s, err := astar.NewSolver(2, []core.Edge{{From: 0, To: 1, Weight: -4}}, [][]int{{0, 1}}, 0, 1)
	fmt.Println(s == nil, err)
	// Output: true edge #0: core: negative edge weight: 0-1 weight=-4
}

// ExampleSolver_occupancy routes a robot around a wall.
func ExampleSolver_occupancy() {
	layout, err := gridgraph.FromOccupancy([][]int{
		{2, 1, 3},
		{0, 1, 0},
		{0, 0, 0},
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := astar.NewSolver(layout.Vertices, layout.Edges, layout.Grid, layout.Source, layout.Destination)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, _ := s.ShortestPath()
	path, _ := s.ReconstructPath()
	fmt.Println("moves:", cost)
	for _, c := range layout.Cells(path) {
		fmt.Printf("(%d,%d) ", c.Row, c.Col)
	}
	fmt.Println()
	// Output:
	// moves: 6
	// (0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)
}
