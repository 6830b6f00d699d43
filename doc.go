// Package algorithms is a small toolkit for shortest-path search on graphs
// whose vertices are laid out on a 2D grid.
//
// Subpackages:
//
//	core/      - dense integer-id undirected graph with non-negative int64 weights
//	gridgraph/ - grid layouts: vertex lookup, validation, R-tree queries, occupancy maps
//	heuristic/ - cell distance estimates (Manhattan, Euclidean, Chebyshev, Zero) and per-destination tables
//	astar/     - A* solver with lazy-deletion priority queue, path reconstruction and search trace
//	dijkstra/  - uninformed single-source reference
//	builder/   - deterministic lattice and random geometric fixtures
//
// Quick example:
//
//	    0───1
//	  5 │   │ 1
//	    3───2
//	      1
//
//	s, err := astar.NewSolver(4, edges, [][]int{{0, 1}, {3, 2}}, 0, 3)
//	if err != nil { ... }
//	s.Solve()
//	cost, _ := s.ShortestPath()     // 3
//	path, _ := s.ReconstructPath()  // [0 1 2 3]
//
// See examples/gridroute for a runnable demo.
package algorithms
