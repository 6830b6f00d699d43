// Package astar implements A* shortest-path search on an undirected,
// non-negatively weighted graph whose vertices are laid out on a grid.
//
// A Solver is built once for a fixed graph, source and destination. The grid
// layout only feeds the heuristic: h(n) is the distance from n's cell to the
// destination's cell (Manhattan by default), computed once at construction.
// Search orders the frontier by f(n) = g(n) + h(n), where g(n) is the best
// known cost from the source.
//
// Complexity:
//
//   - Time:  O((V + E) log V) in the worst case (h ≡ 0 is Dijkstra); a good
//     heuristic expands far fewer vertices.
//   - Each vertex is closed at most once; each successful relaxation pushes
//     one heap entry (up to E pushes).
//   - Space: O(V + E): distance, parent, closed and heuristic slices plus the heap.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improved vertex is pushed again and older entries
//     stay in the heap. Entries whose vertex is already closed are discarded
//     when they reach the top.
//   - Once closed, a vertex's distance is final. This holds when the
//     heuristic is consistent: for every edge (u, v, w), |h(u) - h(v)| ≤ w.
//     Manhattan distance on a grid where each edge weighs at least the
//     Manhattan distance between its endpoints satisfies this.
//   - Vertices missing from the grid get h = 0, which keeps admissibility but
//     may break consistency next to mapped vertices. WithStrictGrid rejects
//     such layouts instead.
//   - All inputs are copied at construction; the Solver owns its state and is
//     not safe for concurrent use.
//
// Lifecycle:
//
//	s, err := astar.NewSolver(v, edges, grid, src, dst)
//	if err != nil { ... }              // invalid input, nothing retained
//	if !s.Solve() { ... }              // unreachable: not an error
//	cost, _ := s.ShortestPath()
//	path, _ := s.ReconstructPath()     // ErrPathNotFound before a successful Solve
package astar
