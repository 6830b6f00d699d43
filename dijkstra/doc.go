// Package dijkstra computes exact single-source shortest paths on a
// core.Graph with non-negative weights.
//
// It is the uninformed baseline for the astar package: running A* with
// heuristic.Zero expands vertices in the same order of distance, and the
// property tests of astar compare against ShortestPaths.
//
// Key features:
//
//   - Distances and predecessors are dense slices indexed by vertex id.
//   - MaxDistance aborts exploration beyond a given distance.
//   - InfEdgeThreshold treats heavy edges as impassable.
//   - PathTo rebuilds the vertex sequence to any reached vertex.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: duplicates are pushed and stale entries skipped on pop.
//   - Relaxation uses a strict "<", so equal-cost alternatives keep the first
//     predecessor found.
//   - Negative weights cannot occur: core.Graph rejects them on insertion.
package dijkstra
