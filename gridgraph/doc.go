// Package gridgraph maps graph vertices onto a 2D grid of cells.
//
// What:
//
//   - GridIndex wraps a rectangular [][]int layout where each cell holds a
//     vertex id or Empty. It is a deep, immutable copy of the caller's grid.
//   - Locate finds the cell of a vertex by a row-major linear scan.
//   - SpatialIndex keeps the registered cells in an R-tree so an arbitrary
//     cell can be snapped to the closest registered vertex.
//   - FromOccupancy turns a free/wall occupancy map (with a start and an end
//     marker) into a Layout: vertex count, unit-weight edges, and the grid of
//     vertex ids, ready for a shortest-path solver.
//
// Why:
//
//   - Heuristics such as Manhattan distance need coordinates; the graph
//     itself only knows integer ids and weights.
//   - Interactive maps place start/goal by clicking cells that may be empty.
//
// Complexity:
//
//   - NewGridIndex, Locate, Validate: O(W×H).
//   - SpatialIndex build: O(N log N); Nearest: O(log N) expected.
//   - FromOccupancy: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrVertexNotInGrid: Locate found no cell holding the vertex.
//   - ErrCellOutOfRange: a cell holds an id outside [0, V).
//   - ErrDuplicateCell: a vertex id occupies more than one cell.
//   - ErrNoEndpoint, ErrDuplicateEndpoint: occupancy map lacks (or repeats)
//     its start or end marker.
package gridgraph
