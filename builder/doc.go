// Package builder generates deterministic test and benchmark fixtures for
// the grid-backed shortest-path packages.
//
// Every constructor returns a Fixture: a vertex count, an undirected edge
// list and a grid layout that places each vertex in its own cell. The pieces
// feed astar.NewSolver and core.FromEdges directly.
//
// Weight policy:
//
//   - Each edge weighs the Manhattan distance between its endpoint cells plus
//     a non-negative slack drawn from the configured WeightFn.
//   - Weights therefore never undercut the Manhattan heuristic, which keeps
//     it consistent on every fixture.
//
// Constructors:
//
//   - Grid(rows, cols):            full 4-connected lattice, one vertex per cell.
//   - RandomGeometric(n, rows, cols, p): n vertices scattered over distinct
//     cells, each pair joined with probability p.
//
// Determinism: the same arguments, options and seed give identical fixtures.
// Option constructors panic on meaningless values; constructors return
// sentinel errors and never panic.
package builder
