// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_geometric.go - RandomGeometric(n, rows, cols, p) fixture.
//
// Contract:
//   • n ≥ 1, rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   • n ≤ rows*cols (else ErrGridTooSmall).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • An RNG is required for placement (else ErrNeedRandSource).
//   • Vertices take the first n cells of a random permutation of the grid.
//   • Each unordered pair {i,j}, i<j, is joined with probability p;
//     weight = Manhattan span + slack ≥ 1.
//
// Complexity: O(rows*cols + n²) time, O(rows*cols + E) space.
//
// Determinism: trial order is i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/ashotpetrossian/Algorithms/gridgraph"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minGeometricVertices  = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomGeometric scatters n vertices over a rows×cols grid and samples an
// Erdős–Rényi edge set among them.
func RandomGeometric(n, rows, cols int, p float64, opts ...BuilderOption) (*Fixture, error) {
	if n < minGeometricVertices || rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: n=%d, rows=%d, cols=%d: %w",
			methodRandomGeometric, n, rows, cols, ErrTooFewVertices)
	}
	if n > rows*cols {
		return nil, fmt.Errorf("%s: n=%d > %d cells: %w",
			methodRandomGeometric, n, rows*cols, ErrGridTooSmall)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomGeometric, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
	}

	f := newFixture(n, rows, cols)
	perm := cfg.rng.Perm(rows * cols)
	for id := 0; id < n; id++ {
		f.place(id, gridgraph.Cell{Row: perm[id] / cols, Col: perm[id] % cols})
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				f.connect(i, j, cfg)
			}
		}
	}

	return f, nil
}
