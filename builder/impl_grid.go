// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - Grid(rows, cols) lattice fixture.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex id r*cols + c sits at cell (r, c), row-major.
//   • Edges to the right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//   • Weight = 1 + slack.
//
// Complexity: O(rows*cols) time and space.

package builder

import (
	"fmt"

	"github.com/ashotpetrossian/Algorithms/gridgraph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-connected lattice with one vertex per cell.
func Grid(rows, cols int, opts ...BuilderOption) (*Fixture, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	f := newFixture(rows*cols, rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.place(r*cols+c, gridgraph.Cell{Row: r, Col: c})
		}
	}

	// Stable edge order: for each (r,c) emit Right then Bottom.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				f.connect(u, u+1, cfg)
			}
			if r+1 < rows {
				f.connect(u, u+cols, cfg)
			}
		}
	}

	return f, nil
}
