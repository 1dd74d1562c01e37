// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood.
//   • Cell (r,c) gets id base + r*cols + c (row-major order).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Edges to the right (r,c+1) and bottom (r+1,c) neighbours where they exist.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.
//
// Determinism:
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"github.com/katalvlaran/homcount/graph"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		// 2) Emit edges: for each (r,c), connect to Right and Bottom neighbours.
		pairs := make([][2]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					pairs = append(pairs, [2]int{u, u + 1})
				}
				if r+1 < rows {
					pairs = append(pairs, [2]int{u, u + cols})
				}
			}
		}

		base := g.AddVertices(rows * cols)

		return addEdges(MethodGrid, g, base, pairs)
	}
}
