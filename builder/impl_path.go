// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i -> i+1 for i=0..n-2.

package builder

import (
	"github.com/katalvlaran/homcount/graph"
)

// Path returns a Constructor that builds the simple path P_n on n vertices.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			pairs = append(pairs, [2]int{i, i + 1})
		}
		base := g.AddVertices(n)

		return addEdges(MethodPath, g, base, pairs)
	}
}
