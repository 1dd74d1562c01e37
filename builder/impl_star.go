// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is the first vertex (local id 0); leaves are 1..n-1.

package builder

import (
	"github.com/katalvlaran/homcount/graph"
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{0, i})
		}
		base := g.AddVertices(n)

		return addEdges(MethodStar, g, base, pairs)
	}
}
