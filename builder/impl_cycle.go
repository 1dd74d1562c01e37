// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/katalvlaran/homcount/graph"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		pairs := make([][2]int, n)
		for i := 0; i < n; i++ {
			pairs[i] = [2]int{i, (i + 1) % n}
		}
		base := g.AddVertices(n)

		return addEdges(MethodCycle, g, base, pairs)
	}
}
