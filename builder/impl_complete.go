// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(a, b) constructors.
//
// Contract:
//   • Complete: n ≥ 1; emits each unordered pair {i,j}, i<j, in lexicographic order.
//   • CompleteBipartite: a, b ≥ 1; left side is local ids 0..a-1, right side a..a+b-1.
//
// Complexity:
//   • Complete: O(n²) edges. CompleteBipartite: O(a·b) edges.

package builder

import (
	"github.com/katalvlaran/homcount/graph"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
		base := g.AddVertices(n)

		return addEdges(MethodComplete, g, base, pairs)
	}
}

// CompleteBipartite returns a Constructor that builds K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "a", a, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "b", b, MinPartition); err != nil {
			return err
		}

		pairs := make([][2]int, 0, a*b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				pairs = append(pairs, [2]int{i, a + j})
			}
		}
		base := g.AddVertices(a + b)

		return addEdges(MethodCompleteBipartite, g, base, pairs)
	}
}
