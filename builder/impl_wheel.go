// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Hub is local id 0; rim vertices 1..n-1 form a cycle C_{n-1}.
//   • Edge order: rim i -> i+1 (wrapping) first, then spokes 0 -> i.

package builder

import (
	"github.com/katalvlaran/homcount/graph"
)

// Wheel returns a Constructor that builds the wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		rim := n - 1
		pairs := make([][2]int, 0, 2*rim)
		for i := 0; i < rim; i++ {
			pairs = append(pairs, [2]int{1 + i, 1 + (i+1)%rim})
		}
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{0, i})
		}
		base := g.AddVertices(n)

		return addEdges(MethodWheel, g, base, pairs)
	}
}
