// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// helpers.go — small shared routines for the constructors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/homcount/graph"
)

// addEdges adds each pair offset by base, wrapping failures with method.
func addEdges(method string, g *graph.Graph, base int, pairs [][2]int) error {
	for _, p := range pairs {
		u, v := base+p[0], base+p[1]
		if err := g.AddEdge(u, v); err != nil {
			return errors.WithMessagef(err, "%s: AddEdge(%d,%d)", method, u, v)
		}
	}

	return nil
}

// relabel returns a copy of g in which vertex v becomes perm[v].
func relabel(g *graph.Graph, perm []int) (*graph.Graph, error) {
	out, err := graph.New(g.Order())
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if err = out.AddEdge(perm[e[0]], perm[e[1]]); err != nil {
			return nil, errors.WithMessage(err, "BuildGraph: relabel")
		}
	}

	return out, nil
}
