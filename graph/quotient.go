// SPDX-License-Identifier: MIT
// Package: homcount/graph
//
// quotient.go — vertex identification (graph quotients by a partition).

package graph

import "github.com/pkg/errors"

// ErrBadPartition indicates a label slice that does not describe a partition
// of the vertex set (wrong length or negative label).
var ErrBadPartition = errors.New("graph: bad partition")

// Quotient merges the vertices of g that share a label. labels[v] is the block
// of vertex v; the result has max(labels)+1 vertices, block i becoming vertex i.
// Parallel edges collapse. A block that contains an edge of g would produce a
// self-loop, so it is rejected with ErrLoopNotAllowed.
//
// Complexity: O(n + m) plus the row allocation of the result.
func (g *Graph) Quotient(labels []int) (*Graph, error) {
	if len(labels) != g.n {
		return nil, errors.Wrapf(ErrBadPartition, "Quotient: %d labels for %d vertices", len(labels), g.n)
	}
	k := 0
	for v, l := range labels {
		if l < 0 {
			return nil, errors.Wrapf(ErrBadPartition, "Quotient: vertex %d has label %d", v, l)
		}
		if l+1 > k {
			k = l + 1
		}
	}

	q, err := New(k)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		a, b := labels[e[0]], labels[e[1]]
		if a == b {
			return nil, errors.Wrapf(ErrLoopNotAllowed, "Quotient: edge %d-%d inside block %d", e[0], e[1], a)
		}
		if err = q.AddEdge(a, b); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// CanonicalLabels renumbers labels by first occurrence, so that two label
// slices describing the same partition become equal. The input is not modified.
func CanonicalLabels(labels []int) []int {
	seen := make(map[int]int, len(labels))
	out := make([]int, len(labels))
	for i, l := range labels {
		c, ok := seen[l]
		if !ok {
			c = len(seen)
			seen[l] = c
		}
		out[i] = c
	}

	return out
}
