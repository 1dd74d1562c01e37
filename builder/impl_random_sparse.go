// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   • Time: O(n²) Bernoulli trials.
//
// Determinism:
//   • Stable trial order: i asc, then j asc (j > i).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/homcount/graph"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomSparse)
		}

		// 2) Sample pairs in a stable order.
		var pairs [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MaxProbability:
					pairs = append(pairs, [2]int{i, j})
				case p == MinProbability:
				case rng.Float64() < p:
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}

		base := g.AddVertices(n)

		return addEdges(MethodRandomSparse, g, base, pairs)
	}
}
