// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Stub matching (pairing model): each vertex contributes d stubs, stubs are
//     shuffled and paired consecutively. Pairings with loops or repeated pairs
//     are rejected and reshuffled, up to maxStubMatchingAttempts times.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • After the attempt budget: ErrConstructFailed.
//
// Complexity:
//   • Per attempt O(n·d) time and space.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/homcount/graph"
)

// maxStubMatchingAttempts bounds the number of reshuffles.
const maxStubMatchingAttempts = 64

// RandomRegular returns a Constructor that builds a d-regular simple graph.
func RandomRegular(n, d int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, 1); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return errors.Wrapf(ErrTooFewVertices, "%s: degree must be in [0,%d), got %d", MethodRandomRegular, n, d)
		}
		if (n*d)%2 != 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: n*d must be even (n=%d, d=%d)", MethodRandomRegular, n, d)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomRegular)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			g.AddVertices(n)
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			// Validate the pairing without mutating the graph.
			pairs := make([][2]int, 0, len(stubs)/2)
			seen := make(map[[2]int]struct{}, len(stubs)/2)
			valid := true
			for i := 0; i < len(stubs); i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
				pairs = append(pairs, key)
			}
			if !valid {
				continue
			}

			base := g.AddVertices(n)
			return addEdges(MethodRandomRegular, g, base, pairs)
		}

		return errors.Wrapf(ErrConstructFailed, "%s: no simple pairing after %d attempts",
			MethodRandomRegular, maxStubMatchingAttempts)
	}
}
