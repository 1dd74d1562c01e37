// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// api.go — the Constructor type and the BuildGraph orchestrator.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Constructors append vertices; they never renumber what earlier constructors added.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   • Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/homcount/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before adding anything.
//   - Add their vertices through g.AddVertices and offset their edges by the
//     returned base id.
//   - Return sentinel errors wrapped with their method name.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new graph, resolves the builder configuration from bopts
// and applies all constructors in order. When WithRelabel is set the finished
// graph is relabelled by a random permutation drawn from the configured RNG.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or WithRelabel without RNG.
//   - Any constructor error, wrapped with "BuildGraph".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(0)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err = fn(g, cfg); err != nil {
			return nil, errors.WithMessage(err, "BuildGraph")
		}
	}

	if !cfg.relabel {
		return g, nil
	}
	if cfg.rng == nil {
		return nil, errors.Wrap(ErrNeedRandSource, "BuildGraph: WithRelabel")
	}

	return relabel(g, cfg.rng.Perm(g.Order()))
}

// Must is a test helper that panics when BuildGraph fails.
func Must(g *graph.Graph, err error) *graph.Graph {
	if err != nil {
		panic(err)
	}

	return g
}
