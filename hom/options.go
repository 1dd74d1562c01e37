// SPDX-License-Identifier: MIT
// Package: homcount/hom
//
// options.go — counting modes and functional options.

package hom

import (
	"fmt"

	"github.com/katalvlaran/homcount/dp"
	"github.com/katalvlaran/homcount/errs"
	"github.com/katalvlaran/homcount/treedecomp"
)

// Mode selects what is counted.
type Mode int

const (
	// ModeHomomorphism counts edge-preserving maps V(H) → V(G).
	ModeHomomorphism Mode = iota
	// ModeInjective counts injective homomorphisms.
	ModeInjective
	// ModeSubgraph counts subgraphs of G isomorphic to H, i.e. injective
	// homomorphisms divided by the automorphisms of H.
	ModeSubgraph
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeHomomorphism:
		return "hom"
	case ModeInjective:
		return "injective"
	case ModeSubgraph:
		return "subgraph"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "hom", "injective" or "subgraph" to a Mode.
func ParseMode(name string) (Mode, error) {
	for _, m := range []Mode{ModeHomomorphism, ModeInjective, ModeSubgraph} {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, errs.Invalid("unknown mode %q", name)
}

// Options configures a Counter.
type Options struct {
	Heuristic     treedecomp.Heuristic // elimination heuristic for Decompose
	Strategy      dp.Strategy          // Remapper implementation
	Workers       int                  // data-parallel workers per kernel; <= 1 is sequential
	MinChunk      int                  // smallest per-worker range; <= 0 means dp.DefaultMinChunk
	ParallelJoins bool                 // evaluate the two subtrees of a Join concurrently
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MinFill, the arithmetic remapper, sequential kernels
// and sequential joins.
func DefaultOptions() Options {
	return Options{
		Heuristic: treedecomp.MinFill,
		Strategy:  dp.StrategyArithmetic,
		Workers:   1,
	}
}

// WithHeuristic selects the elimination heuristic.
func WithHeuristic(h treedecomp.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithStrategy selects the Remapper implementation.
func WithStrategy(s dp.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithWorkers sets the number of data-parallel workers per kernel.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMinChunk sets the smallest index range handed to one worker.
func WithMinChunk(n int) Option {
	return func(o *Options) { o.MinChunk = n }
}

// WithParallelJoins toggles concurrent evaluation of Join subtrees.
func WithParallelJoins(on bool) Option {
	return func(o *Options) { o.ParallelJoins = on }
}
