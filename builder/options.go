// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating a builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand attaches a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRelabel asks BuildGraph to permute the vertex ids of the finished graph
// using the configured RNG (WithSeed/WithRand must also be given).
func WithRelabel() BuilderOption {
	return func(c *builderConfig) {
		c.relabel = true
	}
}
