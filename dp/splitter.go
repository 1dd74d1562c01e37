// SPDX-License-Identifier: MIT
// Package: homcount/dp
//
// splitter.go — data-parallel partitioning of per-index work.
//
// Every kernel in this package computes each output index from a bounded set
// of input indices, so disjoint index ranges can run on separate goroutines
// with no locking. The errgroup Wait is the operator barrier: a table is only
// handed on after every range has finished.

package dp

import (
	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest range handed to a worker.
const DefaultMinChunk = 1 << 14

// Splitter partitions [0, size) across at most Workers goroutines.
// The zero value runs everything on the calling goroutine.
type Splitter struct {
	Workers  int // <= 1 means sequential
	MinChunk int // <= 0 means DefaultMinChunk
}

// Run calls fn on disjoint ranges [lo, hi) covering [0, size) and returns the
// first error any call reports.
func (s Splitter) Run(size int, fn func(lo, hi int) error) error {
	if size <= 0 {
		return nil
	}
	chunk := s.MinChunk
	if chunk <= 0 {
		chunk = DefaultMinChunk
	}
	if s.Workers <= 1 || size <= chunk {
		return fn(0, size)
	}

	parts := min(s.Workers, (size+chunk-1)/chunk)
	step := (size + parts - 1) / parts

	var g errgroup.Group
	for lo := 0; lo < size; lo += step {
		lo, hi := lo, min(lo+step, size)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
