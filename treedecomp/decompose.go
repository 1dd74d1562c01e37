// SPDX-License-Identifier: MIT
// Package: homcount/treedecomp
//
// decompose.go — one-call pipeline and its options.

package treedecomp

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/homcount/graph"
)

// Options configures Decompose.
type Options struct {
	// Heuristic computes the elimination ordering (default MinFill).
	Heuristic Heuristic
	// Order, when non-nil, is used as the elimination ordering and Heuristic
	// is ignored.
	Order []int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options Decompose uses when none are given.
func DefaultOptions() Options {
	return Options{Heuristic: MinFill}
}

// WithHeuristic selects the ordering heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithOrder fixes the elimination ordering.
func WithOrder(order []int) Option {
	return func(o *Options) { o.Order = append([]int(nil), order...) }
}

// Decompose computes an elimination ordering of h, builds the induced tree
// decomposition, normalises it and validates the result.
func Decompose(h *graph.Graph, opts ...Option) (*Nice, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := o.Order
	if order == nil {
		var err error
		if order, err = EliminationOrder(h, o.Heuristic); err != nil {
			return nil, err
		}
	}
	td, err := FromOrdering(h, order)
	if err != nil {
		return nil, err
	}
	nice, err := ToNice(td)
	if err != nil {
		return nil, err
	}
	if err = Validate(h, nice); err != nil {
		return nil, errors.WithMessage(err, "Decompose")
	}

	klog.V(2).Infof("treedecomp: %s order=%v %s", o.Heuristic, order, nice.Stats())

	return nice, nil
}
