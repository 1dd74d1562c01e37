// SPDX-License-Identifier: MIT
// Package: homcount/hom
//
// handlers.go — the three DP transitions, expressed on bag-labelled tables.
//
// Contract:
//   • A table for bag B has len(B) digits; digit i is the host image of B[i].
//   • Every handler checks its structural preconditions and reports
//     errs.ErrInvalidState when they fail; kernel errors pass through.
//   • Inputs are never modified; each handler returns a fresh table.

package hom

import (
	"github.com/katalvlaran/homcount/dp"
	"github.com/katalvlaran/homcount/errs"
	"github.com/katalvlaran/homcount/graph"
)

// checkBag reports a table whose digit count does not match its bag.
func checkBag(op string, t *dp.Table, bag []int) error {
	if t == nil {
		return errs.State("%s: missing table", op)
	}
	if t.Shape().Digits != len(bag) {
		return errs.State("%s: table has %d digits for bag %v", op, t.Shape().Digits, bag)
	}

	return nil
}

// IntroduceHandler extends a table by one pattern vertex.
type IntroduceHandler struct {
	Pattern   *graph.Graph
	Host      dp.Adjacency
	Injective bool // also zero assignments that reuse a host vertex within the bag
	Remap     dp.Remapper
	Split     dp.Splitter
}

// Introduce adds pattern vertex v at bag position p. Assignments that break a
// pattern edge between v and the child bag are zeroed.
func (h IntroduceHandler) Introduce(child *dp.Table, childBag []int, v, p int) (*dp.Table, error) {
	if err := checkBag("Introduce", child, childBag); err != nil {
		return nil, err
	}
	for _, u := range childBag {
		if u == v {
			return nil, errs.State("Introduce: vertex %d already in bag %v", v, childBag)
		}
	}
	if p < 0 || p > len(childBag) {
		return nil, errs.State("Introduce: position %d outside [0,%d]", p, len(childBag))
	}

	t, err := dp.Introduce(child, h.Split)
	if err != nil {
		return nil, err
	}
	for q, u := range childBag {
		if h.Pattern.HasEdge(u, v) {
			if err = dp.FilterAdjacent(t, q, h.Host, h.Split); err != nil {
				return nil, err
			}
		}
		if h.Injective {
			if err = dp.FilterDistinct(t, q, h.Split); err != nil {
				return nil, err
			}
		}
	}
	if p == len(childBag) {
		return t, nil
	}

	out, err := dp.NewTable(t.Shape())
	if err != nil {
		return nil, err
	}
	if err = h.Remap.Insert(out.Data(), t.Data(), t.Shape(), p); err != nil {
		return nil, err
	}

	return out, nil
}

// ForgetHandler sums one pattern vertex out of a table.
type ForgetHandler struct {
	Remap dp.Remapper
	Split dp.Splitter
}

// Forget eliminates vertex v, found at position p of childBag.
func (h ForgetHandler) Forget(child *dp.Table, childBag []int, v, p int) (*dp.Table, error) {
	if err := checkBag("Forget", child, childBag); err != nil {
		return nil, err
	}
	if p < 0 || p >= len(childBag) || childBag[p] != v {
		return nil, errs.State("Forget: vertex %d is not at position %d of bag %v", v, p, childBag)
	}

	return dp.Forget(child, p, h.Remap, h.Split)
}

// JoinHandler merges the tables of two subtrees that share a bag.
type JoinHandler struct {
	Split dp.Splitter
}

// Join multiplies the two tables pointwise. The bags must be identical,
// element by element.
func (h JoinHandler) Join(left *dp.Table, leftBag []int, right *dp.Table, rightBag []int) (*dp.Table, error) {
	if err := checkBag("Join", left, leftBag); err != nil {
		return nil, err
	}
	if err := checkBag("Join", right, rightBag); err != nil {
		return nil, err
	}
	if len(leftBag) != len(rightBag) {
		return nil, errs.State("Join: bags %v and %v differ", leftBag, rightBag)
	}
	for i := range leftBag {
		if leftBag[i] != rightBag[i] {
			return nil, errs.State("Join: bags %v and %v differ", leftBag, rightBag)
		}
	}

	return dp.Join(left, right, h.Split)
}
