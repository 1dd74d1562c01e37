// SPDX-License-Identifier: MIT
// Package: homcount/hom
//
// injective.go — exact injective counts from bag-level injectivity.
//
// The DP with distinctness filters counts maps that are injective on every
// bag ("bag-injective"): two vertices that never share a bag may still land
// on the same host vertex. Grouping those maps by their kernel partition σ,
//
//	bagInj(F) = Σ_{σ S-free} inj(F/σ)
//
// where S is the set of pairs sharing a bag of F's decomposition and σ is
// S-free when none of its blocks contains such a pair. The trivial partition
// contributes inj(F) itself, so
//
//	inj(F) = bagInj(F) − Σ_{σ S-free, non-trivial} inj(F/σ).
//
// Quotients are smaller graphs and recurse the same way. Results are memoised
// by the partition of the original pattern's vertices they stand for.

package hom

import (
	"context"
	"fmt"
	"math/bits"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/homcount/errs"
	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/treedecomp"
)

// injectiveSolver evaluates inj(F, G) for one host and the quotients of one
// pattern. It is used by a single goroutine.
type injectiveSolver struct {
	c    *Counter
	host *graph.Graph
	memo map[string]uint64
}

func newInjectiveSolver(c *Counter, host *graph.Graph) *injectiveSolver {
	return &injectiveSolver{c: c, host: host, memo: make(map[string]uint64)}
}

// count returns the number of injective homomorphisms h → host. nice is a
// decomposition of h.
func (s *injectiveSolver) count(ctx context.Context, h *graph.Graph, nice *treedecomp.Nice) (uint64, error) {
	identity := make([]int, h.Order())
	for v := range identity {
		identity[v] = v
	}

	return s.solve(ctx, h, nice, identity, partitionKey(identity))
}

// solve computes inj(f) where proj maps each original pattern vertex to its
// vertex in f and key is partitionKey(proj). nice may be nil, in which case f
// is decomposed here.
func (s *injectiveSolver) solve(ctx context.Context, f *graph.Graph, nice *treedecomp.Nice, proj []int, key string) (uint64, error) {
	if v, ok := s.memo[key]; ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrapf(errs.ErrCancelled, "injective: %v", err)
	}
	if f.Order() > s.host.Order() {
		s.memo[key] = 0
		return 0, nil
	}

	if nice == nil {
		var err error
		if nice, err = s.c.Decompose(f); err != nil {
			return 0, err
		}
	}
	total, err := s.c.evaluate(ctx, nice, f, s.host, true)
	if err != nil {
		return 0, err
	}

	var excess uint64
	shares := nice.SharesBag(f.Order())
	err = forEachMerge(f.Order(), shares, func(labels []int) error {
		next := make([]int, len(proj))
		for v, p := range proj {
			next[v] = labels[p]
		}
		nextKey := partitionKey(next)
		sub, ok := s.memo[nextKey]
		if !ok {
			q, err := f.Quotient(labels)
			if err != nil {
				return errors.WithMessage(err, "injective")
			}
			if sub, err = s.solve(ctx, q, nil, next, nextKey); err != nil {
				return err
			}
		}
		var carry uint64
		if excess, carry = bits.Add64(excess, sub, 0); carry != 0 {
			return errs.Overflow("injective: correction sum")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if excess > total {
		return 0, errs.State("injective: %d bag-injective maps but %d with merged vertices", total, excess)
	}

	s.memo[key] = total - excess
	return total - excess, nil
}

// forEachMerge calls fn with the labels of every non-trivial partition of
// 0..n-1 whose blocks avoid the pairs marked in conflict. Labels follow
// first-occurrence order, so block i becomes quotient vertex i.
func forEachMerge(n int, conflict [][]bool, fn func(labels []int) error) error {
	labels := make([]int, n)
	members := make([][]int, 0, n)

	var walk func(v int) error
	walk = func(v int) error {
		if v == n {
			if len(members) == n {
				return nil
			}
			return fn(append([]int(nil), labels...))
		}
		for b := range members {
			ok := true
			for _, u := range members[b] {
				if conflict[u][v] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			labels[v] = b
			members[b] = append(members[b], v)
			err := walk(v + 1)
			members[b] = members[b][:len(members[b])-1]
			if err != nil {
				return err
			}
		}
		labels[v] = len(members)
		members = append(members, []int{v})
		err := walk(v + 1)
		members = members[:len(members)-1]

		return err
	}

	return walk(0)
}

// partitionKey renders the partition described by labels canonically.
func partitionKey(labels []int) string {
	var sb strings.Builder
	for i, l := range graph.CanonicalLabels(labels) {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, l)
	}

	return sb.String()
}
