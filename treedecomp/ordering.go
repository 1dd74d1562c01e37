// SPDX-License-Identifier: MIT
// Package: homcount/treedecomp
//
// ordering.go — elimination orderings.
//
// Heuristics:
//   • MinDegree: repeatedly eliminate a vertex of least degree in the fill graph.
//   • MinFill:   repeatedly eliminate a vertex whose elimination adds the
//                fewest fill edges.
//   • Exact:     subset dynamic programming over eliminated sets; returns an
//                ordering of optimal width. Limited to MaxExactVertices.
//
// Determinism: ties always break on the lower vertex id, so the same graph
// yields the same ordering.
//
// Complexity:
//   • MinDegree / MinFill: O(n·(n + Δ²)·log n) with the lazy priority queue.
//   • Exact: O(2^n · n³) time, O(2^n) memory.

package treedecomp

import (
	"fmt"
	mbits "math/bits"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/homcount/errs"
	"github.com/katalvlaran/homcount/graph"
)

// Heuristic selects how an elimination ordering is computed.
type Heuristic int

const (
	// MinFill minimizes fill edges per step. It is the default.
	MinFill Heuristic = iota
	// MinDegree minimizes the fill-graph degree per step.
	MinDegree
	// Exact computes an optimal ordering by subset dynamic programming.
	Exact
)

// MaxExactVertices bounds the pattern order accepted by Exact.
const MaxExactVertices = 16

// String implements fmt.Stringer.
func (h Heuristic) String() string {
	switch h {
	case MinFill:
		return "minfill"
	case MinDegree:
		return "mindegree"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps "minfill", "mindegree" or "exact" to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	for _, h := range []Heuristic{MinFill, MinDegree, Exact} {
		if h.String() == name {
			return h, nil
		}
	}

	return 0, errs.Invalid("unknown heuristic %q", name)
}

// EliminationOrder returns an ordering of the vertices of h computed by heur.
func EliminationOrder(h *graph.Graph, heur Heuristic) ([]int, error) {
	if h == nil || h.Order() == 0 {
		return nil, errors.WithStack(ErrEmptyPattern)
	}
	switch heur {
	case MinFill, MinDegree:
		return greedyOrder(h, heur), nil
	case Exact:
		return exactOrder(h)
	default:
		return nil, errs.Invalid("EliminationOrder: unknown heuristic %d", int(heur))
	}
}

// fillGraph is the mutable graph of the elimination game.
type fillGraph struct {
	n    int
	adj  []bits.Bits
	gone bits.Bits
}

func newFillGraph(h *graph.Graph) *fillGraph {
	n := h.Order()
	f := &fillGraph{n: n, adj: make([]bits.Bits, n), gone: bits.New(n)}
	for v := 0; v < n; v++ {
		f.adj[v] = bits.New(n)
		for _, u := range h.Neighbors(v) {
			f.adj[v].SetBit(u, 1)
		}
	}

	return f
}

// live returns the remaining neighbours of v, ascending.
func (f *fillGraph) live(v int) []int {
	var out []int
	row := f.adj[v]
	for u := row.OneFrom(0); u >= 0; u = row.OneFrom(u + 1) {
		if f.gone.Bit(u) == 0 {
			out = append(out, u)
		}
	}

	return out
}

// fill counts the non-adjacent pairs among the remaining neighbours of v.
func (f *fillGraph) fill(v int) int {
	nb := f.live(v)
	missing := 0
	for i := 0; i < len(nb); i++ {
		for j := i + 1; j < len(nb); j++ {
			if f.adj[nb[i]].Bit(nb[j]) == 0 {
				missing++
			}
		}
	}

	return missing
}

// eliminate makes the remaining neighbours of v a clique, removes v and
// returns those neighbours.
func (f *fillGraph) eliminate(v int) []int {
	nb := f.live(v)
	for i := 0; i < len(nb); i++ {
		for j := i + 1; j < len(nb); j++ {
			f.adj[nb[i]].SetBit(nb[j], 1)
			f.adj[nb[j]].SetBit(nb[i], 1)
		}
	}
	f.gone.SetBit(v, 1)

	return nb
}

// scored is a priority-queue entry; version detects stale entries.
type scored struct {
	v, score, version int
}

func byScoreThenID(a, b interface{}) int {
	x, y := a.(scored), b.(scored)
	if x.score != y.score {
		return x.score - y.score
	}

	return x.v - y.v
}

// greedyOrder runs the elimination game with a lazy priority queue: every
// rescoring pushes a fresh entry and outdated ones are skipped on dequeue.
func greedyOrder(h *graph.Graph, heur Heuristic) []int {
	f := newFillGraph(h)
	score := func(v int) int {
		if heur == MinDegree {
			return len(f.live(v))
		}
		return f.fill(v)
	}

	version := make([]int, f.n)
	pq := priorityqueue.NewWith(byScoreThenID)
	for v := 0; v < f.n; v++ {
		pq.Enqueue(scored{v: v, score: score(v)})
	}

	order := make([]int, 0, f.n)
	for len(order) < f.n {
		item, ok := pq.Dequeue()
		if !ok {
			break
		}
		e := item.(scored)
		if f.gone.Bit(e.v) == 1 || e.version != version[e.v] {
			continue
		}
		order = append(order, e.v)
		nb := f.eliminate(e.v)

		// Degrees change only on N(v); fill counts also on N(N(v)).
		touched := bits.New(f.n)
		for _, u := range nb {
			touched.SetBit(u, 1)
			if heur == MinFill {
				for _, w := range f.live(u) {
					touched.SetBit(w, 1)
				}
			}
		}
		for u := touched.OneFrom(0); u >= 0; u = touched.OneFrom(u + 1) {
			version[u]++
			pq.Enqueue(scored{v: u, score: score(u), version: version[u]})
		}
	}

	return order
}

// exactOrder computes an optimal elimination ordering.
//
// tw[S] is the best achievable max |Q(S', v)| when exactly the vertices of S
// are eliminated first, where Q(S, v) is the set of vertices outside S ∪ {v}
// reachable from v through S. tw[V] is the treewidth.
func exactOrder(h *graph.Graph) ([]int, error) {
	n := h.Order()
	if n > MaxExactVertices {
		return nil, errs.Invalid("EliminationOrder: exact solver accepts at most %d vertices, got %d",
			MaxExactVertices, n)
	}

	adj := make([]uint32, n)
	for v := 0; v < n; v++ {
		for _, u := range h.Neighbors(v) {
			adj[v] |= 1 << uint(u)
		}
	}

	full := uint32(1)<<uint(n) - 1
	tw := make([]int, full+1)
	last := make([]int8, full+1)
	tw[0] = -1
	for s := uint32(1); s <= full; s++ {
		tw[s] = n
		for rest := s; rest != 0; rest &= rest - 1 {
			v := mbits.TrailingZeros32(rest)
			prev := s &^ (1 << uint(v))
			cost := tw[prev]
			if q := mbits.OnesCount32(reachThrough(adj, prev, v) &^ (prev | 1<<uint(v))); q > cost {
				cost = q
			}
			if cost < tw[s] {
				tw[s], last[s] = cost, int8(v)
			}
		}
	}

	order := make([]int, n)
	s := full
	for i := n - 1; i >= 0; i-- {
		v := int(last[s])
		order[i] = v
		s &^= 1 << uint(v)
	}

	return order, nil
}

// reachThrough returns the neighbourhood of everything reachable from v
// through vertices of s.
func reachThrough(adj []uint32, s uint32, v int) uint32 {
	seen := uint32(1) << uint(v)
	frontier := seen
	var boundary uint32
	for frontier != 0 {
		u := mbits.TrailingZeros32(frontier)
		frontier &= frontier - 1
		boundary |= adj[u]
		next := adj[u] & s &^ seen
		seen |= next
		frontier |= next
	}

	return boundary
}
