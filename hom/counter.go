// SPDX-License-Identifier: MIT
// Package: homcount/hom
//
// counter.go — bottom-up evaluation of a nice decomposition.
//
// Evaluation:
//   • Post-order over the arena. Leaf tables are n ones; Introduce, Forget and
//     Join nodes call their handler on the children's tables.
//   • Every node moves Pending → Computing → Done. A node may only start
//     Computing once all of its children are Done.
//   • A child's table is dropped as soon as its parent has consumed it.
//   • ctx is checked on entry to every node; expiry surfaces as errs.ErrCancelled.
//   • Tables saturate at dp.Saturated; only a saturated root is errs.ErrOverflow.
//
// Concurrency:
//   • A Counter holds only configuration and is safe for concurrent use.
//   • With ParallelJoins the two subtrees of a Join run in an errgroup; they
//     touch disjoint nodes, so the per-run slices need no locking.

package hom

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homcount/dp"
	"github.com/katalvlaran/homcount/errs"
	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/treedecomp"
)

// nodeState tracks a node through one evaluation.
type nodeState uint8

const (
	pending nodeState = iota
	computing
	done
)

// Counter counts homomorphisms with a fixed configuration.
type Counter struct {
	opts  Options
	remap dp.Remapper
	split dp.Splitter
}

// New returns a Counter configured by opts.
func New(opts ...Option) (*Counter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	split := dp.Splitter{Workers: o.Workers, MinChunk: o.MinChunk}
	remap, err := dp.NewRemapper(o.Strategy, split)
	if err != nil {
		return nil, errors.WithMessage(err, "hom.New")
	}

	return &Counter{opts: o, remap: remap, split: split}, nil
}

// Options returns the resolved configuration.
func (c *Counter) Options() Options { return c.opts }

// Decompose builds a validated nice decomposition of h with the configured
// heuristic.
func (c *Counter) Decompose(h *graph.Graph) (*treedecomp.Nice, error) {
	return treedecomp.Decompose(h, treedecomp.WithHeuristic(c.opts.Heuristic))
}

// Count decomposes h and counts maps of h into g in the given mode.
func (c *Counter) Count(ctx context.Context, h, g *graph.Graph, mode Mode) (uint64, error) {
	if err := checkGraphs(h, g); err != nil {
		return 0, err
	}
	nice, err := c.Decompose(h)
	if err != nil {
		return 0, err
	}

	return c.CountWith(ctx, nice, h, g, mode)
}

// CountWith counts maps of h into g using a precomputed decomposition of h.
func (c *Counter) CountWith(ctx context.Context, nice *treedecomp.Nice, h, g *graph.Graph, mode Mode) (uint64, error) {
	if err := checkGraphs(h, g); err != nil {
		return 0, err
	}
	if nice == nil {
		return 0, errs.Invalid("CountWith: nil decomposition")
	}
	if err := treedecomp.Validate(h, nice); err != nil {
		return 0, errors.WithMessage(err, "CountWith")
	}

	var (
		count uint64
		err   error
	)
	switch mode {
	case ModeHomomorphism:
		count, err = c.evaluate(ctx, nice, h, g, false)
	case ModeInjective:
		count, err = newInjectiveSolver(c, g).count(ctx, h, nice)
	case ModeSubgraph:
		count, err = c.subgraphs(ctx, nice, h, g)
	default:
		return 0, errs.Invalid("CountWith: unknown mode %d", int(mode))
	}
	if err != nil {
		return 0, err
	}

	klog.V(2).Infof("hom: %s |V(H)|=%d |V(G)|=%d width=%d nodes=%d count=%d",
		mode, h.Order(), g.Order(), nice.Width(), nice.Len(), count)

	return count, nil
}

// Automorphisms returns the number of automorphisms of h.
func (c *Counter) Automorphisms(ctx context.Context, h *graph.Graph) (uint64, error) {
	return c.Count(ctx, h, h, ModeInjective)
}

// subgraphs divides the injective count by the automorphisms of h.
func (c *Counter) subgraphs(ctx context.Context, nice *treedecomp.Nice, h, g *graph.Graph) (uint64, error) {
	inj, err := newInjectiveSolver(c, g).count(ctx, h, nice)
	if err != nil {
		return 0, err
	}
	aut, err := newInjectiveSolver(c, h).count(ctx, h, nice)
	if err != nil {
		return 0, err
	}
	if aut == 0 || inj%aut != 0 {
		return 0, errs.State("subgraphs: %d injective maps are not a multiple of %d automorphisms", inj, aut)
	}

	return inj / aut, nil
}

func checkGraphs(h, g *graph.Graph) error {
	if h == nil || h.Order() == 0 {
		return errors.WithStack(treedecomp.ErrEmptyPattern)
	}
	if g == nil || g.Order() == 0 {
		return errs.Invalid("host graph has no vertices")
	}

	return nil
}

// run holds the per-evaluation state of one DP pass.
type run struct {
	nice     *treedecomp.Nice
	intro    IntroduceHandler
	forget   ForgetHandler
	join     JoinHandler
	n        int
	parallel bool
	state    []nodeState
	tables   []*dp.Table
}

// evaluate runs the DP over nice and returns the root scalar. With injective
// set, assignments that map two vertices of one bag to the same host vertex
// are dropped.
func (c *Counter) evaluate(ctx context.Context, nice *treedecomp.Nice, h, g *graph.Graph, injective bool) (uint64, error) {
	r := &run{
		nice: nice,
		intro: IntroduceHandler{
			Pattern: h, Host: g, Injective: injective,
			Remap: c.remap, Split: c.split,
		},
		forget:   ForgetHandler{Remap: c.remap, Split: c.split},
		join:     JoinHandler{Split: c.split},
		n:        g.Order(),
		parallel: c.opts.ParallelJoins,
		state:    make([]nodeState, nice.Len()),
		tables:   make([]*dp.Table, nice.Len()),
	}
	if err := r.eval(ctx, nice.Root); err != nil {
		return 0, err
	}
	root := r.tables[nice.Root]
	r.tables[nice.Root] = nil

	count, err := root.Scalar()
	if err != nil {
		return 0, err
	}
	if count == dp.Saturated {
		return 0, errs.Overflow("hom: count of %d pattern vertices in %d host vertices", h.Order(), g.Order())
	}

	return count, nil
}

// eval computes the table of node i after its children.
func (r *run) eval(ctx context.Context, i int) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(errs.ErrCancelled, "node %d: %v", i, err)
	}
	if r.state[i] != pending {
		return errs.State("node %d evaluated twice", i)
	}
	node := &r.nice.Nodes[i]

	if node.Kind == treedecomp.Join && r.parallel {
		eg, egctx := errgroup.WithContext(ctx)
		for _, ch := range node.Children {
			ch := ch
			eg.Go(func() error { return r.eval(egctx, ch) })
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	} else {
		for _, ch := range node.Children {
			if err := r.eval(ctx, ch); err != nil {
				return err
			}
		}
	}

	for _, ch := range node.Children {
		if r.state[ch] != done {
			return errs.State("node %d: child %d is not done", i, ch)
		}
	}
	r.state[i] = computing

	t, err := r.apply(node)
	if err != nil {
		return errors.WithMessagef(err, "%s node %d", node.Kind, i)
	}
	for _, ch := range node.Children {
		r.tables[ch] = nil
	}
	r.tables[i] = t
	r.state[i] = done

	klog.V(3).Infof("hom: %s node %d bag=%v entries=%d", node.Kind, i, node.Bag, t.Len())

	return nil
}

// apply dispatches node to its handler.
func (r *run) apply(node *treedecomp.Node) (*dp.Table, error) {
	child := func(k int) (*dp.Table, []int) {
		c := node.Children[k]
		return r.tables[c], r.nice.Nodes[c].Bag
	}

	switch node.Kind {
	case treedecomp.Leaf:
		return dp.Ones(dp.Shape{Base: r.n, Digits: 1})
	case treedecomp.Introduce:
		t, bag := child(0)
		return r.intro.Introduce(t, bag, node.Vertex, node.Position)
	case treedecomp.Forget:
		t, bag := child(0)
		return r.forget.Forget(t, bag, node.Vertex, node.Position)
	case treedecomp.Join:
		lt, lb := child(0)
		rt, rb := child(1)
		return r.join.Join(lt, lb, rt, rb)
	default:
		return nil, errs.State("unknown node kind %s", node.Kind)
	}
}

// Count counts maps of h into g with the default configuration.
func Count(ctx context.Context, h, g *graph.Graph, mode Mode) (uint64, error) {
	c, err := New()
	if err != nil {
		return 0, err
	}

	return c.Count(ctx, h, g, mode)
}

// Decompose builds a nice decomposition of h with the default heuristic.
func Decompose(h *graph.Graph) (*treedecomp.Nice, error) {
	return treedecomp.Decompose(h)
}
