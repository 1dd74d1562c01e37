package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/homcount/builder"
	"github.com/katalvlaran/homcount/graph"
)

// parseGraph builds a graph from a generator description such as "grid:3x3",
// "cycle:5" or "random:40:0.1". Several descriptions joined by '+' build their
// disjoint union. seed feeds the random generators.
//
//	grid:RxC  cycle:N  path:N  star:N  wheel:N  complete:N  bipartite:A,B
//	random:N:P  regular:N:D
func parseGraph(desc string, seed int64) (*graph.Graph, error) {
	var cons []builder.Constructor
	for _, part := range strings.Split(desc, "+") {
		c, err := parseConstructor(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.WithMessagef(err, "graph %q", desc)
		}
		cons = append(cons, c)
	}

	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
}

func parseConstructor(part string) (builder.Constructor, error) {
	kind, args, ok := strings.Cut(part, ":")
	if !ok {
		return nil, errors.Errorf("%q: want kind:args", part)
	}
	ints := func(sep string, n int) ([]int, error) {
		fields := strings.Split(args, sep)
		if len(fields) != n {
			return nil, errors.Errorf("%q: want %d values separated by %q", part, n, sep)
		}
		out := make([]int, n)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "%q", part)
			}
			out[i] = v
		}
		return out, nil
	}

	switch kind {
	case "grid":
		v, err := ints("x", 2)
		if err != nil {
			return nil, err
		}
		return builder.Grid(v[0], v[1]), nil
	case "bipartite":
		v, err := ints(",", 2)
		if err != nil {
			return nil, err
		}
		return builder.CompleteBipartite(v[0], v[1]), nil
	case "regular":
		v, err := ints(":", 2)
		if err != nil {
			return nil, err
		}
		return builder.RandomRegular(v[0], v[1]), nil
	case "random":
		n, p, ok := strings.Cut(args, ":")
		if !ok {
			return nil, errors.Errorf("%q: want random:N:P", part)
		}
		nv, err := strconv.Atoi(n)
		if err != nil {
			return nil, errors.Wrapf(err, "%q", part)
		}
		pv, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%q", part)
		}
		return builder.RandomSparse(nv, pv), nil
	}

	single := map[string]func(int) builder.Constructor{
		"cycle":    builder.Cycle,
		"path":     builder.Path,
		"star":     builder.Star,
		"wheel":    builder.Wheel,
		"complete": builder.Complete,
	}
	mk, found := single[kind]
	if !found {
		return nil, errors.Errorf("%q: unknown generator %q", part, kind)
	}
	v, err := ints(",", 1)
	if err != nil {
		return nil, err
	}

	return mk(v[0]), nil
}
