// Package homcount counts homomorphisms, injective homomorphisms and subgraph
// copies of a small pattern graph H inside a large host graph G, by dynamic
// programming over a tree decomposition of H.
//
// What lives where:
//
//	errs/        error taxonomy (InvalidArgument, InvalidState, Overflow, Cancelled)
//	graph/       simple undirected graph with a bitset adjacency matrix, quotients
//	builder/     deterministic generators: grids, cycles, paths, stars, wheels,
//	               complete and complete bipartite graphs, random graphs
//	treedecomp/  elimination orderings (MinFill, MinDegree, Exact), tree and
//	               nice tree decompositions, validation
//	dp/          flat mixed-radix tables, digit remappers, forget/introduce/join kernels
//	hom/         the counter: handlers, traversal, injective correction, subgraph mode
//	cmd/homcount command-line driver
//
// Quick start:
//
//	h := builder.Must(builder.BuildGraph(nil, builder.Grid(2, 2)))
//	g := builder.Must(builder.BuildGraph(nil, builder.Grid(4, 3)))
//	n, err := hom.Count(ctx, h, g, hom.ModeSubgraph) // 6 squares
//
// Cost is O(nodes · |V(G)|^(w+1)) where w is the width of the decomposition,
// so the pattern should have small treewidth; the host may be large.
package homcount
