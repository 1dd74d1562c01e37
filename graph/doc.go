// Package graph provides the simple undirected graph used for both the pattern
// H and the host G of a homomorphism count.
//
// Vertices are dense integers 0..n-1 and adjacency is an n×n bit matrix, so
// HasEdge is O(1) and the DP kernels can query host adjacency in their inner
// loops. The package also offers quotients (vertex identification by a
// partition), which the injective counter uses to correct bag-level
// injectivity into exact injectivity.
//
// Graphs are usually produced by the builder package:
//
//	h, _ := builder.BuildGraph(nil, builder.Grid(2, 2))
//	h.HasEdge(0, 1) // true
package graph
