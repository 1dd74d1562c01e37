// Package hom counts homomorphisms, injective homomorphisms and subgraph
// copies of a small pattern graph H in a host graph G.
//
// The count runs a dynamic program over a nice tree decomposition of H
// (package treedecomp). Every node owns a dense table (package dp) indexed by
// the host images of its bag; the three handlers move between tables:
//
//   - IntroduceHandler adds a bag vertex and zeroes assignments that break an
//     edge of H (and, when injective, that reuse a host vertex in the bag).
//   - ForgetHandler sums a bag vertex out.
//   - JoinHandler multiplies the tables of two subtrees with the same bag.
//
// The root bag is empty, so its table is the answer. Time is
// O(|nodes| · |V(G)|^(w+1)) for width w.
//
// Modes:
//
//   - ModeHomomorphism: all edge-preserving maps.
//   - ModeInjective: injective ones. Bag-level filtering is corrected into an
//     exact count by subtracting the maps that merge vertices never sharing a
//     bag, counted on quotient graphs.
//   - ModeSubgraph: subgraphs of G isomorphic to H (injective / automorphisms).
//
// Errors: errs.ErrInvalidArgument for empty graphs or bad options,
// errs.ErrInvalidState for malformed decompositions, errs.ErrOverflow when a
// count leaves uint64 and errs.ErrCancelled when the context expires.
//
// Example:
//
//	h := builder.Must(builder.BuildGraph(nil, builder.Grid(2, 2)))
//	g := builder.Must(builder.BuildGraph(nil, builder.Grid(3, 3)))
//	n, _ := hom.Count(context.Background(), h, g, hom.ModeSubgraph) // 4
package hom
