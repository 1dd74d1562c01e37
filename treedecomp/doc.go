// Package treedecomp computes tree decompositions of a pattern graph and
// normalises them into nice form for the counting dynamic program.
//
// What:
//
//   - EliminationOrder: MinFill (default), MinDegree or Exact orderings.
//   - FromOrdering: the decomposition induced by an elimination ordering.
//   - ToNice: Leaf / Introduce / Forget / Join normal form with an empty root.
//   - Validate: vertex coverage, edge coverage, connectivity and the per-kind
//     node invariants.
//   - Decompose: all of the above in one call.
//
// Errors:
//
//   - ErrEmptyPattern, ErrBadOrdering (both errs.ErrInvalidArgument).
//   - errs.ErrInvalidArgument for unknown heuristics or Exact above
//     MaxExactVertices.
//   - errs.ErrInvalidState from Validate.
//
// Example:
//
//	h := builder.Must(builder.BuildGraph(nil, builder.Cycle(5)))
//	nice, _ := treedecomp.Decompose(h)
//	nice.Width() // 2
package treedecomp
