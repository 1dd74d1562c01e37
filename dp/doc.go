// Package dp implements the dense tables and transition kernels of the
// tree-decomposition dynamic program.
//
// What:
//
//   - Table: n^k uint64 counts in one flat slice, one base-n digit per bag
//     position, position 0 most significant.
//   - Remapper: moves one digit to or from the least significant slot, so the
//     kernels below only ever touch the contiguous last dimension.
//     Two strategies (ArithmeticRemapper, EnumerationRemapper) share the
//     Remapper interface and produce identical output.
//   - ForgetLast / Forget: sum out the last digit (overflow-checked).
//   - IntroduceLast / Introduce: replicate across a new last digit.
//   - FilterAdjacent / FilterDistinct: zero the entries of a freshly introduced
//     digit that break a host edge or injectivity.
//   - Multiply / Join: pointwise product of two equal-shape tables.
//   - Splitter: errgroup-backed partition of per-index work.
//
// Complexity:
//
//   - Every kernel is O(n^k) for the larger of its tables.
//
// Overflow:
//
//   - Sums and products saturate at Saturated instead of failing; a zero
//     factor in Multiply still gives zero.
//
// Errors:
//
//   - errs.ErrInvalidArgument for bad bases, digit counts, positions or sizes.
//   - errs.ErrInvalidState when Join gets tables of different shapes.
//
// Example:
//
//	t, _ := dp.Ones(dp.Shape{Base: 3, Digits: 2})
//	r, _ := dp.NewRemapper(dp.StrategyArithmetic, dp.Splitter{})
//	f, _ := dp.Forget(t, 0, r, dp.Splitter{}) // f.Data() == [3 3 3]
package dp
