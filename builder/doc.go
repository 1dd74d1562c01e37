// Package builder provides deterministic generators for the pattern and host
// graphs of a homomorphism count.
//
// Every generator is a Constructor closure. BuildGraph creates an empty
// graph.Graph, resolves the BuilderOption values into a builderConfig and runs
// the constructors in order. Each constructor appends its own vertices, so
// composing several constructors yields their disjoint union:
//
//	h, err := builder.BuildGraph(nil, builder.Grid(2, 2))
//	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomSparse(40, 0.1))
//
// Available topologies:
//
//   - Grid(rows, cols)          orthogonal 4-neighbourhood grid, row-major ids
//   - Cycle(n), Path(n)         C_n (n ≥ 3) and P_n (n ≥ 2)
//   - Star(n), Wheel(n)         hub 0 plus leaves / plus a rim cycle
//   - Complete(n)               K_n
//   - CompleteBipartite(a, b)   K_{a,b}, left side first
//   - RandomSparse(n, p)        Erdős–Rényi G(n, p), needs an RNG for 0<p<1
//   - RandomRegular(n, d)       d-regular via stub matching, needs an RNG
//
// WithRelabel permutes the vertex ids of the finished graph with the configured
// RNG; counts must not depend on the labelling, which makes it a convenient
// fixture for invariance tests.
//
// Errors are package sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name;
// branch on them with errors.Is.
package builder
