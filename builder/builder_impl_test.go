// File: builder_impl_test.go
// Package builder_test checks every Constructor for vertex and edge counts,
// topology details, determinism and parameter validation.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homcount/builder"
	"github.com/katalvlaran/homcount/graph"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *graph.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "edge %d-%d", i, (i+1)%5)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, g.Edges())
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Equal(t, 3, g.Degree(0))
				assert.Equal(t, []int{0}, g.Neighbors(2))
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.True(t, g.HasEdge(4, 1))
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.IsComplete())
			},
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.False(t, g.HasEdge(0, 1))
				assert.False(t, g.HasEdge(2, 4))
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name:  "Grid(3,4)",
			ctor:  builder.Grid(3, 4),
			wantV: 12, wantE: 17,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.HasEdge(5, 6))  // (1,1)-(1,2)
				assert.True(t, g.HasEdge(5, 9))  // (1,1)-(2,1)
				assert.False(t, g.HasEdge(3, 4)) // row wrap
				assert.Equal(t, 4, g.Degree(5))
			},
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuildGraph_DisjointUnion composes constructors with offset ids.
func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}, {2, 4}, {3, 4}}, g.Edges())
}

// TestRandom_Deterministic checks that equal seeds give equal graphs.
func TestRandom_Deterministic(t *testing.T) {
	for _, ctor := range []func() builder.Constructor{
		func() builder.Constructor { return builder.RandomSparse(20, 0.3) },
		func() builder.Constructor { return builder.RandomRegular(12, 3) },
	} {
		a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, ctor())
		require.NoError(t, err)
		b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))}, ctor())
		require.NoError(t, err)
		assert.Equal(t, a.Edges(), b.Edges())
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	for v := 0; v < g.Order(); v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
}

// TestRelabel keeps the degree sequence and edge count.
func TestRelabel(t *testing.T) {
	plain, err := builder.BuildGraph(nil, builder.Star(6))
	require.NoError(t, err)
	mixed, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithRelabel()},
		builder.Star(6),
	)
	require.NoError(t, err)
	assert.Equal(t, plain.Size(), mixed.Size())

	degrees := func(g *graph.Graph) []int {
		out := make([]int, g.Order())
		for v := range out {
			out[v] = g.Degree(v)
		}
		return out
	}
	assert.ElementsMatch(t, degrees(plain), degrees(mixed))

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithRelabel()}, builder.Star(6))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestBuilders_Errors covers parameter validation.
func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"cycle too short", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"path too short", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"star too short", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"wheel too short", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"empty complete", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"empty bipartite side", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"flat grid", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"bad probability", nil, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"sparse without rng", nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"regular without rng", nil, builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"odd stub count", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.Must(builder.BuildGraph(nil, builder.Path(0))) })
}
