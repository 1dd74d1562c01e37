package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homcount/graph"
)

// TestGraph_Basics covers construction, edges and neighbour queries.
func TestGraph_Basics(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddEdge(1, 0)) // repeated, no-op

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Size())
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(-1, 0))
	assert.False(t, g.HasEdge(0, 99))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Nil(t, g.Neighbors(7))
	assert.Equal(t, 0, g.Degree(3))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, g.Edges())
	assert.Equal(t, "n=4 m=2 [0-1 1-2]", g.String())
	assert.False(t, g.IsComplete())
}

// TestGraph_Errors covers the sentinel errors.
func TestGraph_Errors(t *testing.T) {
	_, err := graph.New(-1)
	assert.ErrorIs(t, err, graph.ErrNegativeOrder)

	g, err := graph.New(2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(0, 2), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1), graph.ErrLoopNotAllowed)
}

// TestGraph_Growth keeps edges across row reallocation.
func TestGraph_Growth(t *testing.T) {
	g, err := graph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.AddVertex())
	assert.Equal(t, 1, g.AddVertices(62))
	require.NoError(t, g.AddEdge(0, 62))

	first := g.AddVertices(200)
	assert.Equal(t, 63, first)
	require.NoError(t, g.AddEdge(0, 262))
	assert.True(t, g.HasEdge(62, 0))
	assert.True(t, g.HasEdge(262, 0))
	assert.Equal(t, []int{62, 262}, g.Neighbors(0))
	assert.Equal(t, 263, g.AddVertices(0))
}

// TestQuotient merges blocks and rejects loops.
func TestQuotient(t *testing.T) {
	// Path 0-1-2-3; merge 0 and 3.
	g, err := graph.New(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	q, err := g.Quotient([]int{0, 1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Order())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, q.Edges())

	// Merging 0 and 2 collapses the parallel edges to 1.
	q, err = g.Quotient([]int{0, 1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, q.Edges())

	_, err = g.Quotient([]int{0, 0, 1, 2})
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
	_, err = g.Quotient([]int{0, 1})
	assert.ErrorIs(t, err, graph.ErrBadPartition)
	_, err = g.Quotient([]int{0, 1, -2, 3})
	assert.ErrorIs(t, err, graph.ErrBadPartition)
}

// TestCanonicalLabels renumbers by first occurrence.
func TestCanonicalLabels(t *testing.T) {
	in := []int{7, 3, 7, 9, 3}
	assert.Equal(t, []int{0, 1, 0, 2, 1}, graph.CanonicalLabels(in))
	assert.Equal(t, []int{7, 3, 7, 9, 3}, in)
	assert.Equal(t, graph.CanonicalLabels([]int{2, 2, 0}), graph.CanonicalLabels([]int{5, 5, 1}))
}
