// SPDX-License-Identifier: MIT
// Package: homcount/graph
//
// graph.go — simple undirected graph over dense vertex ids 0..n-1.
//
// Model:
//   • Adjacency matrix stored as one bitset row per vertex (soniakeys/bits):
//     HasEdge is a single word test, rows are symmetric.
//   • Simple graphs only: self-loops are rejected, a repeated AddEdge is a no-op.
//   • Vertices are appended with AddVertex/AddVertices; rows grow by doubling.
//
// Concurrency:
//   • No locks. A Graph is mutated while it is built and treated as immutable
//     for the duration of a count; concurrent readers are safe once building stops.

package graph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/soniakeys/bits"
)

var (
	// ErrNegativeOrder indicates that a negative vertex count was requested.
	ErrNegativeOrder = errors.New("graph: vertex count must be >= 0")

	// ErrVertexOutOfRange indicates a vertex id outside [0, Order()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// minRowCapacity is the smallest bitset row allocated for a non-empty graph.
const minRowCapacity = 64

// Graph is a simple undirected graph with O(1) adjacency queries.
type Graph struct {
	n   int         // number of vertices
	m   int         // number of edges
	adj []bits.Bits // adj[u] has bit v set iff {u,v} is an edge; len(adj) == capacity
}

// New returns an edgeless graph on n vertices.
// Complexity: O(n²/64) for the zeroed rows.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeOrder, "New(%d)", n)
	}
	g := &Graph{}
	g.AddVertices(n)

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.m }

// AddVertex appends one isolated vertex and returns its id.
func (g *Graph) AddVertex() int {
	return g.AddVertices(1)
}

// AddVertices appends k isolated vertices and returns the id of the first one.
// k <= 0 is a no-op that returns Order().
// Complexity: amortized O(k + n²/64) when the rows have to grow.
func (g *Graph) AddVertices(k int) int {
	first := g.n
	if k <= 0 {
		return first
	}
	g.reserve(g.n + k)
	g.n += k

	return first
}

// reserve grows every row (and the row slice) to hold at least want vertices.
func (g *Graph) reserve(want int) {
	capacity := len(g.adj)
	if want <= capacity {
		return
	}
	next := capacity * 2
	if next < minRowCapacity {
		next = minRowCapacity
	}
	for next < want {
		next *= 2
	}

	rows := make([]bits.Bits, next)
	for u := 0; u < next; u++ {
		rows[u] = bits.New(next)
		if u >= capacity {
			continue
		}
		old := g.adj[u]
		for v := old.OneFrom(0); v >= 0; v = old.OneFrom(v + 1) {
			rows[u].SetBit(v, 1)
		}
	}
	g.adj = rows
}

// validate reports ErrVertexOutOfRange for ids outside [0, n).
func (g *Graph) validate(v int) error {
	if v < 0 || v >= g.n {
		return errors.Wrapf(ErrVertexOutOfRange, "vertex %d (order %d)", v, g.n)
	}

	return nil
}

// AddEdge inserts the undirected edge {u,v}. Adding an existing edge is a no-op.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.validate(u); err != nil {
		return errors.WithMessage(err, "AddEdge")
	}
	if err := g.validate(v); err != nil {
		return errors.WithMessage(err, "AddEdge")
	}
	if u == v {
		return errors.Wrapf(ErrLoopNotAllowed, "AddEdge(%d,%d)", u, v)
	}
	if g.adj[u].Bit(v) == 1 {
		return nil
	}
	g.adj[u].SetBit(v, 1)
	g.adj[v].SetBit(u, 1)
	g.m++

	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range ids report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= g.n || v >= g.n {
		return false
	}

	return g.adj[u].Bit(v) == 1
}

// Neighbors returns the neighbours of v in ascending order, or nil when v is
// out of range.
// Complexity: O(n/64 + deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	row := g.adj[v]
	var out []int
	for u := row.OneFrom(0); u >= 0 && u < g.n; u = row.OneFrom(u + 1) {
		out = append(out, u)
	}

	return out
}

// Degree returns the number of neighbours of v (0 when out of range).
func (g *Graph) Degree(v int) int {
	return len(g.Neighbors(v))
}

// Edges returns every edge once as {u,v} with u < v, sorted lexicographically.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		row := g.adj[u]
		for v := row.OneFrom(u + 1); v >= 0 && v < g.n; v = row.OneFrom(v + 1) {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// IsComplete reports whether every pair of distinct vertices is adjacent.
func (g *Graph) IsComplete() bool {
	return g.m == g.n*(g.n-1)/2
}

// String renders the graph as "n=3 m=2 [0-1 1-2]".
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "n=%d m=%d [", g.n, g.m)
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d-%d", e[0], e[1])
	}
	sb.WriteByte(']')

	return sb.String()
}
