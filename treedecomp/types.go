// SPDX-License-Identifier: MIT
// Package: homcount/treedecomp
//
// types.go — decomposition data model.
//
// Model:
//   • TreeDecomposition: a forest of bags addressed by index, Parent[i] == -1
//     for roots. Bags are sorted ascending.
//   • Nice: an arena of typed nodes (Leaf, Introduce, Forget, Join) with a
//     single root whose bag is empty. Node bags are sorted ascending, so the
//     bag position of an introduced or forgotten vertex is whatever its rank
//     is, not always the last slot.

package treedecomp

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/homcount/errs"
)

// Sentinel errors specific to decompositions. Both unwrap to
// errs.ErrInvalidArgument. Structural violations found by Validate are
// reported as errs.ErrInvalidState.
var (
	// ErrEmptyPattern indicates a pattern graph with no vertices.
	ErrEmptyPattern = errors.WithMessage(errs.ErrInvalidArgument, "treedecomp: pattern graph has no vertices")

	// ErrBadOrdering indicates an elimination ordering that is not a
	// permutation of the vertex set.
	ErrBadOrdering = errors.WithMessage(errs.ErrInvalidArgument, "treedecomp: ordering is not a permutation of the vertices")
)

// NodeKind is the type of a nice-decomposition node.
type NodeKind uint8

const (
	// Leaf holds a single vertex and has no children.
	Leaf NodeKind = iota
	// Introduce adds Vertex to its child's bag.
	Introduce
	// Forget removes Vertex from its child's bag.
	Forget
	// Join merges two children with identical bags.
	Join
)

// String implements fmt.Stringer.
func (k NodeKind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Introduce:
		return "introduce"
	case Forget:
		return "forget"
	case Join:
		return "join"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// Node is one element of the Nice arena.
type Node struct {
	Kind     NodeKind
	Bag      []int // pattern vertices, ascending
	Children []int // arena indices: 0 for Leaf, 1 for Introduce/Forget, 2 for Join
	Parent   int   // arena index, -1 for the root

	// Vertex is the introduced, forgotten or leaf vertex; -1 for Join.
	Vertex int
	// Position is the index of Vertex in Bag (Introduce, Leaf) or in the
	// child's bag (Forget); -1 for Join.
	Position int
}

// TreeDecomposition is a general (not necessarily nice) decomposition forest.
type TreeDecomposition struct {
	Bags   [][]int
	Parent []int
}

// Width returns the largest bag size minus one (-1 for an empty forest).
func (td *TreeDecomposition) Width() int {
	w := -1
	for _, b := range td.Bags {
		if len(b)-1 > w {
			w = len(b) - 1
		}
	}

	return w
}

// Nice is a nice tree decomposition stored as an arena of nodes.
type Nice struct {
	Nodes    []Node
	Root     int
	vertices int // pattern order covered by the bags
}

// Len returns the number of nodes.
func (n *Nice) Len() int { return len(n.Nodes) }

// Vertices returns the pattern order recorded by ToNice, or 0 for a Nice
// assembled by hand.
func (n *Nice) Vertices() int { return n.vertices }

// Width returns the largest bag size minus one.
func (n *Nice) Width() int {
	w := -1
	for i := range n.Nodes {
		if len(n.Nodes[i].Bag)-1 > w {
			w = len(n.Nodes[i].Bag) - 1
		}
	}

	return w
}

// PostOrder returns the arena indices reachable from Root, children before
// parents and the first child of a Join before the second.
func (n *Nice) PostOrder() []int {
	if len(n.Nodes) == 0 {
		return nil
	}
	type frame struct {
		node, next int
	}
	out := make([]int, 0, len(n.Nodes))
	stack := []frame{{node: n.Root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ch := n.Nodes[top.node].Children
		if top.next < len(ch) {
			c := ch[top.next]
			top.next++
			stack = append(stack, frame{node: c})
			continue
		}
		out = append(out, top.node)
		stack = stack[:len(stack)-1]
	}

	return out
}

// SharesBag returns an order×order symmetric matrix m with m[u][v] true when
// u != v and some bag contains both u and v. order is the pattern order; bags
// must only hold vertices below it.
func (n *Nice) SharesBag(order int) [][]bool {
	m := make([][]bool, order)
	for i := range m {
		m[i] = make([]bool, order)
	}
	for i := range n.Nodes {
		bag := n.Nodes[i].Bag
		for a := 0; a < len(bag); a++ {
			for b := a + 1; b < len(bag); b++ {
				m[bag[a]][bag[b]] = true
				m[bag[b]][bag[a]] = true
			}
		}
	}

	return m
}

// Stats summarizes a nice decomposition.
type Stats struct {
	Leaves, Introduces, Forgets, Joins int
	Width                              int
	Depth                              int // longest root-to-leaf path, in edges
}

// String renders the stats on one line.
func (s Stats) String() string {
	return fmt.Sprintf("width=%d depth=%d leaf=%d introduce=%d forget=%d join=%d",
		s.Width, s.Depth, s.Leaves, s.Introduces, s.Forgets, s.Joins)
}

// Stats counts nodes per kind and measures width and depth.
func (n *Nice) Stats() Stats {
	s := Stats{Width: n.Width()}
	depth := make([]int, len(n.Nodes))
	for _, i := range n.PostOrder() {
		node := &n.Nodes[i]
		switch node.Kind {
		case Leaf:
			s.Leaves++
		case Introduce:
			s.Introduces++
		case Forget:
			s.Forgets++
		case Join:
			s.Joins++
		}
		for _, c := range node.Children {
			if depth[c]+1 > depth[i] {
				depth[i] = depth[c] + 1
			}
		}
	}
	if len(n.Nodes) > 0 {
		s.Depth = depth[n.Root]
	}

	return s
}
