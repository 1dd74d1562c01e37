// SPDX-License-Identifier: MIT
// Package: homcount/treedecomp
//
// build.go — ordering → decomposition → nice decomposition.
//
// FromOrdering:
//   • Plays the elimination game on a fill graph. The bag of v is v plus its
//     not-yet-eliminated neighbours; its parent is the bag of the earliest
//     eliminated of those neighbours. Bags without such a neighbour are roots,
//     one per connected component.
//
// ToNice:
//   • Bottom-up per bag: a Leaf plus an Introduce chain for bags without
//     children; otherwise every child subtree forgets what the bag lacks,
//     introduces what it adds, and the siblings are merged by a chain of Joins.
//   • Every component root then forgets down to the empty bag and components
//     are joined there, so the result always has a single empty-bag root.

package treedecomp

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/homcount/errs"
	"github.com/katalvlaran/homcount/graph"
)

// FromOrdering builds the decomposition induced by eliminating h's vertices
// in the given order.
func FromOrdering(h *graph.Graph, order []int) (*TreeDecomposition, error) {
	if h == nil || h.Order() == 0 {
		return nil, errors.WithStack(ErrEmptyPattern)
	}
	n := h.Order()
	if len(order) != n {
		return nil, errors.Wrapf(ErrBadOrdering, "FromOrdering: %d entries for %d vertices", len(order), n)
	}
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range order {
		if v < 0 || v >= n || pos[v] >= 0 {
			return nil, errors.Wrapf(ErrBadOrdering, "FromOrdering: entry %d is %d", i, v)
		}
		pos[v] = i
	}

	f := newFillGraph(h)
	td := &TreeDecomposition{Bags: make([][]int, n), Parent: make([]int, n)}
	for i, v := range order {
		nb := f.eliminate(v)
		bag := append([]int{v}, nb...)
		sort.Ints(bag)
		td.Bags[i] = bag

		td.Parent[i] = -1
		for _, u := range nb {
			if td.Parent[i] < 0 || pos[u] < td.Parent[i] {
				td.Parent[i] = pos[u]
			}
		}
	}

	return td, nil
}

// niceBuilder appends nodes to a Nice arena.
type niceBuilder struct {
	nice     *Nice
	children [][]int
	td       *TreeDecomposition
}

func (b *niceBuilder) add(node Node) int {
	node.Parent = -1
	id := len(b.nice.Nodes)
	b.nice.Nodes = append(b.nice.Nodes, node)
	for _, c := range node.Children {
		b.nice.Nodes[c].Parent = id
	}

	return id
}

func (b *niceBuilder) bag(id int) []int { return b.nice.Nodes[id].Bag }

func (b *niceBuilder) leaf(v int) int {
	return b.add(Node{Kind: Leaf, Bag: []int{v}, Vertex: v, Position: 0})
}

func (b *niceBuilder) introduce(child, v int) int {
	old := b.bag(child)
	p := sort.SearchInts(old, v)
	bag := make([]int, 0, len(old)+1)
	bag = append(bag, old[:p]...)
	bag = append(bag, v)
	bag = append(bag, old[p:]...)

	return b.add(Node{Kind: Introduce, Bag: bag, Children: []int{child}, Vertex: v, Position: p})
}

func (b *niceBuilder) forget(child, v int) int {
	old := b.bag(child)
	p := sort.SearchInts(old, v)
	bag := make([]int, 0, len(old)-1)
	bag = append(bag, old[:p]...)
	bag = append(bag, old[p+1:]...)

	return b.add(Node{Kind: Forget, Bag: bag, Children: []int{child}, Vertex: v, Position: p})
}

func (b *niceBuilder) join(left, right int) int {
	bag := append([]int(nil), b.bag(left)...)

	return b.add(Node{Kind: Join, Bag: bag, Children: []int{left, right}, Vertex: -1, Position: -1})
}

// morph turns node id's bag into target by forgetting then introducing.
func (b *niceBuilder) morph(id int, target []int) int {
	for _, v := range difference(b.bag(id), target) {
		id = b.forget(id, v)
	}
	for _, v := range difference(target, b.bag(id)) {
		id = b.introduce(id, v)
	}

	return id
}

// build returns the node whose bag is td.Bags[t], covering t's subtree.
func (b *niceBuilder) build(t int) int {
	target := b.td.Bags[t]
	if len(b.children[t]) == 0 {
		id := b.leaf(target[0])
		for _, v := range target[1:] {
			id = b.introduce(id, v)
		}
		return id
	}

	acc := -1
	for _, c := range b.children[t] {
		id := b.morph(b.build(c), target)
		if acc < 0 {
			acc = id
		} else {
			acc = b.join(acc, id)
		}
	}

	return acc
}

// ToNice normalises td into a nice decomposition with an empty root bag.
func ToNice(td *TreeDecomposition) (*Nice, error) {
	if td == nil || len(td.Bags) == 0 {
		return nil, errors.WithStack(ErrEmptyPattern)
	}
	if len(td.Parent) != len(td.Bags) {
		return nil, errs.Invalid("ToNice: %d parents for %d bags", len(td.Parent), len(td.Bags))
	}

	b := &niceBuilder{nice: &Nice{}, children: make([][]int, len(td.Bags)), td: td}
	var roots []int
	for i, p := range td.Parent {
		if len(td.Bags[i]) == 0 {
			return nil, errs.Invalid("ToNice: bag %d is empty", i)
		}
		if !sort.IntsAreSorted(td.Bags[i]) {
			return nil, errs.Invalid("ToNice: bag %d is not sorted", i)
		}
		for _, v := range td.Bags[i] {
			if v+1 > b.nice.vertices {
				b.nice.vertices = v + 1
			}
		}
		switch {
		case p < 0:
			roots = append(roots, i)
		case p >= len(td.Bags) || p == i:
			return nil, errs.Invalid("ToNice: bag %d has parent %d", i, p)
		default:
			b.children[p] = append(b.children[p], i)
		}
	}
	if len(roots) == 0 {
		return nil, errs.Invalid("ToNice: decomposition has no root")
	}
	if err := checkAcyclic(td.Parent); err != nil {
		return nil, err
	}

	root := -1
	for _, r := range roots {
		id := b.morph(b.build(r), nil)
		if root < 0 {
			root = id
		} else {
			root = b.join(root, id)
		}
	}
	b.nice.Root = root

	return b.nice, nil
}

// checkAcyclic rejects parent arrays that contain a cycle.
func checkAcyclic(parent []int) error {
	state := make([]uint8, len(parent)) // 0 unseen, 1 on path, 2 done
	for start := range parent {
		var path []int
		v := start
		for v >= 0 && state[v] == 0 {
			state[v] = 1
			path = append(path, v)
			v = parent[v]
		}
		if v >= 0 && state[v] == 1 {
			return errs.Invalid("ToNice: parent cycle through bag %d", v)
		}
		for _, u := range path {
			state[u] = 2
		}
	}

	return nil
}

// difference returns the elements of a missing from b; both are sorted.
func difference(a, b []int) []int {
	var out []int
	j := 0
	for _, x := range a {
		for j < len(b) && b[j] < x {
			j++
		}
		if j == len(b) || b[j] != x {
			out = append(out, x)
		}
	}

	return out
}

// Validate checks that nice is a nice tree decomposition of h.
func Validate(h *graph.Graph, nice *Nice) error {
	if h == nil || nice == nil || len(nice.Nodes) == 0 {
		return errs.State("Validate: empty decomposition")
	}
	n := h.Order()
	if v := nice.Vertices(); v != 0 && v != n {
		return errs.State("Validate: decomposition built for %d vertices, pattern has %d", v, n)
	}
	if nice.Root < 0 || nice.Root >= len(nice.Nodes) {
		return errs.State("Validate: root %d outside the arena", nice.Root)
	}
	if root := &nice.Nodes[nice.Root]; len(root.Bag) != 0 || root.Parent != -1 {
		return errs.State("Validate: root %d has bag %v and parent %d", nice.Root, root.Bag, root.Parent)
	}
	post := nice.PostOrder()
	if len(post) != len(nice.Nodes) {
		return errs.State("Validate: %d of %d nodes reachable from the root", len(post), len(nice.Nodes))
	}

	for i := range nice.Nodes {
		if err := validateNode(nice, i, n); err != nil {
			return err
		}
	}

	// Coverage of vertices and edges.
	seen := bits.New(n)
	together := make([]bits.Bits, n)
	for v := range together {
		together[v] = bits.New(n)
	}
	for i := range nice.Nodes {
		bag := nice.Nodes[i].Bag
		for a, u := range bag {
			seen.SetBit(u, 1)
			for _, w := range bag[a+1:] {
				together[u].SetBit(w, 1)
				together[w].SetBit(u, 1)
			}
		}
	}
	if seen.OnesCount() != n {
		return errs.State("Validate: %d of %d pattern vertices appear in a bag", seen.OnesCount(), n)
	}
	for _, e := range h.Edges() {
		if together[e[0]].Bit(e[1]) == 0 {
			return errs.State("Validate: edge %d-%d is not inside any bag", e[0], e[1])
		}
	}

	// Connectivity: the nodes holding v form one subtree, so exactly one of
	// them has a parent without v.
	tops := make([]int, n)
	for i := range nice.Nodes {
		node := &nice.Nodes[i]
		for _, v := range node.Bag {
			if node.Parent < 0 || !contains(nice.Nodes[node.Parent].Bag, v) {
				tops[v]++
			}
		}
	}
	for v, c := range tops {
		if c != 1 {
			return errs.State("Validate: bags holding vertex %d form %d subtrees", v, c)
		}
	}

	return nil
}

// validateNode checks the per-kind invariants of node i.
func validateNode(nice *Nice, i, n int) error {
	node := &nice.Nodes[i]
	for k, v := range node.Bag {
		if v < 0 || v >= n {
			return errs.State("Validate: node %d holds vertex %d outside [0,%d)", i, v, n)
		}
		if k > 0 && node.Bag[k-1] >= v {
			return errs.State("Validate: node %d bag %v is not strictly ascending", i, node.Bag)
		}
	}
	for _, c := range node.Children {
		if c < 0 || c >= len(nice.Nodes) || nice.Nodes[c].Parent != i {
			return errs.State("Validate: node %d child %d does not point back", i, c)
		}
	}

	want := map[NodeKind]int{Leaf: 0, Introduce: 1, Forget: 1, Join: 2}[node.Kind]
	if len(node.Children) != want {
		return errs.State("Validate: %s node %d has %d children", node.Kind, i, len(node.Children))
	}

	switch node.Kind {
	case Leaf:
		if len(node.Bag) != 1 || node.Bag[0] != node.Vertex {
			return errs.State("Validate: leaf %d bag %v vertex %d", i, node.Bag, node.Vertex)
		}
	case Introduce:
		child := nice.Nodes[node.Children[0]].Bag
		if contains(child, node.Vertex) {
			return errs.State("Validate: node %d re-introduces vertex %d", i, node.Vertex)
		}
		if node.Position < 0 || node.Position >= len(node.Bag) || node.Bag[node.Position] != node.Vertex ||
			!equalWithout(node.Bag, node.Position, child) {
			return errs.State("Validate: introduce %d bag %v child %v vertex %d", i, node.Bag, child, node.Vertex)
		}
	case Forget:
		child := nice.Nodes[node.Children[0]].Bag
		if node.Position < 0 || node.Position >= len(child) || child[node.Position] != node.Vertex ||
			!equalWithout(child, node.Position, node.Bag) {
			return errs.State("Validate: forget %d bag %v child %v vertex %d", i, node.Bag, child, node.Vertex)
		}
	case Join:
		l, r := nice.Nodes[node.Children[0]].Bag, nice.Nodes[node.Children[1]].Bag
		if !equalInts(node.Bag, l) || !equalInts(node.Bag, r) {
			return errs.State("Validate: join %d bag %v children %v %v", i, node.Bag, l, r)
		}
	default:
		return errs.State("Validate: node %d has kind %s", i, node.Kind)
	}

	return nil
}

func contains(sorted []int, v int) bool {
	k := sort.SearchInts(sorted, v)
	return k < len(sorted) && sorted[k] == v
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalWithout reports whether long with index p removed equals short.
func equalWithout(long []int, p int, short []int) bool {
	if len(long) != len(short)+1 {
		return false
	}
	return equalInts(long[:p], short[:p]) && equalInts(long[p+1:], short[p:])
}
