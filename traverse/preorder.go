package traverse

import "github.com/katalvlaran/phylotree/tree"

// Preorder visits every Link of the tree so that each node appears before
// its whole subtree, children in rotation order. Started at the root link
// it yields the classic rooted preorder; started elsewhere it still
// covers the full tree, treating the start as a virtual root.
type Preorder struct {
	cur     *tree.Link
	start   *tree.Link
	stack   []*tree.Link
	started bool
}

// NewPreorder returns a preorder scanner anchored at start. A nil start
// yields an empty iteration.
func NewPreorder(start *tree.Link) *Preorder {
	it := &Preorder{start: start}
	if start != nil && start.Outer() != start {
		it.pushFrontChildren(start)
		it.stack = append([]*tree.Link{start.Outer()}, it.stack...)
	}
	return it
}

// Next advances to the following position and reports whether one exists.
// Complexity: O(1) amortized.
func (it *Preorder) Next() bool {
	if !it.started {
		it.started = true
		it.cur = it.start
		return it.cur != nil
	}
	if len(it.stack) == 0 {
		it.cur = nil
		return false
	}
	it.cur = it.stack[0]
	it.stack = it.stack[1:]
	it.pushFrontChildren(it.cur)
	return true
}

// IsFirstIteration reports whether the scanner stands on the start link.
func (it *Preorder) IsFirstIteration() bool { return it.cur == it.start }

// Link returns the current Link, nil when the iteration is exhausted.
func (it *Preorder) Link() *tree.Link { return it.cur }

// Node returns the Node of the current Link.
func (it *Preorder) Node() *tree.Node { return it.cur.Node() }

// Edge returns the Edge of the current Link; nil on the first iteration
// of a single-node tree.
func (it *Preorder) Edge() *tree.Edge { return it.cur.Edge() }

// StartLink returns the link the iteration was anchored at.
func (it *Preorder) StartLink() *tree.Link { return it.start }

// StartNode returns the node the iteration was anchored at.
func (it *Preorder) StartNode() *tree.Node { return it.start.Node() }

// pushFrontChildren prepends the subtrees hanging off l's rotation cycle,
// keeping rotation order, so the first child is visited first.
func (it *Preorder) pushFrontChildren(l *tree.Link) {
	var tmp []*tree.Link
	for c := l.Next(); c != l; c = c.Next() {
		tmp = append(tmp, c.Outer())
	}
	it.stack = append(tmp, it.stack...)
}
