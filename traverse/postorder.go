package traverse

import "github.com/katalvlaran/phylotree/tree"

// Postorder visits every Link of the tree so that each node appears only
// after all of its descendants. The start link itself is yielded last,
// which IsLastIteration flags; algorithms that fold results upward use
// that pass to finish off the (virtual) root.
type Postorder struct {
	cur     *tree.Link
	first   *tree.Link
	start   *tree.Link
	stack   []*tree.Link
	started bool
}

// NewPostorder returns a postorder scanner anchored at start. A nil start
// yields an empty iteration.
func NewPostorder(start *tree.Link) *Postorder {
	it := &Postorder{start: start}
	if start == nil {
		return it
	}
	if start.Outer() == start {
		// single-node tree: one position, first and last at once
		it.first = start
		return it
	}

	// Descend along first children until a leaf; the start link goes to
	// the bottom of the stack so it surfaces last.
	it.stack = append(it.stack, start)
	l := start.Outer()
	it.stack = append([]*tree.Link{l}, it.stack...)
	for l.IsInner() {
		it.pushFrontChildren(l)
		l = l.Next().Outer()
	}
	it.first = l
	it.stack = it.stack[1:]
	return it
}

// Next advances to the following position and reports whether one exists.
// Complexity: O(1) amortized.
func (it *Postorder) Next() bool {
	if !it.started {
		it.started = true
		it.cur = it.first
		return it.cur != nil
	}
	if len(it.stack) == 0 {
		it.cur = nil
		return false
	}
	if it.cur.Outer().Next() == it.stack[0] {
		// the node at the stack front has been seen from all children
		it.cur = it.stack[0]
		it.stack = it.stack[1:]
		return true
	}
	// descend into the next sibling subtree until its first leaf
	l := it.stack[0]
	for l.IsInner() {
		it.pushFrontChildren(l)
		l = l.Next().Outer()
	}
	it.cur = l
	it.stack = it.stack[1:]
	return true
}

// IsLastIteration reports whether the scanner stands on the start link,
// which a postorder pass reaches last.
func (it *Postorder) IsLastIteration() bool { return it.cur == it.start }

// Link returns the current Link, nil when the iteration is exhausted.
func (it *Postorder) Link() *tree.Link { return it.cur }

// Node returns the Node of the current Link.
func (it *Postorder) Node() *tree.Node { return it.cur.Node() }

// Edge returns the Edge of the current Link; nil on the last iteration of
// a single-node tree.
func (it *Postorder) Edge() *tree.Edge { return it.cur.Edge() }

// StartLink returns the link the iteration was anchored at.
func (it *Postorder) StartLink() *tree.Link { return it.start }

// StartNode returns the node the iteration was anchored at.
func (it *Postorder) StartNode() *tree.Node { return it.start.Node() }

func (it *Postorder) pushFrontChildren(l *tree.Link) {
	var tmp []*tree.Link
	for c := l.Next(); c != l; c = c.Next() {
		tmp = append(tmp, c.Outer())
	}
	it.stack = append(tmp, it.stack...)
}
