package traverse

import "github.com/katalvlaran/phylotree/tree"

type levelPosition struct {
	link  *tree.Link
	depth int
}

// Levelorder visits every Link of the tree breadth-first: the start link
// at depth 0, then all links at depth 1 in rotation order, and so on.
type Levelorder struct {
	cur     *tree.Link
	depth   int
	start   *tree.Link
	queue   []levelPosition
	started bool
}

// NewLevelorder returns a breadth-first scanner anchored at start. A nil
// start yields an empty iteration.
func NewLevelorder(start *tree.Link) *Levelorder {
	it := &Levelorder{start: start, depth: -1}
	if start != nil && start.Outer() != start {
		it.pushBackChildren(start, 0)
		it.queue = append([]levelPosition{{start.Outer(), 1}}, it.queue...)
	}
	return it
}

// Next advances to the following position and reports whether one exists.
// Complexity: O(1) amortized.
func (it *Levelorder) Next() bool {
	if !it.started {
		it.started = true
		it.cur = it.start
		if it.cur == nil {
			return false
		}
		it.depth = 0
		return true
	}
	if len(it.queue) == 0 {
		it.cur = nil
		it.depth = -1
		return false
	}
	pos := it.queue[0]
	it.queue = it.queue[1:]
	it.cur = pos.link
	it.depth = pos.depth
	it.pushBackChildren(it.cur, it.depth)
	return true
}

// IsFirstIteration reports whether the scanner stands on the start link.
func (it *Levelorder) IsFirstIteration() bool { return it.cur == it.start }

// Depth returns the distance of the current position from the start
// link, -1 when the iteration is exhausted.
func (it *Levelorder) Depth() int { return it.depth }

// Link returns the current Link, nil when the iteration is exhausted.
func (it *Levelorder) Link() *tree.Link { return it.cur }

// Node returns the Node of the current Link.
func (it *Levelorder) Node() *tree.Node { return it.cur.Node() }

// Edge returns the Edge of the current Link; nil on the first iteration
// of a single-node tree.
func (it *Levelorder) Edge() *tree.Edge { return it.cur.Edge() }

// StartLink returns the link the iteration was anchored at.
func (it *Levelorder) StartLink() *tree.Link { return it.start }

// StartNode returns the node the iteration was anchored at.
func (it *Levelorder) StartNode() *tree.Node { return it.start.Node() }

func (it *Levelorder) pushBackChildren(l *tree.Link, depth int) {
	for c := l.Next(); c != l; c = c.Next() {
		it.queue = append(it.queue, levelPosition{c.Outer(), depth + 1})
	}
}
