package traverse

import "github.com/katalvlaran/phylotree/tree"

// Eulertour walks around the tree by always crossing the current edge and
// turning to the next link in rotation order. Every edge is crossed once
// per direction; the start link is visited first and again last, so a
// tree with e edges produces exactly 2·e+1 positions. Depth starts at 0
// and changes by ±1 with every crossing.
type Eulertour struct {
	cur     *tree.Link
	start   *tree.Link
	depth   int
	started bool
	closed  bool
}

// NewEulertour returns an Euler-tour scanner anchored at start. A nil
// start yields an empty iteration.
func NewEulertour(start *tree.Link) *Eulertour {
	return &Eulertour{start: start, depth: -1}
}

// Next advances to the following position and reports whether one exists.
// Complexity: O(1).
func (it *Eulertour) Next() bool {
	if !it.started {
		it.started = true
		it.cur = it.start
		if it.cur == nil {
			return false
		}
		it.depth = 0
		return true
	}
	if it.closed || it.cur == nil {
		it.cur = nil
		it.depth = -1
		return false
	}
	if it.cur.Outer() == it.cur {
		// single-node tree, nothing to cross
		it.cur = nil
		it.depth = -1
		return false
	}
	if it.cur == it.cur.Edge().Primary() {
		it.depth++
	} else {
		it.depth--
	}
	it.cur = it.cur.Outer().Next()
	if it.cur == it.start {
		// closing position: the start link once more, then stop
		it.closed = true
	}
	return true
}

// IsFirstIteration reports whether the scanner stands on the opening
// position of the tour.
func (it *Eulertour) IsFirstIteration() bool { return it.cur == it.start && !it.closed }

// IsLastIteration reports whether the scanner stands on the closing
// position of the tour, the return to the start link.
func (it *Eulertour) IsLastIteration() bool { return it.closed && it.cur != nil }

// Depth returns the distance of the current position from the start
// node, -1 when the iteration is exhausted.
func (it *Eulertour) Depth() int { return it.depth }

// Link returns the current Link, nil when the iteration is exhausted.
func (it *Eulertour) Link() *tree.Link { return it.cur }

// Node returns the Node of the current Link.
func (it *Eulertour) Node() *tree.Node { return it.cur.Node() }

// Edge returns the Edge of the current Link; nil at a single-node tree's
// only position.
func (it *Eulertour) Edge() *tree.Edge { return it.cur.Edge() }

// StartLink returns the link the iteration was anchored at.
func (it *Eulertour) StartLink() *tree.Link { return it.start }

// StartNode returns the node the iteration was anchored at.
func (it *Eulertour) StartNode() *tree.Node { return it.start.Node() }
