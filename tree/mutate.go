// Package tree: topology mutations — edge splitting and rerooting.
//
// Every operation here either fully completes or leaves the tree
// untouched: operands are validated up front and new elements are staged
// before any pointer of the existing topology is rewritten.
package tree

// AddNodeOnEdge splits e into two edges by inserting a fresh degree-2
// node, and returns the new node together with the new distal edge
// (between the new node and e's old secondary side). e itself becomes the
// proximal half and keeps its payload; the distal edge's payload is nil.
// Callers that split branch-length payloads repair both afterwards.
//
// Returns ErrInvalidTopology if e does not belong to this tree.
// Complexity: O(1).
func (t *Tree) AddNodeOnEdge(e *Edge, nodeData any) (*Node, *Edge, error) {
	if !t.HasEdge(e) {
		return nil, nil, ErrInvalidTopology
	}

	pl, sl := e.primary, e.secondary

	n := &Node{index: len(t.nodes), Data: nodeData}
	la := &Link{index: len(t.links), node: n}     // faces the proximal side
	lb := &Link{index: len(t.links) + 1, node: n} // faces the distal side
	dist := &Edge{index: len(t.edges)}

	la.next, lb.next = lb, la
	n.link = la

	la.edge = e
	la.outer = pl
	lb.edge = dist
	lb.outer = sl
	dist.primary = lb
	dist.secondary = sl

	// Commit: rewire the two existing links and append the staged
	// elements.
	pl.outer = la
	sl.outer = lb
	sl.edge = dist
	e.secondary = la

	t.nodes = append(t.nodes, n)
	t.links = append(t.links, la, lb)
	t.edges = append(t.edges, dist)
	t.epoch++
	return n, dist, nil
}

// Reroot inserts a new root node on e and reroots the tree at it. The new
// node sits at the proximal (primary) end of e, so the proximal half of
// the split covers 0% and the distal half 100% of the original branch;
// with an EdgeSplitFunc installed the payloads of both halves are derived
// through it, otherwise the distal half keeps the original payload. The
// orientation-flip hook runs for every edge on the old-root→new-root path
// whose direction reversed.
//
// Returns ErrInvalidTopology if e does not belong to this tree.
// Complexity: O(path length to the old root).
func (t *Tree) Reroot(e *Edge) (*Node, error) {
	if !t.HasEdge(e) {
		return nil, ErrInvalidTopology
	}

	orig := e.Data
	n, dist, err := t.AddNodeOnEdge(e, nil)
	if err != nil {
		return nil, err
	}
	if t.splitFn != nil {
		e.Data, dist.Data = t.splitFn(orig)
	} else {
		e.Data, dist.Data = nil, orig
	}

	// The new node's first link faces the old proximal side; using it as
	// root link keeps that side the first child in rotation order.
	if err = t.RerootAt(n.link); err != nil {
		return nil, err
	}
	return n, nil
}

// RerootAt moves the root pointer to l without changing any Node or Edge
// identity: the links on the path from l's node up to the old root have
// their "toward root" meaning flipped, as do the primary/secondary sides
// of the path edges, and the orientation-flip hook runs once per flipped
// edge. Depths and orientations of derived caches change, so the epoch is
// bumped even though indices are untouched.
//
// Returns ErrInvalidTopology if l does not belong to this tree.
// Complexity: O(path length to the old root).
func (t *Tree) RerootAt(l *Link) error {
	if !t.HasLink(l) {
		return ErrInvalidTopology
	}

	// Collect the primary links from l's node up to the old root before
	// touching anything.
	var path []*Link
	for cur := l.node; cur != t.rootLink.node; {
		pl := cur.link
		path = append(path, pl)
		cur = pl.outer.node
	}

	l.node.link = l
	for _, pl := range path {
		parent := pl.outer.node
		parent.link = pl.outer
		e := pl.edge
		e.primary, e.secondary = pl, pl.outer
		if t.flipFn != nil {
			t.flipFn(e)
		}
	}

	t.rootLink = l
	t.epoch++
	return nil
}
