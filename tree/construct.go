// Package tree: construction primitives. Readers (Newick, Nexus, jplace)
// build arbitrary topologies exclusively through AddRoot and AddChild,
// top-down; indices stay dense by construction.
package tree

// AddRoot creates the first node of an empty tree with a single
// self-closed link, and designates that link as root.
// Returns ErrInvalidTopology if the tree already has nodes.
// Complexity: O(1).
func (t *Tree) AddRoot(data any) (*Node, error) {
	if !t.Empty() {
		return nil, ErrInvalidTopology
	}
	n := &Node{index: 0, Data: data}
	l := &Link{index: 0, node: n}
	l.next = l
	l.outer = l
	n.link = l

	t.nodes = append(t.nodes, n)
	t.links = append(t.links, l)
	t.rootLink = l
	t.epoch++
	return n, nil
}

// AddChild attaches a fresh leaf node below parent, appended as the last
// child in parent's rotation order, and returns the new node and the
// connecting edge. nodeData and edgeData become the opaque payloads of
// the new node and edge.
//
// Returns ErrInvalidTopology if parent does not belong to this tree.
// Complexity: O(degree(parent)).
func (t *Tree) AddChild(parent *Node, nodeData, edgeData any) (*Node, *Edge, error) {
	if !t.HasNode(parent) {
		return nil, nil, ErrInvalidTopology
	}

	child := &Node{index: len(t.nodes), Data: nodeData}

	// The parent side of the new edge. A freshly created root has one
	// self-closed, edgeless link; that link becomes the parent half
	// instead of growing the rotation, so LinkCount stays 2*EdgeCount.
	var linkP *Link
	if parent.link.outer == parent.link && parent.link.edge == nil {
		linkP = parent.link
	} else {
		linkP = &Link{index: len(t.links), node: parent}
		// Splice at the end of the rotation cycle, just before the
		// primary link, making the new node the last child.
		last := parent.link
		for last.next != parent.link {
			last = last.next
		}
		last.next = linkP
		linkP.next = parent.link
		t.links = append(t.links, linkP)
	}

	linkC := &Link{index: len(t.links), node: child}
	linkC.next = linkC
	child.link = linkC

	e := &Edge{index: len(t.edges), primary: linkP, secondary: linkC, Data: edgeData}
	linkP.edge = e
	linkC.edge = e
	linkP.outer = linkC
	linkC.outer = linkP

	t.nodes = append(t.nodes, child)
	t.links = append(t.links, linkC)
	t.edges = append(t.edges, e)
	t.epoch++
	return child, e, nil
}
