// Package tree: the Tree container — arenas, accessors and identity.
package tree

import "github.com/google/uuid"

// Tree owns the three element arenas and the designated root Link.
//
// The topology is fully described by the links; nodes and edges exist to
// carry stable indices and opaque payloads. Rooting is a property of
// which Link is marked as root, not of the topology itself.
//
// A Tree performs no internal locking. Concurrent read-only traversal and
// queries are safe; any mutation (AddChild, AddNodeOnEdge, Reroot,
// RerootAt, Clear) must not run concurrently with anything else touching
// the same Tree.
type Tree struct {
	id    uuid.UUID
	epoch uint64

	links []*Link
	nodes []*Node
	edges []*Edge

	rootLink *Link

	splitFn EdgeSplitFunc
	flipFn  OrientationFlipFunc
}

// NewTree creates an empty tree with the given options and a fresh
// identity tag. Complexity: O(1).
func NewTree(opts ...Option) *Tree {
	t := &Tree{id: uuid.New()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the tree's identity tag, assigned once at construction.
// Derived indices record it at build time to reject queries against a
// different tree.
func (t *Tree) ID() uuid.UUID { return t.id }

// Epoch returns the mutation counter. Every topology mutation increments
// it; derived caches built at an older epoch are stale and must be
// rebuilt by the caller.
func (t *Tree) Epoch() uint64 { return t.epoch }

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return len(t.nodes) == 0 }

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges. For any nonempty tree this is
// NodeCount()-1.
func (t *Tree) EdgeCount() int { return len(t.edges) }

// LinkCount returns the number of links: 2*EdgeCount(), except for the
// single-node tree which has one self-closed link.
func (t *Tree) LinkCount() int { return len(t.links) }

// NodeAt returns the node at the given dense index.
// Returns ErrOutOfRange if index is not in [0, NodeCount()).
func (t *Tree) NodeAt(index int) (*Node, error) {
	if index < 0 || index >= len(t.nodes) {
		return nil, ErrOutOfRange
	}
	return t.nodes[index], nil
}

// EdgeAt returns the edge at the given dense index.
// Returns ErrOutOfRange if index is not in [0, EdgeCount()).
func (t *Tree) EdgeAt(index int) (*Edge, error) {
	if index < 0 || index >= len(t.edges) {
		return nil, ErrOutOfRange
	}
	return t.edges[index], nil
}

// LinkAt returns the link at the given dense index.
// Returns ErrOutOfRange if index is not in [0, LinkCount()).
func (t *Tree) LinkAt(index int) (*Link, error) {
	if index < 0 || index >= len(t.links) {
		return nil, ErrOutOfRange
	}
	return t.links[index], nil
}

// RootLink returns the designated root link, or nil for the empty tree.
func (t *Tree) RootLink() *Link { return t.rootLink }

// RootNode returns the node the root link emanates from, or nil for the
// empty tree.
func (t *Tree) RootNode() *Node {
	if t.rootLink == nil {
		return nil
	}
	return t.rootLink.node
}

// HasNode reports whether n is an element of this tree (by identity, not
// by index value). Complexity: O(1).
func (t *Tree) HasNode(n *Node) bool {
	return n != nil && n.index >= 0 && n.index < len(t.nodes) && t.nodes[n.index] == n
}

// HasEdge reports whether e is an element of this tree.
func (t *Tree) HasEdge(e *Edge) bool {
	return e != nil && e.index >= 0 && e.index < len(t.edges) && t.edges[e.index] == e
}

// HasLink reports whether l is an element of this tree.
func (t *Tree) HasLink(l *Link) bool {
	return l != nil && l.index >= 0 && l.index < len(t.links) && t.links[l.index] == l
}

// Clear removes all nodes, edges and links, yielding the valid empty
// tree, and invalidates every derived cache. The identity tag is kept.
func (t *Tree) Clear() {
	t.links = nil
	t.nodes = nil
	t.edges = nil
	t.rootLink = nil
	t.epoch++
}
