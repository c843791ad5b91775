// Package tree: element types (Node, Edge, Link), sentinel errors,
// payload hooks and the functional options accepted by NewTree.
package tree

import "errors"

// Sentinel errors for the topology core.
var (
	// ErrOutOfRange indicates an arena access with an index beyond bounds.
	ErrOutOfRange = errors.New("tree: index out of range")

	// ErrInvalidTopology indicates a mutation whose operand does not belong
	// to the tree, or that would violate the single-root / connectedness
	// invariant (e.g. AddRoot on a nonempty tree).
	ErrInvalidTopology = errors.New("tree: invalid topology")
)

// EdgeSplitFunc derives the payloads of the two halves of a split Edge
// from the original payload. Reroot places the new root node at the
// primary (proximal) end of the target edge, so the proximal half covers
// 0% and the distal half 100% of the original branch; a branch-length
// payload would return (0, full).
type EdgeSplitFunc func(data any) (proximal, distal any)

// OrientationFlipFunc is invoked for every Edge whose primary/secondary
// orientation was reversed by a rerooting operation, after the reversal.
// Payloads that encode "distance from the proximal node" must be flipped
// here (new = length - old); the engine never interprets payloads itself.
type OrientationFlipFunc func(e *Edge)

// Option configures a Tree before first use. Use with NewTree(opts...).
type Option func(t *Tree)

// WithEdgeSplitFunc installs the payload hook used when Reroot splits the
// target edge. Without it the distal half keeps the original payload and
// the proximal half gets nil.
func WithEdgeSplitFunc(fn EdgeSplitFunc) Option {
	return func(t *Tree) { t.splitFn = fn }
}

// WithOrientationFlipFunc installs the payload hook called per flipped
// edge during Reroot and RerootAt.
func WithOrientationFlipFunc(fn OrientationFlipFunc) Option {
	return func(t *Tree) { t.flipFn = fn }
}

// Node is a branching point or leaf of the tree.
//
// A Node owns no child list; its neighborhood is the rotation cycle of
// Links starting at its primary Link. Data is an opaque payload slot
// (taxon name, placement record, ...) owned by the caller.
type Node struct {
	index int
	link  *Link // primary link; points toward the root

	// Data is arbitrary caller data. The engine never inspects it.
	Data any
}

// Index reports the dense arena position of the node. It is only valid
// until the next topology mutation.
func (n *Node) Index() int { return n.index }

// Primary returns the node's primary Link: the one whose Outer side faces
// the root. For the root node this is the tree's root Link.
func (n *Node) Primary() *Link { return n.link }

// Degree counts the links around the node, i.e. the number of attached
// edges (a single-node tree reports 1 for its self-closed link).
// Complexity: O(degree).
func (n *Node) Degree() int {
	d := 1
	for l := n.link.next; l != n.link; l = l.next {
		d++
	}
	return d
}

// IsLeaf reports whether the node has degree 1.
func (n *Node) IsLeaf() bool { return n.link.next == n.link }

// IsInner reports whether the node has degree > 1.
func (n *Node) IsInner() bool { return n.link.next != n.link }

// Edge connects exactly two Nodes. Its primary Link sits on the side
// closer to the root, the secondary on the side away from it. Data is an
// opaque payload slot (typically a branch length).
type Edge struct {
	index     int
	primary   *Link
	secondary *Link

	// Data is arbitrary caller data. The engine never inspects it.
	Data any
}

// Index reports the dense arena position of the edge. It is only valid
// until the next topology mutation.
func (e *Edge) Index() int { return e.index }

// Primary returns the half of the edge on the side closer to the root.
func (e *Edge) Primary() *Link { return e.primary }

// Secondary returns the half of the edge on the side away from the root.
func (e *Edge) Secondary() *Link { return e.secondary }

// PrimaryNode returns the endpoint closer to the root.
func (e *Edge) PrimaryNode() *Node { return e.primary.node }

// SecondaryNode returns the endpoint away from the root.
func (e *Edge) SecondaryNode() *Node { return e.secondary.node }

// Link is a half-edge: one directed side of an Edge, anchored at the Node
// it emanates from. Links form the rotation cycles that encode the whole
// topology.
type Link struct {
	index int
	next  *Link // next link in the rotation cycle of Node
	outer *Link // other half of the same Edge
	node  *Node
	edge  *Edge
}

// Index reports the dense arena position of the link. It is only valid
// until the next topology mutation.
func (l *Link) Index() int { return l.index }

// Next returns the following Link in the rotation cycle of l's Node.
func (l *Link) Next() *Link { return l.next }

// Outer returns the other half of l's Edge. Outer is an involution.
func (l *Link) Outer() *Link { return l.outer }

// Node returns the Node this link emanates from.
func (l *Link) Node() *Node { return l.node }

// Edge returns the Edge this link belongs to. It is nil only for the
// self-closed link of a single-node tree.
func (l *Link) Edge() *Edge { return l.edge }

// IsLeaf reports whether the link's node has degree 1, i.e. whether the
// link closes a rotation cycle of length one.
func (l *Link) IsLeaf() bool { return l.next == l }

// IsInner reports whether the link's node has degree > 1.
func (l *Link) IsInner() bool { return l.next != l }
