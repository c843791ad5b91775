package bipart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/phylotree/traverse"
	"github.com/katalvlaran/phylotree/tree"
)

var (
	// ErrNilTree is returned by New when the tree is nil.
	ErrNilTree = errors.New("bipart: tree is nil")

	// ErrEmptyTree is returned by New when the tree has no nodes.
	ErrEmptyTree = errors.New("bipart: tree is empty")

	// ErrNotInTree is returned by queries when a node does not belong to
	// the tree the table was built from.
	ErrNotInTree = errors.New("bipart: node not in tree")

	// ErrNotLeaf is returned when a leaf-set member is an inner node.
	ErrNotLeaf = errors.New("bipart: node is not a leaf")

	// ErrStaleTable is returned by queries after the tree has been
	// mutated since the table was built.
	ErrStaleTable = errors.New("bipart: tree changed since build")
)

// Bipartition is one split of the leaf set: the leaves in the subtree
// behind Link (away from its outer side) versus all others. The zero
// value is the empty bipartition.
type Bipartition struct {
	node   *tree.Node
	link   *tree.Link
	leaves bits.Bits
}

// Node returns the node anchoring the split, nil for the empty value.
func (bp Bipartition) Node() *tree.Node { return bp.node }

// Link returns the rootward link of the anchoring node.
func (bp Bipartition) Link() *tree.Link { return bp.link }

// LeafSet returns the bitset of leaves on the subtree side. The bitset
// is shared with the table; callers must not modify it.
func (bp Bipartition) LeafSet() bits.Bits { return bp.leaves }

// Empty reports whether this is the zero bipartition.
func (bp Bipartition) Empty() bool { return bp.link == nil }

// Invert returns the same split seen from the other side of the edge:
// the link flips to its outer partner and the leaf set complements.
// Inverting the empty bipartition yields the empty bipartition.
func (bp Bipartition) Invert() Bipartition {
	if bp.link == nil {
		return Bipartition{}
	}
	inv := bits.New(bp.leaves.Num)
	inv.Not(bp.leaves)
	outer := bp.link.Outer()
	return Bipartition{node: outer.Node(), link: outer, leaves: inv}
}

// Table holds one bipartition per node of a tree snapshot. Build with
// New; rebuild after any mutation.
type Table struct {
	tr    *tree.Tree
	id    uuid.UUID
	epoch uint64

	leafIdx   []int // node index -> dense leaf index, -1 for inner nodes
	leafCount int
	bips      []Bipartition // by node index
}

// New builds the bipartition table from the current state of t.
// Complexity: O(n·leaves/64).
func New(t *tree.Tree) (*Table, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if t.Empty() {
		return nil, ErrEmptyTree
	}

	n := t.NodeCount()
	tb := &Table{
		tr:      t,
		id:      t.ID(),
		epoch:   t.Epoch(),
		leafIdx: make([]int, n),
		bips:    make([]Bipartition, n),
	}

	// Dense leaf indices in node-arena order, one left-to-right scan.
	for i := 0; i < n; i++ {
		node, err := t.NodeAt(i)
		if err != nil {
			return nil, err
		}
		if node.IsLeaf() {
			tb.leafIdx[i] = tb.leafCount
			tb.leafCount++
		} else {
			tb.leafIdx[i] = -1
		}
	}

	it := traverse.NewPostorder(t.RootLink())
	for it.Next() {
		node := it.Node()
		leaves := bits.New(tb.leafCount)
		if node.IsLeaf() {
			leaves.SetBit(tb.leafIdx[node.Index()], 1)
		} else {
			for l := it.Link().Next(); l != it.Link(); l = l.Next() {
				leaves.Or(leaves, tb.bips[l.Outer().Node().Index()].leaves)
			}
			if it.IsLastIteration() {
				// the root's own link also leads to a child subtree
				leaves.Or(leaves, tb.bips[it.Link().Outer().Node().Index()].leaves)
			}
		}
		tb.bips[node.Index()] = Bipartition{node: node, link: it.Link(), leaves: leaves}
	}
	return tb, nil
}

// LeafCount returns the number of leaves the table was built over.
func (tb *Table) LeafCount() int { return tb.leafCount }

// At returns the bipartition anchored at n.
func (tb *Table) At(n *tree.Node) (Bipartition, error) {
	if err := tb.check(n); err != nil {
		return Bipartition{}, err
	}
	return tb.bips[n.Index()], nil
}

// LeafIndex returns the dense leaf index of n, or ErrNotLeaf.
func (tb *Table) LeafIndex(n *tree.Node) (int, error) {
	if err := tb.check(n); err != nil {
		return 0, err
	}
	if tb.leafIdx[n.Index()] < 0 {
		return 0, ErrNotLeaf
	}
	return tb.leafIdx[n.Index()], nil
}

// LeafSet builds the bitset holding exactly the given leaves.
func (tb *Table) LeafSet(nodes []*tree.Node) (bits.Bits, error) {
	set := bits.New(tb.leafCount)
	for _, n := range nodes {
		idx, err := tb.LeafIndex(n)
		if err != nil {
			return bits.Bits{}, err
		}
		set.SetBit(idx, 1)
	}
	return set, nil
}

func (tb *Table) check(n *tree.Node) error {
	if tb.tr.ID() != tb.id || tb.tr.Epoch() != tb.epoch {
		return ErrStaleTable
	}
	if !tb.tr.HasNode(n) {
		return ErrNotInTree
	}
	return nil
}

// stale is the table-level freshness check for queries without a node
// argument position to hang it on.
func (tb *Table) stale() error {
	if tb.tr.ID() != tb.id || tb.tr.Epoch() != tb.epoch {
		return ErrStaleTable
	}
	return nil
}
