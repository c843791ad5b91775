package lca

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/phylotree/rmq"
	"github.com/katalvlaran/phylotree/traverse"
	"github.com/katalvlaran/phylotree/tree"
)

var (
	// ErrNilTree is returned by New when the tree is nil.
	ErrNilTree = errors.New("lca: tree is nil")

	// ErrEmptyTree is returned by New when the tree has no nodes.
	ErrEmptyTree = errors.New("lca: tree is empty")

	// ErrNotInTree is returned by queries when a node does not belong to
	// the tree the index was built from.
	ErrNotInTree = errors.New("lca: node not in tree")

	// ErrStaleIndex is returned by queries after the tree has been
	// mutated since the index was built.
	ErrStaleIndex = errors.New("lca: tree changed since build")
)

// Index answers lowest-common-ancestor queries against one snapshot of a
// tree. Build with New; rebuild after any mutation.
type Index struct {
	tr    *tree.Tree
	id    uuid.UUID
	epoch uint64

	tour   []*tree.Node // node at each Euler-tour position
	depths []int        // depth at each Euler-tour position
	first  []int        // node index -> first tour position
	rmq    *rmq.Index[int]
}

// New builds an LCA index from the current state of t.
// Complexity: O(n) time and space.
func New(t *tree.Tree) (*Index, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if t.Empty() {
		return nil, ErrEmptyTree
	}

	n := t.NodeCount()
	ix := &Index{
		tr:     t,
		id:     t.ID(),
		epoch:  t.Epoch(),
		tour:   make([]*tree.Node, 0, 2*t.EdgeCount()+1),
		depths: make([]int, 0, 2*t.EdgeCount()+1),
		first:  make([]int, n),
	}
	for i := range ix.first {
		ix.first[i] = -1
	}

	it := traverse.NewEulertour(t.RootLink())
	for it.Next() {
		node := it.Node()
		if ix.first[node.Index()] < 0 {
			ix.first[node.Index()] = len(ix.tour)
		}
		ix.tour = append(ix.tour, node)
		ix.depths = append(ix.depths, it.Depth())
	}
	ix.rmq = rmq.New(ix.depths)
	return ix, nil
}

// Lca returns the lowest common ancestor of a and b. Either node may be
// an ancestor of the other, or the two may be identical.
// Complexity: O(1).
func (ix *Index) Lca(a, b *tree.Node) (*tree.Node, error) {
	if err := ix.check(a); err != nil {
		return nil, err
	}
	if err := ix.check(b); err != nil {
		return nil, err
	}

	p, q := ix.first[a.Index()], ix.first[b.Index()]
	if p > q {
		p, q = q, p
	}
	pos, err := ix.rmq.Query(p, q)
	if err != nil {
		return nil, err
	}
	return ix.tour[pos], nil
}

// Depth returns the number of edges between n and the root at build time.
func (ix *Index) Depth(n *tree.Node) (int, error) {
	if err := ix.check(n); err != nil {
		return 0, err
	}
	return ix.depths[ix.first[n.Index()]], nil
}

// TourLength returns the number of Euler-tour positions, 2·edges+1.
func (ix *Index) TourLength() int { return len(ix.tour) }

func (ix *Index) check(n *tree.Node) error {
	if ix.tr.ID() != ix.id || ix.tr.Epoch() != ix.epoch {
		return ErrStaleIndex
	}
	if !ix.tr.HasNode(n) {
		return ErrNotInTree
	}
	return nil
}
