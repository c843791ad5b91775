package bipart

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/phylotree/traverse"
	"github.com/katalvlaran/phylotree/tree"
)

// FindSmallestSubtree returns the smallest bipartition, in either
// orientation, whose leaf set covers every node in leaves. Candidates are
// scanned in node-index order and ties keep the first one found. ok is
// false when no orientation covers the set.
// Complexity: O(n·leaves/64).
func (tb *Table) FindSmallestSubtree(leaves []*tree.Node) (bp Bipartition, ok bool, err error) {
	if err = tb.stale(); err != nil {
		return Bipartition{}, false, err
	}
	comp, err := tb.LeafSet(leaves)
	if err != nil {
		return Bipartition{}, false, err
	}

	rest := bits.New(tb.leafCount) // scratch for subset tests
	minCount := 0
	for i := range tb.bips {
		cand := tb.bips[i]

		if count := cand.leaves.OnesCount(); count > 0 {
			rest.AndNot(comp, cand.leaves)
			if rest.AllZeros() && (!ok || count < minCount) {
				bp, ok, minCount = cand, true, count
			}
		}

		inv := cand.Invert()
		if count := inv.leaves.OnesCount(); count > 0 {
			rest.AndNot(comp, inv.leaves)
			if rest.AllZeros() && (!ok || count < minCount) {
				bp, ok, minCount = inv, true, count
			}
		}
	}
	return bp, ok, nil
}

// FindMonophyleticEdges returns, sorted by index, every edge lying inside
// a subtree (either orientation of any split) whose leaves are all
// members of leaves, the split edges themselves included.
// Complexity: O(n·leaves/64 + answer).
func (tb *Table) FindMonophyleticEdges(leaves []*tree.Node) ([]int, error) {
	if err := tb.stale(); err != nil {
		return nil, err
	}
	want, err := tb.LeafSet(leaves)
	if err != nil {
		return nil, err
	}

	result := bits.New(tb.tr.EdgeCount())
	rest := bits.New(tb.leafCount)
	mark := func(bp Bipartition) {
		for _, e := range SubtreeEdges(bp.link) {
			result.SetBit(e, 1)
		}
		// the self-closed root link of a single-node tree has no edge
		if e := bp.link.Edge(); e != nil {
			result.SetBit(e.Index(), 1)
		}
	}

	for i := range tb.bips {
		cand := tb.bips[i]

		// all tips of the subtree belong to the wanted set?
		if cand.leaves.OnesCount() > 0 {
			rest.AndNot(cand.leaves, want)
			if rest.AllZeros() {
				mark(cand)
			}
		}

		inv := cand.Invert()
		if inv.leaves.OnesCount() > 0 {
			rest.AndNot(inv.leaves, want)
			if rest.AllZeros() {
				mark(inv)
			}
		}
	}

	var edges []int
	for e := 0; e < tb.tr.EdgeCount(); e++ {
		if result.Bit(e) == 1 {
			edges = append(edges, e)
		}
	}
	return edges, nil
}

// SubtreeEdges collects the edge indices of the subtree behind l, the
// side away from l's outer partner; l's own edge is not included. A leaf
// link yields an empty result.
// Complexity: O(subtree size).
func SubtreeEdges(l *tree.Link) []int {
	var edges []int

	// bounded preorder: start past l and stop when the walk surfaces on
	// the far side of l's edge
	it := traverse.NewPreorder(l.Next())
	for it.Next() {
		if it.Link() == l.Outer() {
			break
		}
		if it.IsFirstIteration() {
			continue
		}
		edges = append(edges, it.Edge().Index())
	}
	return edges
}
