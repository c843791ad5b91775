// Package bipart derives the bipartitions of a phylotree tree: for every
// node, the set of leaves in its subtree, kept as a bitset.
//
// What:
//
//	New assigns each leaf a dense index by one left-to-right arena scan,
//	then fills one bitset per node in a single postorder pass: a leaf
//	sets its own bit, an inner node ORs the bitsets of its children.
//	Removing the edge above a node splits the leaves into the node's
//	bitset and its complement; a Bipartition bundles the node, its
//	rootward link and the bitset, and Invert flips to the other side.
//
// Queries:
//
//	▸ FindSmallestSubtree  — the smallest subtree (either orientation)
//	                         whose leaf set covers a given set of leaves.
//	▸ FindMonophyleticEdges — all edges inside subtrees whose leaves are
//	                         entirely within a given set of leaves.
//	▸ SubtreeEdges          — edge indices of the subtree behind a link.
//
// Like the lca index, a Table is a snapshot: it remembers the identity
// and epoch of the tree it was built from, and queries fail with
// ErrStaleTable once the tree has mutated. Rebuild after any topology
// change.
//
// Errors:
//
//	▸ ErrNilTree    — New(nil).
//	▸ ErrEmptyTree  — New on a tree without nodes.
//	▸ ErrNotInTree  — query with a node of another tree, or nil.
//	▸ ErrNotLeaf    — a leaf-set member that is an inner node.
//	▸ ErrStaleTable — query after the tree mutated since the build.
//
// Complexity: build O(n·leaves/64) time and space; queries are linear in
// the table resp. subtree size.
package bipart
