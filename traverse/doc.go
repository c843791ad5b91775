// Package traverse provides iterators over the rotation structure of
// phylotree trees: Preorder, Postorder, Levelorder and Eulertour.
//
// What:
//
//	Each iterator is a forward scanner over Links. Construct it from a
//	starting Link (usually the tree's root link), then advance with
//	Next() and read the current position through Link(), Node() and
//	Edge(). A nil starting link yields an empty iteration.
//
//	▸ Preorder   — a Link before its subtree, children in rotation order.
//	▸ Postorder  — a Node only after all of its descendants; the start
//	               link is visited last and flagged by IsLastIteration().
//	▸ Levelorder — breadth-first, with Depth() per position.
//	▸ Eulertour  — the walk that crosses every edge once per direction;
//	               2·edges+1 positions, Depth() 0 at the start and end.
//
// Why:
//
//	Tree algorithms differ only in the order they touch nodes. Keeping
//	the orders here, decoupled from the store in package tree, lets the
//	lca and bipart engines (and user code) pick an order without
//	re-deriving the rotation walk each time.
//
// Iteration state lives entirely in the iterator; the tree is not
// touched. Mutating the tree while an iterator is live is undefined.
//
// Complexity: O(1) amortized per step, O(n) for a full pass. Preorder,
// Postorder and Levelorder carry an explicit stack or queue; Eulertour
// needs no auxiliary storage at all.
package traverse
