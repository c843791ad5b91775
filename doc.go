// Package phylotree is an in-memory toolkit for phylogenetic tree
// topologies — from the half-edge core primitives to constant-time
// lowest-common-ancestor lookups and bipartition analysis.
//
// 🚀 What is phylotree?
//
//	A small, focused library that brings together:
//		• Core primitives: the Node/Edge/Link rotation structure, safe construction & mutation
//		• Traversals: preorder, postorder, levelorder and Euler-tour iterators
//		• Range minimum queries: a succinct O(n)-space, O(1)-query RMQ index
//		• LCA: Euler-tour + RMQ lowest-common-ancestor lookups in O(1)
//		• Bipartitions: per-node leaf sets, smallest enclosing subtrees, clade edges
//
// ✨ Why choose phylotree?
//
//   - Honest contracts – every mutation either completes and reindexes, or leaves the tree untouched
//   - Explicit staleness – derived indices carry the tree identity and epoch they were built from
//   - Pure topology – branch lengths, names and placements are opaque payloads owned by you
//   - Extensible – supply hooks (edge split, orientation flip) for payload-aware rerooting
//
// Under the hood, everything is organized under five subpackages:
//
//	tree/     — Tree, Node, Edge, Link arenas, construction & mutation primitives
//	traverse/ — forward-only iterators over a live tree
//	rmq/      — generic block-decomposed range-minimum-query index
//	lca/      — lowest-common-ancestor engine built on traverse + rmq
//	bipart/   — bipartition (leaf bitset) engine built on traverse
//
// Quick ASCII example:
//
//	      R
//	     / \
//	    E   L
//	   / \   \
//	  A   D   K
//	     / \
//	    B   C
//
//	a rooted tree with four leaves; removing the edge above D splits the
//	leaves into {B,C} versus {A,K}: one bipartition.
//
// Readers (Newick, Nexus, jplace) and writers live outside this module and
// drive it exclusively through the tree package's construction primitives.
//
//	go get github.com/katalvlaran/phylotree
package phylotree
