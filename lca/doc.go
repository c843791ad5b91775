// Package lca answers lowest-common-ancestor queries on a phylotree tree
// in O(1) after an O(n) build.
//
// What:
//
//	New runs one Euler tour of the tree, records the depth at every tour
//	position and the first position of every node, and puts a
//	range-minimum index over the depth array. Lca(a, b) then reduces to
//	one RMQ between the first occurrences of a and b: the shallowest
//	position in that window is the common ancestor.
//
// The Index is a snapshot. It remembers which tree it was built from and
// at which mutation epoch; queries against a mutated tree fail with
// ErrStaleIndex instead of answering from outdated positions, and nodes
// of a different tree are rejected with ErrNotInTree. Rebuild after any
// topology change, rerooting included.
//
// Errors:
//
//	▸ ErrNilTree    — New(nil).
//	▸ ErrEmptyTree  — New on a tree without nodes.
//	▸ ErrNotInTree  — Lca with a node of another tree, or nil.
//	▸ ErrStaleIndex — Lca after the tree mutated since the build.
//
// Complexity: build O(n) time and space, Lca O(1).
package lca
