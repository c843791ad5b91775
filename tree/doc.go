// Package tree implements the half-edge topology core for phylogenetic
// trees: the Tree, Node, Edge and Link types, construction primitives for
// readers, and the mutation operations (node insertion, rerooting) that
// every higher-level analysis builds on.
//
// What:
//
//   - Tree: owner of three dense arenas (nodes, edges, links) plus one
//     designated root Link. An empty Tree is valid.
//   - Link: one half of an Edge. Following Next from any Link walks the
//     rotation cycle of its Node; Outer jumps to the other half of the
//     same Edge. The rotation order of Links defines child iteration
//     order for all traversals.
//   - Node / Edge: carry a stable dense index and an opaque Data payload
//     the engine never inspects.
//   - Construction: AddRoot and AddChild, the only primitives readers
//     need to build arbitrary topologies top-down.
//   - Mutation: AddNodeOnEdge (edge split), Reroot (new root node on an
//     edge), RerootAt (move the root pointer), Clear.
//
// Why:
//   - The rotation structure answers "children in order", "parent", and
//     "subtree across this edge" without per-node child slices, and keeps
//     rerooting an O(path) pointer exercise instead of a rebuild.
//   - Dense indices make per-node / per-edge tables (leaf sets, Euler
//     tours, distances) plain slices.
//
// Invariants (checked by Validate):
//
//   - Following Next from any Link returns to it after exactly
//     Degree(node) steps, and every Link on the cycle shares the Node.
//   - Outer is an involution: l.Outer().Outer() == l.
//   - Indices are dense 0..count-1 in every arena.
//   - Every non-root Node's primary Link points toward the root; every
//     Edge's primary Link sits on the side closer to the root.
//   - EdgeCount == NodeCount-1 and LinkCount == 2*EdgeCount for any
//     nonempty tree (a single-node tree has one self-closed Link).
//
// Derived structures (LCA index, bipartition table) are caches owned by
// their packages; any mutation here bumps the Tree epoch, and the caches
// refuse queries against a tree state they were not built from. The Tree
// performs no internal locking: concurrent reads are safe, mutations must
// be serialized by the caller.
//
// Errors:
//
//   - ErrOutOfRange        index beyond arena bounds
//   - ErrInvalidTopology   operand does not belong to this tree, or the
//     operation would break the single-root/connectedness invariant
//
// Complexity: accessors O(1); Degree O(degree); AddChild and
// AddNodeOnEdge O(degree) / O(1); Reroot and RerootAt O(path length);
// Validate O(n).
package tree
