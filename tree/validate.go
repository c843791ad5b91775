package tree

import "fmt"

// Validate checks every structural invariant of the tree and returns nil
// when all hold. Any violation is reported as an error wrapping
// ErrInvalidTopology with a description of the first inconsistency found.
//
// Checked invariants:
//   - arenas are dense and every element stores its own index;
//   - outer is a fixed-point-free involution (except the single-node tree,
//     where the root link closes on itself);
//   - next forms one cycle per node and every link on it names that node;
//   - each edge's primary/secondary links name the edge, and the primary
//     link is on the root side;
//   - every non-root node's primary link points toward the root;
//   - all nodes are reachable from the root by parent walks;
//   - count relations hold (links = 2·edges except the single-node tree).
//
// Complexity: O(n).
func (t *Tree) Validate() error {
	if t.Empty() {
		if t.rootLink != nil {
			return fmt.Errorf("%w: empty tree has a root link", ErrInvalidTopology)
		}
		return nil
	}
	if t.rootLink == nil {
		return fmt.Errorf("%w: non-empty tree without root link", ErrInvalidTopology)
	}

	for i, l := range t.links {
		if l == nil {
			return fmt.Errorf("%w: nil link at index %d", ErrInvalidTopology, i)
		}
		if l.index != i {
			return fmt.Errorf("%w: link at index %d reports index %d", ErrInvalidTopology, i, l.index)
		}
		if l.outer == nil || l.next == nil || l.node == nil {
			return fmt.Errorf("%w: link %d has nil pointers", ErrInvalidTopology, i)
		}
		if l.outer.outer != l {
			return fmt.Errorf("%w: link %d outer is not an involution", ErrInvalidTopology, i)
		}
		if l.outer != l && l.edge == nil {
			return fmt.Errorf("%w: link %d has no edge", ErrInvalidTopology, i)
		}
		if l.outer == l && (len(t.nodes) != 1 || l != t.rootLink) {
			return fmt.Errorf("%w: link %d closes on itself", ErrInvalidTopology, i)
		}
	}

	for i, n := range t.nodes {
		if n == nil {
			return fmt.Errorf("%w: nil node at index %d", ErrInvalidTopology, i)
		}
		if n.index != i {
			return fmt.Errorf("%w: node at index %d reports index %d", ErrInvalidTopology, i, n.index)
		}
		if n.link == nil {
			return fmt.Errorf("%w: node %d has no link", ErrInvalidTopology, i)
		}
		// Walk the rotation cycle; the bound guards against broken next
		// chains never returning to the start.
		steps := 0
		for l := n.link; ; l = l.next {
			if l.node != n {
				return fmt.Errorf("%w: link %d on node %d rotation names node %d", ErrInvalidTopology, l.index, i, l.node.index)
			}
			steps++
			if steps > len(t.links) {
				return fmt.Errorf("%w: rotation of node %d does not close", ErrInvalidTopology, i)
			}
			if l.next == n.link {
				break
			}
		}
	}

	for i, e := range t.edges {
		if e == nil {
			return fmt.Errorf("%w: nil edge at index %d", ErrInvalidTopology, i)
		}
		if e.index != i {
			return fmt.Errorf("%w: edge at index %d reports index %d", ErrInvalidTopology, i, e.index)
		}
		if e.primary == nil || e.secondary == nil {
			return fmt.Errorf("%w: edge %d has nil links", ErrInvalidTopology, i)
		}
		if e.primary.edge != e || e.secondary.edge != e {
			return fmt.Errorf("%w: edge %d links name another edge", ErrInvalidTopology, i)
		}
		if e.primary.outer != e.secondary {
			return fmt.Errorf("%w: edge %d links are not outer pairs", ErrInvalidTopology, i)
		}
		// The secondary node's primary link must be the secondary link of
		// this edge: that is what "primary link is on the root side" means.
		if e.secondary.node.link != e.secondary {
			return fmt.Errorf("%w: edge %d is not oriented toward the root", ErrInvalidTopology, i)
		}
	}

	// Every node must reach the root by following primary links; the hop
	// bound caps walks trapped in a cycle.
	root := t.rootLink.node
	for i, n := range t.nodes {
		hops := 0
		for cur := n; cur != root; {
			if cur.link.outer == cur.link {
				return fmt.Errorf("%w: node %d detached from the root", ErrInvalidTopology, i)
			}
			cur = cur.link.outer.node
			hops++
			if hops > len(t.nodes) {
				return fmt.Errorf("%w: node %d does not reach the root", ErrInvalidTopology, i)
			}
		}
	}

	if len(t.nodes) == 1 {
		if len(t.links) != 1 || len(t.edges) != 0 {
			return fmt.Errorf("%w: single-node tree with %d links and %d edges", ErrInvalidTopology, len(t.links), len(t.edges))
		}
	} else if len(t.links) != 2*len(t.edges) {
		return fmt.Errorf("%w: %d links for %d edges", ErrInvalidTopology, len(t.links), len(t.edges))
	}
	if len(t.edges) != len(t.nodes)-1 {
		return fmt.Errorf("%w: %d edges for %d nodes", ErrInvalidTopology, len(t.edges), len(t.nodes))
	}

	return nil
}
