package tree_test

import (
	"fmt"

	"github.com/katalvlaran/phylotree/traverse"
	"github.com/katalvlaran/phylotree/tree"
)

// ExampleTree builds the tree ((A,B)C,D)E, reroots it on the C-A edge
// and shows how node and edge identities survive the move.
//
//	  E              new
//	 / \            /   \
//	C   D   ==>    A     C
//	/ \                 / \
//	A  B               B   E
//	                        \
//	                         D
func ExampleTree() {
	tr := tree.NewTree()
	e, _ := tr.AddRoot("E")
	c, _, _ := tr.AddChild(e, "C", nil)
	a, _, _ := tr.AddChild(c, "A", nil)
	tr.AddChild(c, "B", nil)
	tr.AddChild(e, "D", nil)

	fmt.Printf("nodes=%d edges=%d root=%v\n", tr.NodeCount(), tr.EdgeCount(), tr.RootNode().Data)

	// Reroot splits the C-A edge with a fresh root node.
	newRoot, _ := tr.Reroot(a.Primary().Edge())
	newRoot.Data = "N"
	fmt.Printf("nodes=%d edges=%d root=%v\n", tr.NodeCount(), tr.EdgeCount(), newRoot.Data)

	// The old root is an ordinary inner node now; A and C hang off the
	// new root, E points the other way.
	fmt.Printf("parent of A: %v\n", a.Primary().Outer().Node().Data)
	fmt.Printf("parent of E: %v\n", e.Primary().Outer().Node().Data)

	// Output:
	// nodes=5 edges=4 root=E
	// nodes=6 edges=5 root=N
	// parent of A: N
	// parent of E: C
}

// ExampleTree_levelorder walks a small tree breadth-first.
func ExampleTree_levelorder() {
	tr := tree.NewTree()
	r, _ := tr.AddRoot("r")
	x, _, _ := tr.AddChild(r, "x", nil)
	tr.AddChild(r, "y", nil)
	tr.AddChild(x, "x1", nil)
	tr.AddChild(x, "x2", nil)

	it := traverse.NewLevelorder(tr.RootLink())
	for it.Next() {
		fmt.Printf("%v:%d ", it.Node().Data, it.Depth())
	}
	fmt.Println()

	// Output:
	// r:0 x:1 y:1 x1:2 x2:2
}
