package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/tree"
)

// buildSampleTree constructs ((A,(B,C)D)E,((F,(G,H)I)J,K)L)R and returns
// the tree plus the nodes keyed by name.
func buildSampleTree(t *testing.T, opts ...tree.Option) (*tree.Tree, map[string]*tree.Node) {
	t.Helper()
	tr := tree.NewTree(opts...)
	nodes := make(map[string]*tree.Node)

	root, err := tr.AddRoot("R")
	require.NoError(t, err)
	nodes["R"] = root

	add := func(parent, name string) {
		n, _, err := tr.AddChild(nodes[parent], name, nil)
		require.NoError(t, err)
		nodes[name] = n
	}
	add("R", "E")
	add("E", "A")
	add("E", "D")
	add("D", "B")
	add("D", "C")
	add("R", "L")
	add("L", "J")
	add("J", "F")
	add("J", "I")
	add("I", "G")
	add("I", "H")
	add("L", "K")
	return tr, nodes
}

func TestNewTree_Empty(t *testing.T) {
	tr := tree.NewTree()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.NodeCount())
	assert.Equal(t, 0, tr.EdgeCount())
	assert.Equal(t, 0, tr.LinkCount())
	assert.Nil(t, tr.RootLink())
	assert.Nil(t, tr.RootNode())
	assert.NoError(t, tr.Validate())
}

func TestAddRoot_SingleNode(t *testing.T) {
	tr := tree.NewTree()
	root, err := tr.AddRoot("solo")
	require.NoError(t, err)

	assert.Equal(t, 1, tr.NodeCount())
	assert.Equal(t, 0, tr.EdgeCount())
	assert.Equal(t, 1, tr.LinkCount())
	assert.Same(t, root, tr.RootNode())
	assert.Equal(t, "solo", root.Data)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 1, root.Degree())
	// the lone link closes on itself in both directions
	l := root.Primary()
	assert.Same(t, l, l.Next())
	assert.Same(t, l, l.Outer())
	assert.NoError(t, tr.Validate())

	// a second root is a topology violation
	_, err = tr.AddRoot("again")
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
}

func TestAddChild_Counts(t *testing.T) {
	tr, _ := buildSampleTree(t)

	assert.Equal(t, 13, tr.NodeCount())
	assert.Equal(t, 12, tr.EdgeCount())
	assert.Equal(t, 24, tr.LinkCount())
	assert.NoError(t, tr.Validate())
}

func TestAddChild_Degrees(t *testing.T) {
	tr, nodes := buildSampleTree(t)
	require.NoError(t, tr.Validate())

	assert.Equal(t, 2, nodes["R"].Degree())
	assert.Equal(t, 3, nodes["E"].Degree())
	assert.Equal(t, 3, nodes["D"].Degree())
	assert.Equal(t, 3, nodes["L"].Degree())
	assert.Equal(t, 1, nodes["A"].Degree())
	assert.True(t, nodes["A"].IsLeaf())
	assert.False(t, nodes["D"].IsLeaf())
	assert.True(t, nodes["D"].IsInner())
}

func TestAddChild_Orientation(t *testing.T) {
	tr, nodes := buildSampleTree(t)

	// every non-root node walks to the root through primary links
	for name, n := range nodes {
		if n == tr.RootNode() {
			continue
		}
		steps := 0
		for cur := n; cur != tr.RootNode(); cur = cur.Primary().Outer().Node() {
			steps++
			require.Less(t, steps, tr.NodeCount(), "node %s never reaches the root", name)
		}
	}

	// edge primary side is the one closer to the root
	for i := 0; i < tr.EdgeCount(); i++ {
		e, err := tr.EdgeAt(i)
		require.NoError(t, err)
		assert.Same(t, e.Secondary().Node().Primary(), e.Secondary(),
			"edge %d secondary node must point rootward through the edge", i)
	}
}

func TestAddChild_InvalidParent(t *testing.T) {
	tr, _ := buildSampleTree(t)
	other := tree.NewTree()
	foreign, err := other.AddRoot("X")
	require.NoError(t, err)

	_, _, err = tr.AddChild(foreign, "Y", nil)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
	_, _, err = tr.AddChild(nil, "Y", nil)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
}

func TestAccessors_OutOfRange(t *testing.T) {
	tr, _ := buildSampleTree(t)

	_, err := tr.NodeAt(-1)
	assert.ErrorIs(t, err, tree.ErrOutOfRange)
	_, err = tr.NodeAt(tr.NodeCount())
	assert.ErrorIs(t, err, tree.ErrOutOfRange)
	_, err = tr.EdgeAt(tr.EdgeCount())
	assert.ErrorIs(t, err, tree.ErrOutOfRange)
	_, err = tr.LinkAt(tr.LinkCount())
	assert.ErrorIs(t, err, tree.ErrOutOfRange)

	n, err := tr.NodeAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Index())
}

func TestEpoch_BumpsOnMutation(t *testing.T) {
	tr := tree.NewTree()
	e0 := tr.Epoch()
	_, err := tr.AddRoot("R")
	require.NoError(t, err)
	e1 := tr.Epoch()
	assert.Greater(t, e1, e0)

	_, _, err = tr.AddChild(tr.RootNode(), "C", nil)
	require.NoError(t, err)
	assert.Greater(t, tr.Epoch(), e1)
}

func TestAddNodeOnEdge(t *testing.T) {
	tr, nodes := buildSampleTree(t)
	// split the E–D edge
	edge := nodes["D"].Primary().Edge()
	edge.Data = "branch"

	n, dist, err := tr.AddNodeOnEdge(edge, "mid")
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	assert.Equal(t, 14, tr.NodeCount())
	assert.Equal(t, 13, tr.EdgeCount())
	assert.Equal(t, 26, tr.LinkCount())
	assert.Equal(t, "mid", n.Data)
	assert.Equal(t, 2, n.Degree())
	assert.True(t, n.IsInner())

	// proximal half keeps its payload, distal half starts empty
	assert.Equal(t, "branch", edge.Data)
	assert.Nil(t, dist.Data)

	// the new node sits between E and D
	assert.Same(t, n, edge.SecondaryNode())
	assert.Same(t, n, dist.PrimaryNode())
	assert.Same(t, nodes["D"], dist.SecondaryNode())
	assert.Same(t, nodes["E"], edge.PrimaryNode())
}

func TestAddNodeOnEdge_ForeignEdge(t *testing.T) {
	tr, _ := buildSampleTree(t)
	other, onodes := buildSampleTree(t)
	foreign := onodes["D"].Primary().Edge()
	require.True(t, other.HasEdge(foreign))

	_, _, err := tr.AddNodeOnEdge(foreign, nil)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
	_, _, err = tr.AddNodeOnEdge(nil, nil)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
}

func TestRerootAt(t *testing.T) {
	tr, nodes := buildSampleTree(t)

	before := struct{ n, e, l int }{tr.NodeCount(), tr.EdgeCount(), tr.LinkCount()}
	require.NoError(t, tr.RerootAt(nodes["D"].Primary()))
	require.NoError(t, tr.Validate())

	assert.Same(t, nodes["D"], tr.RootNode())
	assert.Equal(t, before.n, tr.NodeCount())
	assert.Equal(t, before.e, tr.EdgeCount())
	assert.Equal(t, before.l, tr.LinkCount())

	// old root is now an ordinary node reachable from the new root
	steps := 0
	for cur := nodes["R"]; cur != nodes["D"]; cur = cur.Primary().Outer().Node() {
		steps++
		require.Less(t, steps, tr.NodeCount())
	}

	// rerooting at the current root link is a no-op on topology
	require.NoError(t, tr.RerootAt(tr.RootLink()))
	require.NoError(t, tr.Validate())
	assert.Same(t, nodes["D"], tr.RootNode())
}

func TestRerootAt_FlipHook(t *testing.T) {
	var flipped []int
	tr, nodes := buildSampleTree(t, tree.WithOrientationFlipFunc(func(e *tree.Edge) {
		flipped = append(flipped, e.Index())
	}))

	// path D→E→R has two edges; both reverse direction
	require.NoError(t, tr.RerootAt(nodes["D"].Primary()))
	assert.Len(t, flipped, 2)
	require.NoError(t, tr.Validate())
}

func TestReroot_SplitsEdge(t *testing.T) {
	tr, nodes := buildSampleTree(t)
	edge := nodes["D"].Primary().Edge()
	edge.Data = 4.2

	root, err := tr.Reroot(edge)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	assert.Same(t, root, tr.RootNode())
	assert.Equal(t, 14, tr.NodeCount())
	assert.Equal(t, 13, tr.EdgeCount())
	assert.Equal(t, 2, root.Degree())

	// default payload split: proximal half empty, distal keeps the value
	var proximal, distal *tree.Edge
	for l, i := root.Primary(), 0; i < root.Degree(); l, i = l.Next(), i+1 {
		if l.Outer().Node() == nodes["D"] {
			distal = l.Edge()
		} else {
			proximal = l.Edge()
		}
	}
	require.NotNil(t, proximal)
	require.NotNil(t, distal)
	assert.Nil(t, proximal.Data)
	assert.Equal(t, 4.2, distal.Data)
}

func TestReroot_SplitHook(t *testing.T) {
	tr, nodes := buildSampleTree(t, tree.WithEdgeSplitFunc(func(data any) (any, any) {
		v := data.(float64)
		return v * 0.0, v * 1.0
	}))
	edge := nodes["D"].Primary().Edge()
	edge.Data = 7.5

	root, err := tr.Reroot(edge)
	require.NoError(t, err)

	var proximal, distal *tree.Edge
	for l, i := root.Primary(), 0; i < root.Degree(); l, i = l.Next(), i+1 {
		if l.Outer().Node() == nodes["D"] {
			distal = l.Edge()
		} else {
			proximal = l.Edge()
		}
	}
	assert.Equal(t, 0.0, proximal.Data)
	assert.Equal(t, 7.5, distal.Data)
}

func TestClear(t *testing.T) {
	tr, _ := buildSampleTree(t)
	e := tr.Epoch()
	tr.Clear()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.LinkCount())
	assert.Nil(t, tr.RootLink())
	assert.Greater(t, tr.Epoch(), e)
	assert.NoError(t, tr.Validate())
}

func TestHasNode_Identity(t *testing.T) {
	tr, nodes := buildSampleTree(t)
	other, onodes := buildSampleTree(t)

	assert.True(t, tr.HasNode(nodes["A"]))
	assert.False(t, tr.HasNode(onodes["A"]))
	assert.False(t, tr.HasNode(nil))
	assert.True(t, other.HasNode(onodes["A"]))

	assert.NotEqual(t, tr.ID(), other.ID())
}
