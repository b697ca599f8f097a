package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sample builds ((A:1,B:2)X:3,C:4,(A:5)Y);
func sample() *Tree {
	t := New()
	root := t.AddClade(NoNode, Clade{})
	x := t.AddClade(root, Clade{Label: "X", Length: Float(3)})
	t.AddClade(x, Clade{Label: "A", Length: Float(1)})
	t.AddClade(x, Clade{Label: "B", Length: Float(2)})
	t.AddClade(root, Clade{Label: "C", Length: Float(4)})
	y := t.AddClade(root, Clade{Label: "Y"})
	t.AddClade(y, Clade{Label: "A", Length: Float(5)})
	return t
}

func labels(t *Tree, ids []NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = t.Clade(id).Label
	}
	return out
}

func TestPreOrderAndFind(t *testing.T) {
	t.Parallel()
	tree := sample()

	var order []NodeID
	tree.PreOrder(func(id NodeID) bool {
		order = append(order, id)
		return true
	})
	require.Equal(t, []string{"", "X", "A", "B", "C", "Y", "A"}, labels(tree, order))

	found := tree.Find(func(c *Clade) bool { return c.Length != nil && *c.Length > 2 })
	require.Equal(t, []string{"X", "C", "A"}, labels(tree, found))

	require.Empty(t, tree.Find(func(c *Clade) bool { return c.Label == "Z" }))
}

func TestPreOrderStops(t *testing.T) {
	t.Parallel()
	tree := sample()

	visited := 0
	tree.PreOrder(func(id NodeID) bool {
		visited++
		return tree.Clade(id).Label != "A"
	})
	require.Equal(t, 3, visited)
}

func TestFindByLabel(t *testing.T) {
	t.Parallel()
	tree := sample()

	t.Run("first pre-order match wins", func(t *testing.T) {
		id, err := tree.FindByLabel("A")
		require.NoError(t, err)
		require.Equal(t, 1.0, *tree.Clade(id).Length)
	})

	t.Run("missing label", func(t *testing.T) {
		id, err := tree.FindByLabel("Z")
		require.ErrorIs(t, err, ErrNotFound)
		require.Equal(t, NoNode, id)
	})

	t.Run("empty label matches no unlabeled clade", func(t *testing.T) {
		id, err := tree.FindByLabel("")
		require.ErrorIs(t, err, ErrNotFound)
		require.Equal(t, NoNode, id)
	})
}

func TestPathFromRoot(t *testing.T) {
	t.Parallel()
	tree := sample()

	b, err := tree.FindByLabel("B")
	require.NoError(t, err)
	require.Equal(t, []string{"", "X", "B"}, labels(tree, tree.PathFromRoot(b)))
	require.Equal(t, []NodeID{tree.Root}, tree.PathFromRoot(tree.Root))
}

func TestLeaves(t *testing.T) {
	t.Parallel()
	tree := sample()

	require.Equal(t, []string{"A", "B", "C", "A"}, tree.LeafLabels())
	x, _ := tree.FindByLabel("X")
	require.False(t, tree.IsLeaf(x))
	c, _ := tree.FindByLabel("C")
	require.True(t, tree.IsLeaf(c))
}

func TestTotalLengthAndDistance(t *testing.T) {
	t.Parallel()
	tree := sample()

	sum, ok := tree.TotalLength()
	require.True(t, ok)
	require.InDelta(t, 15.0, sum, 1e-12)

	a, _ := tree.FindByLabel("A")
	b, _ := tree.FindByLabel("B")
	c, _ := tree.FindByLabel("C")
	require.InDelta(t, 3.0, tree.Distance(a, b), 1e-12)
	require.InDelta(t, 8.0, tree.Distance(a, c), 1e-12)
	require.Zero(t, tree.Distance(a, a))

	bare := New()
	root := bare.AddClade(NoNode, Clade{})
	bare.AddClade(root, Clade{Label: "A"})
	_, ok = bare.TotalLength()
	require.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	tree := sample()
	c := tree.Clone()

	*c.Clade(1).Length = 100
	c.Clade(tree.Root).Children = c.Clade(tree.Root).Children[:1]
	c.Clade(2).Label = "changed"

	require.Equal(t, 3.0, *tree.Clade(1).Length)
	require.Len(t, tree.Clade(tree.Root).Children, 3)
	require.Equal(t, "A", tree.Clade(2).Label)
}

func TestCompactDropsUnreachable(t *testing.T) {
	t.Parallel()
	tree := sample()
	root := tree.Clade(tree.Root)
	root.Children = root.Children[:2] // cut off Y

	require.Error(t, tree.Validate())
	c := tree.Compact()
	require.NoError(t, c.Validate())
	require.Equal(t, 5, c.Len())
	require.Equal(t, []string{"A", "B", "C"}, c.LeafLabels())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, sample().Validate())
	require.Error(t, New().Validate())

	t.Run("parent mismatch", func(t *testing.T) {
		tree := sample()
		tree.Clade(2).Parent = tree.Root
		require.ErrorContains(t, tree.Validate(), "whose parent is")
	})

	t.Run("cycle", func(t *testing.T) {
		tree := sample()
		x, _ := tree.FindByLabel("X")
		a, _ := tree.FindByLabel("A")
		tree.Clade(a).Children = []NodeID{x}
		require.Error(t, tree.Validate())
	})

	t.Run("out of range child", func(t *testing.T) {
		tree := sample()
		tree.Clade(tree.Root).Children = append(tree.Clade(tree.Root).Children, 99)
		require.ErrorContains(t, tree.Validate(), "out of range")
	})
}

func TestDeepTreeTraversal(t *testing.T) {
	t.Parallel()

	const depth = 200000
	tree := New()
	cur := tree.AddClade(NoNode, Clade{})
	for i := 0; i < depth; i++ {
		cur = tree.AddClade(cur, Clade{Length: Float(1)})
	}

	require.Len(t, tree.PathFromRoot(cur), depth+1)
	require.Len(t, tree.Leaves(), 1)
	require.NoError(t, tree.Compact().Validate())
	sum, _ := tree.TotalLength()
	require.Equal(t, float64(depth), sum)
}
