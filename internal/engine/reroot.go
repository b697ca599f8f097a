/*
PURPOSE:
  Reroots a tree on an outgroup clade.
  The new root sits on the outgroup's former parent edge, splitting its
  length evenly between the two new root edges.

REQUIREMENTS:
  User-specified:
  - Locate the outgroup by label (first pre-order match).
  - Preserve every leaf and every pairwise path length.
  - Report a missing outgroup, and an outgroup that is already the root.

  Implementation-discovered:
  - The old root usually ends up with a single child and has to be merged
    into it ("knuckle" collapse).
  - Callers keep the parsed tree around (tests, reports), so the input is
    never modified.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: internal/model, internal/errors

ERROR HANDLING:
  - Returns *errors.OutgroupNotFoundError or *errors.InvalidOutgroupError.
  - No partial result is ever returned.

IMPLEMENTATION RULES:
  - Work on a clone; return a compacted tree.
  - Only clades on the root-to-outgroup path are touched.

USAGE:
  rerooted, err := engine.Reroot(tree, "C")

SELF-HEALING INSTRUCTIONS:
  - If lengths drift, check that original path lengths are captured before
    any edge is reversed.

RELATED FILES:
  - internal/model/traverse.go
  - internal/engine/reroot_test.go

MAINTENANCE:
  - Update if a different root placement (e.g. midpoint) is added.
*/

package engine

import (
	rerr "github.com/daryltucker/reroot/internal/errors"
	"github.com/daryltucker/reroot/internal/model"
)

// Reroot returns a new tree whose root has two children: the first clade
// labeled outgroup, and the rest of the tree. t is left unchanged.
func Reroot(t *model.Tree, outgroup string) (*model.Tree, error) {
	o, err := t.FindByLabel(outgroup)
	if err != nil {
		return nil, rerr.NewOutgroupNotFoundError(outgroup)
	}
	path := t.PathFromRoot(o)
	if len(path) == 1 {
		return nil, rerr.NewInvalidOutgroupError(outgroup)
	}

	w := t.Clone()
	k := len(path) - 1
	p := path[k-1]

	// Edge lengths along the path, read before any edge is flipped.
	lengths := make([]*float64, len(path))
	for i, id := range path {
		lengths[i] = w.Clade(id).Length
	}
	half := halve(lengths[k])

	detach(w, p, o)

	// Flip every edge above P. Each former ancestor becomes the last child
	// of the clade below it and takes over that clade's old edge length.
	for i := k - 1; i > 0; i-- {
		below, above := path[i], path[i-1]
		detach(w, above, below)
		w.Clade(above).Length = lengths[i]
		w.Clade(above).Parent = below
		w.Clade(below).Children = append(w.Clade(below).Children, above)
	}

	root := w.AddClade(model.NoNode, model.Clade{Length: lengths[0]})
	w.Clade(root).Children = []model.NodeID{o, p}
	w.Clade(o).Parent = root
	w.Clade(o).Length = half
	w.Clade(p).Parent = root
	w.Clade(p).Length = copyLength(half)

	// The old root comes first so that a chain of knuckles folds upward
	// toward P in one pass.
	for i := 0; i < k; i++ {
		collapse(w, path[i])
	}

	out := w.Compact()
	out.Rooted = true
	return out, nil
}

// detach removes child from parent's child list, keeping order.
func detach(t *model.Tree, parent, child model.NodeID) {
	kids := t.Clade(parent).Children
	for i, id := range kids {
		if id == child {
			t.Clade(parent).Children = append(kids[:i:i], kids[i+1:]...)
			return
		}
	}
}

// collapse merges id into its only child, or drops it when the reversal
// left it with no children at all.
func collapse(t *model.Tree, id model.NodeID) {
	c := t.Clade(id)
	parent := c.Parent
	switch len(c.Children) {
	case 0:
		// Only an input root with a single child gets here. Its edge goes
		// with it, so total length drops by that edge, and for (C:1); the
		// new root is left with C alone. Leaf-to-leaf distances are kept.
		detach(t, parent, id)
		c.Parent = model.NoNode
	case 1:
		kid := c.Children[0]
		t.Clade(kid).Length = addLengths(c.Length, t.Clade(kid).Length)
		t.Clade(kid).Parent = parent
		siblings := t.Clade(parent).Children
		for i, sib := range siblings {
			if sib == id {
				siblings[i] = kid
				break
			}
		}
		c.Children = nil
		c.Parent = model.NoNode
	}
}

// halve splits an edge length; an absent length stays absent.
func halve(l *float64) *float64 {
	if l == nil {
		return nil
	}
	return model.Float(*l / 2)
}

// addLengths joins two adjoining edges. Absent only when both are.
func addLengths(a, b *float64) *float64 {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return copyLength(b)
	case b == nil:
		return copyLength(a)
	}
	return model.Float(*a + *b)
}

func copyLength(l *float64) *float64 {
	if l == nil {
		return nil
	}
	return model.Float(*l)
}
