package model

import (
	"fmt"
)

// PreOrder visits every clade reachable from the root, parents before
// children and children in listed order. Returning false from visit stops
// the walk.
func (t *Tree) PreOrder(visit func(id NodeID) bool) {
	if t.Root == NoNode {
		return
	}
	stack := []NodeID{t.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(id) {
			return
		}
		kids := t.Nodes[id].Children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

// Find returns every clade matching pred, in pre-order.
func (t *Tree) Find(pred func(c *Clade) bool) []NodeID {
	var found []NodeID
	t.PreOrder(func(id NodeID) bool {
		if pred(&t.Nodes[id]) {
			found = append(found, id)
		}
		return true
	})
	return found
}

// FindByLabel returns the first clade in pre-order carrying label. An empty
// label names no clade, since unlabeled clades carry no label at all.
func (t *Tree) FindByLabel(label string) (NodeID, error) {
	match := NoNode
	if label == "" {
		return NoNode, fmt.Errorf("%w: empty label", ErrNotFound)
	}
	t.PreOrder(func(id NodeID) bool {
		if t.Nodes[id].Label == label {
			match = id
			return false
		}
		return true
	})
	if match == NoNode {
		return NoNode, fmt.Errorf("%w: %q", ErrNotFound, label)
	}
	return match, nil
}

// PathFromRoot returns the clades from the root down to id, inclusive.
func (t *Tree) PathFromRoot(id NodeID) []NodeID {
	var path []NodeID
	for cur := id; cur != NoNode; cur = t.Nodes[cur].Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Leaves returns all leaf clades in pre-order.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	t.PreOrder(func(id NodeID) bool {
		if t.IsLeaf(id) {
			leaves = append(leaves, id)
		}
		return true
	})
	return leaves
}

// LeafLabels returns the labels of all leaves in pre-order.
func (t *Tree) LeafLabels() []string {
	leaves := t.Leaves()
	labels := make([]string, len(leaves))
	for i, id := range leaves {
		labels[i] = t.Nodes[id].Label
	}
	return labels
}

// TotalLength sums every branch length in the tree. The boolean is false
// when no clade has a length at all.
func (t *Tree) TotalLength() (float64, bool) {
	var sum float64
	found := false
	t.PreOrder(func(id NodeID) bool {
		if l := t.Nodes[id].Length; l != nil {
			sum += *l
			found = true
		}
		return true
	})
	return sum, found
}

// Distance returns the summed branch length on the path between a and b.
// Missing lengths count as zero.
func (t *Tree) Distance(a, b NodeID) float64 {
	pa, pb := t.PathFromRoot(a), t.PathFromRoot(b)
	common := 0
	for common < len(pa) && common < len(pb) && pa[common] == pb[common] {
		common++
	}
	var d float64
	for _, id := range pa[common:] {
		d += lengthOrZero(t.Nodes[id].Length)
	}
	for _, id := range pb[common:] {
		d += lengthOrZero(t.Nodes[id].Length)
	}
	return d
}

// Compact returns a copy holding only clades reachable from the root,
// renumbered in pre-order.
func (t *Tree) Compact() *Tree {
	out := New()
	out.Rooted = t.Rooted
	if t.Root == NoNode {
		return out
	}

	type frame struct {
		old, parent NodeID
	}
	stack := []frame{{t.Root, NoNode}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		src := t.Nodes[f.old]
		id := out.AddClade(f.parent, Clade{
			Label:      src.Label,
			Length:     copyFloat(src.Length),
			Confidence: copyFloat(src.Confidence),
		})
		for i := len(src.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{src.Children[i], id})
		}
	}
	return out
}

// Validate checks the arena invariants: one root, parent and child links
// agree, no cycles and no unreachable clades.
func (t *Tree) Validate() error {
	if t.Root == NoNode {
		return fmt.Errorf("tree has no root")
	}
	if !t.valid(t.Root) {
		return fmt.Errorf("root id %d out of range", t.Root)
	}
	if p := t.Nodes[t.Root].Parent; p != NoNode {
		return fmt.Errorf("root %d has parent %d", t.Root, p)
	}

	seen := make([]bool, len(t.Nodes))
	seen[t.Root] = true
	count := 1
	stack := []NodeID{t.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, kid := range t.Nodes[id].Children {
			if !t.valid(kid) {
				return fmt.Errorf("clade %d has out of range child %d", id, kid)
			}
			if seen[kid] {
				return fmt.Errorf("clade %d reached twice (cycle or shared child)", kid)
			}
			if p := t.Nodes[kid].Parent; p != id {
				return fmt.Errorf("clade %d lists child %d whose parent is %d", id, kid, p)
			}
			seen[kid] = true
			count++
			stack = append(stack, kid)
		}
	}
	if count != len(t.Nodes) {
		return fmt.Errorf("%d of %d clades unreachable from root", len(t.Nodes)-count, len(t.Nodes))
	}
	return nil
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.Nodes)
}

func lengthOrZero(l *float64) float64 {
	if l == nil {
		return 0
	}
	return *l
}
