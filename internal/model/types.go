/*
PURPOSE:
  Defines the core data structures used throughout reroot.
  A Tree is an arena of Clades addressed by NodeID; edges are stored as
  parent/child indices rather than pointers.

REQUIREMENTS:
  User-specified:
  - Labels are optional; branch lengths are optional and "absent" must be
    distinguishable from zero.
  - Child order is preserved from input.
  - Support values pass through untouched.

  Implementation-discovered:
  - Rerooting reverses edges along a path; index reassignment in an arena
    avoids pointer aliasing and makes cycles easy to detect.
  - Deep or bushy trees must not recurse on the call stack.

ARCHITECTURE INTEGRATION:
  - Used by: internal/newick, internal/engine, internal/cli
  - Shared across boundaries.

ERROR HANDLING:
  - Lookups return ErrNotFound; Validate returns a descriptive error.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Every traversal uses an explicit stack.

USAGE:
  t := model.New()
  root := t.AddClade(model.NoNode, model.Clade{})
  t.AddClade(root, model.Clade{Label: "A", Length: model.Float(1)})

SELF-HEALING INSTRUCTIONS:
  - If a new per-clade annotation is needed, add the field here and update
    the newick reader/writer.

RELATED FILES:
  - internal/model/traverse.go
  - internal/newick/reader.go
  - internal/newick/writer.go

MAINTENANCE:
  - Update when adding new clade annotations.
*/

package model

import (
	"errors"
)

// NodeID addresses a clade inside a Tree's arena.
type NodeID int

// NoNode is the parent of the root and the result of failed lookups.
const NoNode NodeID = -1

// ErrNotFound is returned by lookups that match no clade.
var ErrNotFound = errors.New("clade not found")

// Clade is a single node of a tree.
type Clade struct {
	// The label of this node. If it's empty, then this node does
	// not have a name.
	Label string

	// The branch length between this node and its parent. If it's `nil`,
	// then no distance was given.
	Length *float64

	// Support value, carried through unchanged.
	Confidence *float64

	Parent   NodeID
	Children []NodeID
}

// Tree is a rooted tree of clades.
type Tree struct {
	Nodes  []Clade
	Root   NodeID
	Rooted bool
}

// New returns an empty tree with no root.
func New() *Tree {
	return &Tree{Root: NoNode}
}

// Float returns a pointer to v, for filling optional lengths.
func Float(v float64) *float64 {
	return &v
}

// AddClade appends c to the arena as the last child of parent and returns
// its id. Passing NoNode as parent makes c the root; c.Parent and
// c.Children are overwritten.
func (t *Tree) AddClade(parent NodeID, c Clade) NodeID {
	id := NodeID(len(t.Nodes))
	c.Parent = parent
	c.Children = nil
	t.Nodes = append(t.Nodes, c)
	if parent == NoNode {
		t.Root = id
	} else {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, id)
	}
	return id
}

// Clade returns the clade stored under id.
func (t *Tree) Clade(id NodeID) *Clade {
	return &t.Nodes[id]
}

// Len returns the number of arena slots.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// IsLeaf reports whether id has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	return len(t.Nodes[id].Children) == 0
}

// Clone returns a deep copy that shares no memory with t.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		Nodes:  make([]Clade, len(t.Nodes)),
		Root:   t.Root,
		Rooted: t.Rooted,
	}
	for i, n := range t.Nodes {
		c.Nodes[i] = Clade{
			Label:      n.Label,
			Length:     copyFloat(n.Length),
			Confidence: copyFloat(n.Confidence),
			Parent:     n.Parent,
			Children:   append([]NodeID(nil), n.Children...),
		}
	}
	return c
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
