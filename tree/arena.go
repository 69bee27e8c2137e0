package tree

import (
	"sync/atomic"

	"github.com/aledsdavies/picireny/invariant"
)

// idCounter generates process-wide unique NodeIDs (spec invariant I5).
var idCounter int64

func nextID() NodeID {
	return NodeID(atomic.AddInt64(&idCounter, 1))
}

// Arena owns a set of nodes. Parent/child links are NodeIDs, not pointers
// (Design Notes §9): replace_with becomes an id swap in the parent's child
// slice instead of juggling owning references.
type Arena struct {
	nodes map[NodeID]*Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{nodes: make(map[NodeID]*Node)}
}

// Get returns the node for id. Panics if id is unknown - a programmer
// error, never a user-facing one.
func (a *Arena) Get(id NodeID) *Node {
	n, ok := a.nodes[id]
	invariant.Precondition(ok, "unknown node id %d", id)
	return n
}

// Has reports whether id refers to a live node in this arena.
func (a *Arena) Has(id NodeID) bool {
	_, ok := a.nodes[id]
	return ok
}

// NewToken allocates a Token node with a fresh id and registers it.
func (a *Arena) NewToken(name, text string, start, end Position, kind TokenKind) NodeID {
	id := nextID()
	a.nodes[id] = &Node{
		id:        id,
		Kind:      KindToken,
		Name:      name,
		Text:      text,
		Start:     start,
		End:       end,
		Parent:    NoNode,
		TokenKind: kind,
	}
	return id
}

// NewRule allocates a childless Rule node with a fresh id and registers it.
func (a *Arena) NewRule(name string) NodeID {
	id := nextID()
	a.nodes[id] = &Node{
		id:     id,
		Kind:   KindRule,
		Name:   name,
		Parent: NoNode,
	}
	return id
}

// SetReplace sets the node's minimal substitute string (spec invariant I1;
// minimality itself is the external analyzer's job, not this arena's).
func (a *Arena) SetReplace(id NodeID, replace string) {
	a.Get(id).Replace = &replace
}

// AddChild appends child to parent's children and sets child's Parent.
func (a *Arena) AddChild(parent, child NodeID) {
	p := a.Get(parent)
	invariant.Precondition(p.Kind == KindRule, "AddChild: parent %d is not a Rule", parent)
	p.Children = append(p.Children, child)
	a.Get(child).Parent = parent
}

// AddChildren appends children in order.
func (a *Arena) AddChildren(parent NodeID, children ...NodeID) {
	for _, c := range children {
		a.AddChild(parent, c)
	}
}

// RemoveChild removes child from parent's children list, if present.
func (a *Arena) RemoveChild(parent, child NodeID) {
	p := a.Get(parent)
	for i, c := range p.Children {
		if c == child {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			return
		}
	}
}

// ReplaceWith splices new into old's parent at old's index, which it
// finds by a linear scan of the parent's children; it does nothing if old
// has no parent. new.Parent becomes old.Parent. old itself is
// left registered in the arena (unparsing of removed subtrees still needs
// Replace per invariant I4) but is detached from the tree.
func (a *Arena) ReplaceWith(oldID, newID NodeID) {
	old := a.Get(oldID)
	if old.Parent == NoNode {
		return
	}
	parent := a.Get(old.Parent)
	for i, c := range parent.Children {
		if c == oldID {
			parent.Children[i] = newID
			break
		}
	}
	a.Get(newID).Parent = old.Parent
	old.Parent = NoNode
}
