package tree

import "strings"

// Transform maps a node to a stand-in node used for a single Unparse call
// only; the arena itself is never mutated by it. Hoisting uses this to map
// an original node to a same-named descendant (§4.5.2).
type Transform func(a *Arena, id NodeID) NodeID

// IsRemoved overrides a node's effective State for a single Unparse call
// only, without mutating the arena. Pruning's test builder uses this to
// try a candidate configuration (§4.3) - a node for which it returns true
// is treated as REMOVED (contributing Replace) regardless of its actual
// State.
type IsRemoved func(id NodeID) bool

// Unparse synthesizes the text a tree renders to. It never mutates the
// arena and never fails: a malformed tree still produces a string
// consistent with node state.
func Unparse(a *Arena, root NodeID, withWhitespace bool, transform Transform) string {
	text, _, _, _ := unparseNode(a, root, withWhitespace, transform, nil)
	return text
}

// UnparseConfigured is Unparse generalized with an IsRemoved override,
// used by the pruning test builder to evaluate a candidate configuration
// without mutating any node's real State.
func UnparseConfigured(a *Arena, root NodeID, withWhitespace bool, removed IsRemoved, transform Transform) string {
	text, _, _, _ := unparseNode(a, root, withWhitespace, transform, removed)
	return text
}

type contribution struct {
	text       string
	start, end Position
	empty      bool
}

func unparseNode(a *Arena, id NodeID, withWhitespace bool, transform Transform, removed IsRemoved) (text string, start, end Position, empty bool) {
	eff := id
	if transform != nil {
		eff = transform(a, id)
	}
	n := a.Get(eff)

	effRemoved := n.State != Keep
	if removed != nil && removed(eff) {
		effRemoved = true
	}

	if effRemoved {
		r := n.ReplaceOrEmpty()
		return r, n.Start, n.End, r == ""
	}
	if n.Kind == KindToken {
		return n.Text, n.Start, n.End, n.Text == ""
	}

	// Rule, Keep: gather child contributions first to decide whether any
	// child is effectively KEEP (an all-removed Rule yields "" rather than
	// the concatenation of its children's replace strings).
	contribs := make([]contribution, 0, len(n.Children))
	anyKeep := false
	for _, childID := range n.Children {
		ct, cs, ce, cempty := unparseNode(a, childID, withWhitespace, transform, removed)
		effChild := childID
		if transform != nil {
			effChild = transform(a, childID)
		}
		childRemoved := a.Get(effChild).State != Keep
		if removed != nil && removed(effChild) {
			childRemoved = true
		}
		if !childRemoved {
			anyKeep = true
		}
		contribs = append(contribs, contribution{ct, cs, ce, cempty})
	}
	if !anyKeep {
		return "", n.Start, n.End, true
	}

	var b strings.Builder
	var prev *contribution
	for i := range contribs {
		c := &contribs[i]
		if c.empty {
			continue
		}
		if prev != nil && withWhitespace {
			switch {
			case c.start.Line > prev.end.Line:
				b.WriteByte('\n')
			case c.start.Column > prev.end.Column:
				b.WriteByte(' ')
			}
		}
		b.WriteString(c.text)
		prev = c
	}
	return b.String(), n.Start, n.End, b.Len() == 0
}
