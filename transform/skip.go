package transform

import "github.com/aledsdavies/picireny/tree"

// SkipUnremovable marks REMOVED every node whose own unparse already
// equals its replace string: removing such a node would not change the
// tester's input, so hiding it from the DD configuration shrinks the
// search space for free. Runs bottom-up (post-order) so a child's own
// skip decision is already reflected in its ancestor's unparse.
func SkipUnremovable(a *tree.Arena, root tree.NodeID, withWhitespace bool) tree.NodeID {
	skipUnremovable(a, root, withWhitespace)
	return root
}

func skipUnremovable(a *tree.Arena, id tree.NodeID, withWhitespace bool) {
	n := a.Get(id)
	if n.Kind == tree.KindRule {
		for _, c := range n.Children {
			skipUnremovable(a, c, withWhitespace)
		}
	}
	if n.Replace != nil && tree.Unparse(a, id, withWhitespace, nil) == *n.Replace {
		n.State = tree.Removed
	}
}

// SkipWhitespace marks REMOVED every Token whose source text is entirely
// whitespace, hiding it from the DD configuration (its contribution when
// removed is still its Replace, normally "").
func SkipWhitespace(a *tree.Arena, root tree.NodeID) tree.NodeID {
	skipWhitespace(a, root)
	return root
}

func skipWhitespace(a *tree.Arena, id tree.NodeID) {
	n := a.Get(id)
	if n.Kind == tree.KindToken {
		if n.Text != "" && isWhitespaceOnly(n.Text) {
			n.State = tree.Removed
		}
		return
	}
	for _, c := range n.Children {
		skipWhitespace(a, c)
	}
}

func isWhitespaceOnly(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return true
}
