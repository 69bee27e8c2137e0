package transform

import "github.com/aledsdavies/picireny/tree"

// RemoveEmptyNodes drops Token children with empty text (typically EOF)
// and recursively removes Rules that end up child-less as a result
// (lambda productions). Applied once by the builder pipeline, before any
// other transformation.
func RemoveEmptyNodes(a *tree.Arena, root tree.NodeID) tree.NodeID {
	removeEmpty(a, root)
	return root
}

// removeEmpty reports whether id itself should be dropped from its
// parent's children.
func removeEmpty(a *tree.Arena, id tree.NodeID) bool {
	n := a.Get(id)
	if n.Kind == tree.KindToken {
		return n.Text == ""
	}
	kept := n.Children[:0:0]
	for _, c := range n.Children {
		if removeEmpty(a, c) {
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept
	return len(kept) == 0
}
