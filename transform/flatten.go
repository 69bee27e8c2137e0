// Package transform holds the pure tree rewrites that prepare a built
// tree for reduction: recursion flattening, chain squeezing, and the
// skip-unremovable / skip-whitespace / remove-empty-nodes passes. Every
// function here takes a root NodeID, may mutate the arena in place, and
// returns the (possibly different) root.
package transform

import "github.com/aledsdavies/picireny/tree"

// FlattenRecursion rewrites left/right-recursive Rule structures so a
// later prune can remove the entire recurring block in one pruning
// candidate instead of one level at a time.
//
// For a Rule R with >=2 children: if the first child is also named R,
// its children are lifted in place and the remaining original children
// are wrapped in a synthetic, anonymous Rule; symmetric for the last
// child (checked only when the first-child case did not apply).
// Degenerate case (exactly one child, also named R): that child's
// children are lifted directly, no wrapper needed. Applied recursively,
// pre-order: this rule is rewritten before its (then current) children
// are visited.
func FlattenRecursion(a *tree.Arena, root tree.NodeID) tree.NodeID {
	flattenRule(a, root)
	return root
}

func flattenRule(a *tree.Arena, id tree.NodeID) {
	n := a.Get(id)
	if n.Kind != tree.KindRule {
		return
	}

	switch {
	case len(n.Children) == 1 && a.Get(n.Children[0]).Name == n.Name && n.Name != "":
		inner := a.Get(n.Children[0])
		lifted := append([]tree.NodeID{}, inner.Children...)
		setChildren(a, id, lifted)

	case len(n.Children) >= 2 && n.Name != "":
		first := n.Children[0]
		last := n.Children[len(n.Children)-1]
		switch {
		case a.Get(first).Name == n.Name:
			inner := a.Get(first)
			rest := append([]tree.NodeID{}, n.Children[1:]...)
			synthetic := a.NewRule("")
			a.SetReplace(synthetic, "")
			setChildren(a, synthetic, rest)
			merged := append(append([]tree.NodeID{}, inner.Children...), synthetic)
			setChildren(a, id, merged)

		case a.Get(last).Name == n.Name:
			inner := a.Get(last)
			rest := append([]tree.NodeID{}, n.Children[:len(n.Children)-1]...)
			synthetic := a.NewRule("")
			a.SetReplace(synthetic, "")
			setChildren(a, synthetic, rest)
			merged := append([]tree.NodeID{synthetic}, inner.Children...)
			setChildren(a, id, merged)
		}
	}

	for _, c := range a.Get(id).Children {
		flattenRule(a, c)
	}
}

// setChildren replaces a Rule's child list wholesale and reparents each
// child onto it.
func setChildren(a *tree.Arena, parent tree.NodeID, children []tree.NodeID) {
	a.Get(parent).Children = children
	for _, c := range children {
		a.Get(c).Parent = parent
	}
}
