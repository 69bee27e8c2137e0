package transform

import "github.com/aledsdavies/picireny/tree"

// SqueezeTree collapses 1-child Rule chains whose replace string is
// identical to their sole child's: while a Rule has exactly one child and
// child.Replace == parent.Replace, the child stands in for the parent in
// the grandparent's children list. Processing is bottom-up, so a chain of
// N such rules collapses in one pass (each level's child is already fully
// squeezed by the time its parent is checked) - P6 idempotence follows
// directly: a second pass finds no more 1-child-equal-replace rules left.
func SqueezeTree(a *tree.Arena, root tree.NodeID) tree.NodeID {
	return squeezeNode(a, root)
}

func squeezeNode(a *tree.Arena, id tree.NodeID) tree.NodeID {
	n := a.Get(id)
	if n.Kind != tree.KindRule {
		return id
	}
	for i, c := range n.Children {
		n.Children[i] = squeezeNode(a, c)
	}
	for _, c := range n.Children {
		a.Get(c).Parent = id
	}
	if len(n.Children) == 1 {
		child := a.Get(n.Children[0])
		if n.Replace != nil && child.Replace != nil && *n.Replace == *child.Replace {
			return n.Children[0]
		}
	}
	return id
}
