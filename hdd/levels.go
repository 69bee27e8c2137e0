package hdd

import "github.com/aledsdavies/picireny/tree"

// levelNodes collects the KEEP nodes whose depth in the live (KEEP-only)
// tree equals level, root itself at depth 0 (§4.6.1).
func levelNodes(a *tree.Arena, root tree.NodeID, level int) []tree.NodeID {
	var out []tree.NodeID
	var walk func(id tree.NodeID, depth int)
	walk = func(id tree.NodeID, depth int) {
		n := a.Get(id)
		if n.State != tree.Keep {
			return
		}
		if depth == level {
			out = append(out, id)
			return // nodes strictly below level are a different level's concern
		}
		if n.Kind == tree.KindRule {
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
	}
	walk(root, 0)
	return out
}

// applyFilter keeps only the ids a ConfigFilter accepts. A nil filter
// keeps everything.
func applyFilter(a *tree.Arena, f ConfigFilter, ids []tree.NodeID) []tree.NodeID {
	if f == nil {
		return ids
	}
	out := make([]tree.NodeID, 0, len(ids))
	for _, id := range ids {
		if f(a, id) {
			out = append(out, id)
		}
	}
	return out
}
