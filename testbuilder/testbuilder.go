// Package testbuilder provides the unparser adapters (§4.3) that are the
// exclusive path for turning a DD configuration into a candidate string.
// Neither builder mutates the tree; both are safe to call concurrently
// from multiple DD workers, since they only read the arena and build a
// fresh string per call (§5 concurrency contract).
package testbuilder

import "github.com/aledsdavies/picireny/tree"

// Func maps a DD configuration to a candidate string.
type Func func(config []tree.NodeID) string

// Pruning returns a test builder whose configuration is a subset C of ids:
// nodes in ids\C are treated as REMOVED for this call only; all other
// nodes (including ones outside ids entirely) keep their real state.
func Pruning(a *tree.Arena, root tree.NodeID, ids []tree.NodeID, withWhitespace bool) Func {
	all := make(map[tree.NodeID]bool, len(ids))
	for _, id := range ids {
		all[id] = true
	}
	return func(config []tree.NodeID) string {
		kept := make(map[tree.NodeID]bool, len(config))
		for _, id := range config {
			kept[id] = true
		}
		isRemoved := func(id tree.NodeID) bool {
			return all[id] && !kept[id]
		}
		return tree.UnparseConfigured(a, root, withWhitespace, isRemoved, nil)
	}
}

// HoistPair is one committed or proposed (original -> substitute) mapping.
// Substitute must be a descendant of Original with the same Name (P9).
type HoistPair struct {
	Original   tree.NodeID
	Substitute tree.NodeID
}

// Hoisting returns a test builder whose configuration is a list of
// (original, substitute) pairs: each original node is rendered as if it
// were its substitute, for this call only.
func Hoisting(a *tree.Arena, root tree.NodeID, withWhitespace bool) func(pairs []HoistPair) string {
	return func(pairs []HoistPair) string {
		mapping := make(map[tree.NodeID]tree.NodeID, len(pairs))
		for _, p := range pairs {
			mapping[p.Original] = p.Substitute
		}
		transform := func(a *tree.Arena, id tree.NodeID) tree.NodeID {
			if sub, ok := mapping[id]; ok {
				return sub
			}
			return id
		}
		return tree.UnparseConfigured(a, root, withWhitespace, nil, transform)
	}
}
