package reduce

import (
	"context"
	"fmt"

	"github.com/aledsdavies/picireny/testbuilder"
	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

// Hoist implements §4.5.2: iteratively build a mapping original -> same-
// named descendant that shrinks the candidate while the oracle still
// reports FAIL, then apply the committed mapping to the tree. Unlike
// Prune, hoist never drives a dd.Engine - it proposes one substitution at
// a time directly against oracle, restarting the scan on every accepted
// proposal (spec.md §4.5.2: "restart the outer loop for correctness").
// The returned NodeID is the new root: the global root is an eligible
// config node at level 0 of hddmin (§4.6.1), and if it is hoisted away the
// caller must switch to the substitute going forward.
func Hoist(
	ctx context.Context,
	a *tree.Arena,
	root tree.NodeID,
	configNodes []tree.NodeID,
	oracle tester.Oracle,
	idPrefix string,
	withWhitespace bool,
) (tree.NodeID, bool, error) {
	build := testbuilder.Hoisting(a, root, withWhitespace)
	mapping := make(map[tree.NodeID]tree.NodeID)
	counter := 0

	for {
		accepted := false

	scan:
		for _, c := range configNodes {
			base, ok := mapping[c]
			if !ok {
				base = c
			}
			name := a.Get(c).Name
			for _, m := range sameNameDescendants(a, base, name) {
				trial := cloneMapping(mapping)
				trial[c] = m

				candidate := build(mappingToPairs(trial))
				counter++
				id := fmt.Sprintf("%s/%d", idPrefix, counter)
				verdict, err := oracle.Test(ctx, candidate, id)
				if err != nil {
					continue
				}
				if verdict == tester.Fail {
					mapping = trial
					accepted = true
					break scan
				}
			}
		}

		if !accepted {
			break
		}
	}

	if len(mapping) == 0 {
		return root, false, nil
	}

	applyMapping(a, root, mapping)

	newRoot := root
	if target, ok := mapping[root]; ok {
		a.Get(target).Parent = tree.NoNode
		newRoot = target
	}
	return newRoot, true, nil
}

// sameNameDescendants enumerates, in pre-order, descendants of root that
// share name, descending only into KEEP subtrees and stopping descent at
// the first same-name match on each path.
func sameNameDescendants(a *tree.Arena, root tree.NodeID, name string) []tree.NodeID {
	n := a.Get(root)
	if n.Kind != tree.KindRule {
		return nil
	}
	var out []tree.NodeID
	for _, child := range n.Children {
		cn := a.Get(child)
		if cn.State != tree.Keep {
			continue
		}
		if cn.Name == name {
			out = append(out, child)
			continue
		}
		out = append(out, sameNameDescendants(a, child, name)...)
	}
	return out
}

func cloneMapping(m map[tree.NodeID]tree.NodeID) map[tree.NodeID]tree.NodeID {
	out := make(map[tree.NodeID]tree.NodeID, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func mappingToPairs(m map[tree.NodeID]tree.NodeID) []testbuilder.HoistPair {
	pairs := make([]testbuilder.HoistPair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, testbuilder.HoistPair{Original: k, Substitute: v})
	}
	return pairs
}

// applyMapping walks the live tree from root and splices in mapping's
// targets wherever a mapped node appears as a child, per spec.md
// §4.5.2's "for every Rule, replace each child by M.get(child, child)".
func applyMapping(a *tree.Arena, root tree.NodeID, mapping map[tree.NodeID]tree.NodeID) {
	n := a.Get(root)
	if n.Kind != tree.KindRule {
		return
	}
	children := append([]tree.NodeID{}, n.Children...)
	for _, child := range children {
		next := child
		if target, ok := mapping[child]; ok {
			a.ReplaceWith(child, target)
			next = target
		}
		applyMapping(a, next, mapping)
	}
}
