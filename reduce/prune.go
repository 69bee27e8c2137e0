// Package reduce implements the two reduction operators of spec §4.5:
// prune (delta-debug a set of sibling nodes down to a 1-minimal failing
// subset) and hoist (substitute a node with a same-named descendant).
// Both mutate node State/Children in place on the shared Arena, per the
// single-threaded cooperative contract of §5. Prune returns (changed,
// err); Hoist also returns the root going forward, since it may hoist the
// root itself away.
package reduce

import (
	"context"

	"github.com/aledsdavies/picireny/cache"
	"github.com/aledsdavies/picireny/dd"
	"github.com/aledsdavies/picireny/invariant"
	"github.com/aledsdavies/picireny/testbuilder"
	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

// Prune implements §4.5.1: delta-debug configNodes down to a 1-minimal
// failing subset C, then set state := KEEP for ids in C, REMOVED
// otherwise. root is the tree root the candidate is unparsed from; oracle
// backs the tester the DD engine calls.
func Prune(
	ctx context.Context,
	a *tree.Arena,
	root tree.NodeID,
	configNodes []tree.NodeID,
	ddFactory dd.Factory,
	oracle tester.Oracle,
	c cache.Cache,
	idPrefix string,
	withWhitespace bool,
) (bool, error) {
	if len(configNodes) == 0 {
		return false, nil
	}

	build := testbuilder.Pruning(a, root, configNodes, withWhitespace)
	t := tester.NewConfigTester(oracle, build, c)

	if c != nil {
		c.SetTestBuilder(build)
		defer c.Clear()
	}

	engine := ddFactory(t, c, idPrefix)
	result, err := engine.DDMin(ctx, configNodes, 2)
	if err != nil {
		return false, err
	}

	if len(result) == 1 {
		result, err = dd.EmptyReduce(ctx, t, result[0], idPrefix)
		if err != nil {
			return false, err
		}
	}

	kept := make(map[tree.NodeID]bool, len(result))
	for _, id := range result {
		invariant.Invariant(containsID(configNodes, id), "prune: DD result id %d outside given configuration", id)
		kept[id] = true
	}

	for _, id := range configNodes {
		n := a.Get(id)
		if kept[id] {
			n.State = tree.Keep
		} else {
			n.State = tree.Removed
		}
	}

	return len(result) < len(configNodes), nil
}

func containsID(ids []tree.NodeID, target tree.NodeID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
