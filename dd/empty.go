package dd

import (
	"context"
	"log/slog"

	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

// EmptyReduce is the empty-configuration reducer (§4.4): standard DD by
// bisection never tries the empty set when a configuration has exactly
// one element, so this tests it once directly. An oracle error is folded
// into PASS per §7 propagation policy, which keeps the one-element
// configuration (P8).
func EmptyReduce(ctx context.Context, t tester.Tester, one tree.NodeID, idPrefix string) ([]tree.NodeID, error) {
	verdict, err := t.Test(ctx, []tree.NodeID{}, idPrefix+"/empty")
	if err != nil {
		slog.Warn("oracle error on empty candidate, treating as PASS", "id", idPrefix+"/empty", "error", err)
		return []tree.NodeID{one}, nil
	}
	if verdict != tester.Fail {
		return []tree.NodeID{one}, nil
	}
	return []tree.NodeID{}, nil
}
