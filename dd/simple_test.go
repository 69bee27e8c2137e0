package dd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

// subsetTester reports FAIL iff want is a subset of config.
type subsetTester struct {
	want map[tree.NodeID]bool
}

func (s subsetTester) Test(_ context.Context, config []tree.NodeID, _ string) (tester.Verdict, error) {
	have := make(map[tree.NodeID]bool, len(config))
	for _, id := range config {
		have[id] = true
	}
	for w := range s.want {
		if !have[w] {
			return tester.Pass, nil
		}
	}
	return tester.Fail, nil
}

func TestSimpleDDFindsMinimalSubset(t *testing.T) {
	ids := []tree.NodeID{1, 2, 3, 4, 5, 6, 7, 8}
	want := map[tree.NodeID]bool{3: true, 6: true}

	eng := &SimpleDD{Tester: subsetTester{want: want}, IDPrefix: "t"}
	got, err := eng.DDMin(context.Background(), ids, 2)
	require.NoError(t, err)

	for w := range want {
		require.Contains(t, got, w)
	}
	// 1-minimal: nothing in got can be removed and still FAIL.
	for _, id := range got {
		if want[id] {
			continue
		}
		t.Fatalf("unexpected id %d retained in minimal result %v", id, got)
	}
}

func TestSimpleDDDeterministic(t *testing.T) {
	ids := []tree.NodeID{1, 2, 3, 4}
	want := map[tree.NodeID]bool{2: true}
	eng1 := &SimpleDD{Tester: subsetTester{want: want}, IDPrefix: "a"}
	eng2 := &SimpleDD{Tester: subsetTester{want: want}, IDPrefix: "b"}

	got1, err := eng1.DDMin(context.Background(), ids, 2)
	require.NoError(t, err)
	got2, err := eng2.DDMin(context.Background(), ids, 2)
	require.NoError(t, err)
	require.Equal(t, got1, got2)
}

func TestEmptyReduceAcceptsEmptyWhenOracleFails(t *testing.T) {
	always := tester.Tester(alwaysFail{})
	got, err := EmptyReduce(context.Background(), always, tree.NodeID(42), "prefix")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEmptyReduceKeepsElementWhenOraclePasses(t *testing.T) {
	always := tester.Tester(alwaysPass{})
	got, err := EmptyReduce(context.Background(), always, tree.NodeID(42), "prefix")
	require.NoError(t, err)
	require.Equal(t, []tree.NodeID{42}, got)
}

type alwaysFail struct{}

func (alwaysFail) Test(context.Context, []tree.NodeID, string) (tester.Verdict, error) {
	return tester.Fail, nil
}

type alwaysPass struct{}

func (alwaysPass) Test(context.Context, []tree.NodeID, string) (tester.Verdict, error) {
	return tester.Pass, nil
}
