package workdir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootJoinsBasename(t *testing.T) {
	require.Equal(t, "out/input.json", Root("out", "testdata/input.json"))
}

func TestTestsDir(t *testing.T) {
	require.Equal(t, "out/tests", TestsDir("out"))
}

func TestLevelPrefix(t *testing.T) {
	require.Equal(t, "iter_0/level_2/prune", LevelPrefix(0, 2, "prune"))
}

func TestNodePrefix(t *testing.T) {
	require.Equal(t, "iter_1/node_5/hoist", NodePrefix(1, 5, "hoist"))
}

func TestCandidatePath(t *testing.T) {
	require.Equal(t, "out/tests/iter_0/level_0/prune/1", CandidatePath("out/tests", "iter_0/level_0/prune/1"))
}

func TestPattern(t *testing.T) {
	p := Pattern("out/tests", "input.json")
	require.Equal(t, "out/tests/%s/input.json", p)
}
