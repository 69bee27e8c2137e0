package hdd

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/picireny/cache"
	"github.com/aledsdavies/picireny/dd"
	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

func buildFlatList(a *tree.Arena, texts []string) tree.NodeID {
	root := a.NewRule("list")
	pos := tree.Position{Line: 1, Column: 0}
	for _, txt := range texts {
		end := pos.Advance(txt)
		id := a.NewToken("ITEM", txt, pos, end, tree.TokenNormal)
		a.SetReplace(id, "")
		a.AddChild(root, id)
		pos = end
	}
	tree.CalculateBoundaries(a, root)
	return root
}

func TestHDDMinPrunePhaseShrinksToMinimalSubset(t *testing.T) {
	a := tree.NewArena()
	root := buildFlatList(a, []string{"a", "b", "c"})

	oracle := tester.StringOracle{Interesting: func(s string) bool {
		return strings.Contains(s, "b")
	}}

	d := &Driver{
		Arena:          a,
		DDFactory:      dd.NewSimpleDDFactory(),
		Oracle:         oracle,
		Cache:          cache.NullCache{},
		WithWhitespace: false,
		Star:           true,
	}

	phases, err := d.Phases([]string{"prune"})
	require.NoError(t, err)

	newRoot, err := d.HDDMin(context.Background(), root, phases)
	require.NoError(t, err)
	require.Equal(t, "b", tree.Unparse(a, newRoot, false, nil))
}

func TestHDDMinUnknownPhaseErrors(t *testing.T) {
	d := &Driver{}
	_, err := d.Phases([]string{"not-a-phase"})
	require.Error(t, err)
}

// buildNestedExpr mirrors reduce's fixture: block isn't needed here since
// the hoisted node under test is the tree root itself (hddmin's level 0).
func buildNestedExpr(a *tree.Arena) (root, keepTok tree.NodeID) {
	pos := tree.Position{Line: 1, Column: 0}

	padTok := a.NewToken("", "pad", pos, pos.Advance("pad"), tree.TokenNormal)
	a.SetReplace(padTok, "")
	pos = pos.Advance("pad")

	keepTok = a.NewToken("", "keep", pos, pos.Advance("keep"), tree.TokenNormal)
	a.SetReplace(keepTok, "")

	m := a.NewRule("expr")
	a.SetReplace(m, "")
	a.AddChild(m, keepTok)

	root = a.NewRule("expr")
	a.SetReplace(root, "")
	a.AddChildren(root, padTok, m)

	tree.CalculateBoundaries(a, m)
	tree.CalculateBoundaries(a, root)
	return root, keepTok
}

func TestHDDMinHoistPhaseCanRelocateRoot(t *testing.T) {
	a := tree.NewArena()
	root, _ := buildNestedExpr(a)
	require.Equal(t, "padkeep", tree.Unparse(a, root, false, nil))

	oracle := tester.StringOracle{Interesting: func(s string) bool {
		return strings.Contains(s, "keep")
	}}

	d := &Driver{Arena: a, Oracle: oracle, Star: true}
	phases, err := d.Phases([]string{"hoist"})
	require.NoError(t, err)

	newRoot, err := d.HDDMin(context.Background(), root, phases)
	require.NoError(t, err)
	require.Equal(t, "keep", tree.Unparse(a, newRoot, false, nil))
	require.NotEqual(t, root, newRoot)
}

func TestHDDRMinPruneTraversesChildren(t *testing.T) {
	a := tree.NewArena()
	root := buildFlatList(a, []string{"a", "b", "c"})

	oracle := tester.StringOracle{Interesting: func(s string) bool {
		return strings.Contains(s, "b")
	}}

	d := &Driver{
		Arena:          a,
		DDFactory:      dd.NewSimpleDDFactory(),
		Oracle:         oracle,
		Cache:          cache.NullCache{},
		WithWhitespace: false,
		Star:           true,
	}

	phases, err := d.Phases([]string{"prune"})
	require.NoError(t, err)

	newRoot, err := d.HDDRMin(context.Background(), root, phases, BFSForward)
	require.NoError(t, err)
	require.Equal(t, "b", tree.Unparse(a, newRoot, false, nil))
}

func TestCoarseFilterKeepsOnlyEmptyReplaceNodes(t *testing.T) {
	a := tree.NewArena()
	keepable := a.NewToken("T", "x", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(keepable, "")
	required := a.NewToken("T", "y", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(required, "y")

	require.True(t, CoarseFilter(a, keepable))
	require.False(t, CoarseFilter(a, required))
}
