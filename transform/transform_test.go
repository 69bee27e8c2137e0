package transform

import (
	"testing"

	"github.com/aledsdavies/picireny/tree"
	"github.com/stretchr/testify/require"
)

func tok(a *tree.Arena, text string) tree.NodeID {
	id := a.NewToken("", text, tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(id, "")
	return id
}

func TestFlattenRecursionLeftRecursive(t *testing.T) {
	a := tree.NewArena()
	// expr -> expr "+" NUM   (left recursive)
	one := tok(a, "1")
	inner := a.NewRule("expr")
	a.AddChildren(inner, one)

	plus := tok(a, "+")
	num := tok(a, "2")

	outer := a.NewRule("expr")
	a.AddChildren(outer, inner, plus, num)

	root := FlattenRecursion(a, outer)
	got := a.Get(root)
	require.Len(t, got.Children, 2) // lifted inner's single child + synthetic wrapper
	require.Equal(t, one, got.Children[0])
	require.Equal(t, tree.KindRule, a.Get(got.Children[1]).Kind)
	require.Equal(t, []tree.NodeID{plus, num}, a.Get(got.Children[1]).Children)
}

func TestFlattenRecursionDegenerateSingleChild(t *testing.T) {
	a := tree.NewArena()
	leaf := tok(a, "x")
	inner := a.NewRule("expr")
	a.AddChild(inner, leaf)

	outer := a.NewRule("expr")
	a.AddChild(outer, inner)

	root := FlattenRecursion(a, outer)
	require.Equal(t, []tree.NodeID{leaf}, a.Get(root).Children)
}

func TestFlattenRecursionPreservesUnparse(t *testing.T) {
	a := tree.NewArena()
	inner := a.NewRule("expr")
	a.AddChildren(inner, tok(a, "1"))
	outer := a.NewRule("expr")
	a.AddChildren(outer, inner, tok(a, "+"), tok(a, "2"))

	before := tree.Unparse(a, outer, false, nil)
	root := FlattenRecursion(a, outer)
	after := tree.Unparse(a, root, false, nil)
	require.Equal(t, before, after) // P7
}

func TestSqueezeTreeCollapsesChain(t *testing.T) {
	a := tree.NewArena()
	leaf := a.NewToken("NUM", "1", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(leaf, "0")

	mid := a.NewRule("atom")
	a.SetReplace(mid, "0")
	a.AddChild(mid, leaf)

	top := a.NewRule("expr")
	a.SetReplace(top, "0")
	a.AddChild(top, mid)

	root := SqueezeTree(a, top)
	require.Equal(t, leaf, root)
}

func TestSqueezeTreeIdempotent(t *testing.T) {
	a := tree.NewArena()
	leaf := a.NewToken("NUM", "1", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(leaf, "0")
	mid := a.NewRule("atom")
	a.SetReplace(mid, "0")
	a.AddChild(mid, leaf)
	top := a.NewRule("expr")
	a.SetReplace(top, "0")
	a.AddChild(top, mid)

	once := SqueezeTree(a, top)
	twice := SqueezeTree(a, once)
	require.Equal(t, once, twice) // P6
}

func TestSqueezeTreeLeavesDifferingReplace(t *testing.T) {
	a := tree.NewArena()
	leaf := a.NewToken("NUM", "1", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(leaf, "0")
	top := a.NewRule("expr")
	a.SetReplace(top, "()")
	a.AddChild(top, leaf)

	root := SqueezeTree(a, top)
	require.Equal(t, top, root)
}

func TestSkipUnremovableMarksRedundantNode(t *testing.T) {
	a := tree.NewArena()
	leaf := a.NewToken("", "", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(leaf, "")
	root := SkipUnremovable(a, leaf, false)
	require.Equal(t, tree.Removed, a.Get(root).State)
}

func TestSkipWhitespaceMarksWhitespaceTokens(t *testing.T) {
	a := tree.NewArena()
	ws := a.NewToken("WS", "   \n", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(ws, "")
	nonWS := a.NewToken("ID", "x", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	a.SetReplace(nonWS, "a")
	rule := a.NewRule("r")
	a.AddChildren(rule, ws, nonWS)

	root := SkipWhitespace(a, rule)
	require.Equal(t, tree.Removed, a.Get(ws).State)
	require.Equal(t, tree.Keep, a.Get(nonWS).State)
	_ = root
}

func TestRemoveEmptyNodesDropsEmptyTokensAndLambdaRules(t *testing.T) {
	a := tree.NewArena()
	eof := a.NewToken("EOF", "", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	lambda := a.NewRule("lambda")
	a.AddChild(lambda, eof)

	real := a.NewToken("ID", "x", tree.ZeroPosition, tree.ZeroPosition, tree.TokenNormal)
	top := a.NewRule("top")
	a.AddChildren(top, lambda, real)

	root := RemoveEmptyNodes(a, top)
	require.Equal(t, []tree.NodeID{real}, a.Get(root).Children)
}
