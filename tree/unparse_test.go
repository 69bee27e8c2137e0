package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildPair builds: obj -> [ "{" pair "}" ] where pair -> [ key ":" val ]
// at positions that require a space between "key" and ":" but nothing
// between "{" and "pair".
func buildPair(a *Arena) NodeID {
	open := a.NewToken("", "{", Position{1, 0}, Position{1, 1}, TokenNormal)
	key := a.NewToken("STRING", "key", Position{1, 1}, Position{1, 4}, TokenNormal)
	colon := a.NewToken("", ":", Position{1, 5}, Position{1, 6}, TokenNormal)
	val := a.NewToken("NUMBER", "1", Position{1, 7}, Position{1, 8}, TokenNormal)
	close_ := a.NewToken("", "}", Position{1, 8}, Position{1, 9}, TokenNormal)

	pair := a.NewRule("pair")
	a.AddChildren(pair, key, colon, val)

	obj := a.NewRule("obj")
	a.AddChildren(obj, open, pair, close_)
	CalculateBoundaries(a, obj)
	return obj
}

func TestUnparseWithWhitespace(t *testing.T) {
	a := NewArena()
	root := buildPair(a)
	got := Unparse(a, root, true, nil)
	require.Equal(t, "{key : 1}", got)
}

func TestUnparseWithoutWhitespace(t *testing.T) {
	a := NewArena()
	root := buildPair(a)
	got := Unparse(a, root, false, nil)
	require.Equal(t, "{key:1}", got)
}

func TestUnparseRemovedNodeYieldsReplace(t *testing.T) {
	a := NewArena()
	root := buildPair(a)
	pair := a.Get(root).Children[1]
	a.SetReplace(pair, "\"\":0")
	a.Get(pair).State = Removed
	got := Unparse(a, root, false, nil)
	require.Equal(t, "{\"\":0}", got)
}

func TestUnparseRuleWithNoKeepChildrenIsEmpty(t *testing.T) {
	a := NewArena()
	root := buildPair(a)
	pairChildren := a.Get(a.Get(root).Children[1]).Children
	for _, c := range pairChildren {
		a.SetReplace(c, "")
		a.Get(c).State = Removed
	}
	got := Unparse(a, root, false, nil)
	require.Equal(t, "{}", got)
}

func TestUnparseTransformSubstitutesNode(t *testing.T) {
	a := NewArena()
	root := buildPair(a)
	pair := a.Get(root).Children[1]
	val := a.Get(pair).Children[2]

	transform := func(a *Arena, id NodeID) NodeID {
		if id == pair {
			return val
		}
		return id
	}
	got := Unparse(a, root, false, transform)
	require.Equal(t, "{1}", got)
}

func TestArenaReplaceWith(t *testing.T) {
	a := NewArena()
	root := buildPair(a)
	pair := a.Get(root).Children[1]
	replacement := a.NewToken("", "X", Position{1, 1}, Position{1, 2}, TokenNormal)
	a.ReplaceWith(pair, replacement)
	require.Equal(t, replacement, a.Get(root).Children[1])
	require.Equal(t, root, a.Get(replacement).Parent)
	require.Equal(t, NoNode, a.Get(pair).Parent)
}
