package hdd

import "github.com/aledsdavies/picireny/tree"

// CoarseFilter implements §4.6.3: only nodes whose safe replacement is
// empty are considered, making a fast first pass that drops whole
// "optional" subtrees before the full pass.
func CoarseFilter(a *tree.Arena, id tree.NodeID) bool {
	return a.Get(id).ReplaceOrEmpty() == ""
}
