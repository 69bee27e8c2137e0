package transform

import "github.com/aledsdavies/picireny/tree"

// Options toggles which preparatory transformations Pipeline runs.
type Options struct {
	FlattenRecursion bool
	SqueezeTree      bool
	SkipUnremovable  bool
	SkipWhitespace   bool
	WithWhitespace   bool // passed through to SkipUnremovable's unparse calls
}

// Pipeline runs the requested transformations in the fixed order recursion
// flattening -> squeezing -> skip-unremovable -> skip-whitespace (§4.2),
// returning the (possibly new) root.
func Pipeline(a *tree.Arena, root tree.NodeID, opts Options) tree.NodeID {
	if opts.FlattenRecursion {
		root = FlattenRecursion(a, root)
	}
	if opts.SqueezeTree {
		root = SqueezeTree(a, root)
	}
	if opts.SkipUnremovable {
		root = SkipUnremovable(a, root, opts.WithWhitespace)
	}
	if opts.SkipWhitespace {
		root = SkipWhitespace(a, root)
	}
	return root
}
