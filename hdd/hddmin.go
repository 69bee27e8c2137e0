package hdd

import (
	"context"
	"log/slog"

	"github.com/aledsdavies/picireny/tree"
	"github.com/aledsdavies/picireny/workdir"
)

// HDDMin implements §4.6.1 (level-based hddmin) composed with §4.6.4
// (phase composition): each phase re-traverses the tree from root, in the
// order given. Returns the (possibly relocated, e.g. by hoist) root.
func (d *Driver) HDDMin(ctx context.Context, root tree.NodeID, phases []Phase) (tree.NodeID, error) {
	for _, phase := range phases {
		var err error
		root, err = d.runLevels(ctx, root, phase)
		if err != nil {
			return root, err
		}
		slog.Info("phase complete",
			"phase", phase.Name,
			"height", tree.Height(d.Arena, root),
			"shape", tree.Shape(d.Arena, root),
			"count", tree.Count(d.Arena, root),
		)
	}
	return root, nil
}

func (d *Driver) runLevels(ctx context.Context, root tree.NodeID, phase Phase) (tree.NodeID, error) {
	for iteration := 0; ; iteration++ {
		changed := false

		for level := 0; ; level++ {
			nodes := levelNodes(d.Arena, root, level)
			if len(nodes) == 0 {
				break // no more levels this iteration
			}

			nodes = applyFilter(d.Arena, phase.ConfigFilter, nodes)
			if len(nodes) == 0 {
				continue // filtered to nothing: skip the oracle, try the next level
			}

			for _, t := range phase.Transformations {
				idPrefix := workdir.LevelPrefix(iteration, level, t.Name)
				newRoot, c, err := t.Run(ctx, root, nodes, idPrefix)
				if err != nil {
					return root, err
				}
				root = newRoot
				if c {
					changed = true
				}
			}
		}

		if !d.Star || !changed {
			return root, nil
		}
	}
}
