package hdd

import (
	"context"
	"log/slog"

	"github.com/aledsdavies/picireny/tree"
	"github.com/aledsdavies/picireny/workdir"
)

// TraversalOrder selects one of the four queue disciplines of §4.6.2.
type TraversalOrder struct {
	PopFirst       bool
	AppendReversed bool
}

var (
	BFSForward  = TraversalOrder{PopFirst: true, AppendReversed: false}
	BFSReversed = TraversalOrder{PopFirst: true, AppendReversed: true}
	DFSForward  = TraversalOrder{PopFirst: false, AppendReversed: true}
	DFSReversed = TraversalOrder{PopFirst: false, AppendReversed: false}
)

// HDDRMin implements §4.6.2 (recursive/queue-based hddrmin) composed with
// §4.6.4 phase composition.
func (d *Driver) HDDRMin(ctx context.Context, root tree.NodeID, phases []Phase, order TraversalOrder) (tree.NodeID, error) {
	for _, phase := range phases {
		var err error
		root, err = d.runQueue(ctx, root, phase, order)
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

func (d *Driver) runQueue(ctx context.Context, root tree.NodeID, phase Phase, order TraversalOrder) (tree.NodeID, error) {
	for iteration := 0; ; iteration++ {
		changed := false
		if err := d.traverseOnce(ctx, &root, phase, order, iteration, &changed); err != nil {
			return root, err
		}
		if !d.Star || !changed {
			return root, nil
		}
	}
}

func (d *Driver) traverseOnce(ctx context.Context, root *tree.NodeID, phase Phase, order TraversalOrder, iteration int, changed *bool) error {
	queue := []tree.NodeID{*root}
	visited := 0

	for len(queue) > 0 {
		var id tree.NodeID
		if order.PopFirst {
			id = queue[0]
			queue = queue[1:]
		} else {
			id = queue[len(queue)-1]
			queue = queue[:len(queue)-1]
		}

		n := d.Arena.Get(id)
		if n.State != tree.Keep || n.Kind != tree.KindRule {
			continue
		}

		keepChildren := make([]tree.NodeID, 0, len(n.Children))
		for _, c := range n.Children {
			if d.Arena.Get(c).State == tree.Keep {
				keepChildren = append(keepChildren, c)
			}
		}

		configNodes := applyFilter(d.Arena, phase.ConfigFilter, keepChildren)
		if len(configNodes) > 0 {
			for _, t := range phase.Transformations {
				idPrefix := workdir.NodePrefix(iteration, visited, t.Name)
				newRoot, c, err := t.Run(ctx, *root, configNodes, idPrefix)
				if err != nil {
					return err
				}
				*root = newRoot
				if c {
					*changed = true
				}
			}
		}
		visited++

		// Re-read live children: a transformation may have pruned some away.
		live := make([]tree.NodeID, 0, len(n.Children))
		for _, c := range n.Children {
			if d.Arena.Get(c).State == tree.Keep {
				live = append(live, c)
			}
		}
		if order.AppendReversed {
			for i := len(live) - 1; i >= 0; i-- {
				queue = append(queue, live[i])
			}
		} else {
			queue = append(queue, live...)
		}
	}
	return nil
}
