// Package hdd implements the two HDD drivers of spec §4.6: the
// level-based hddmin and the recursive hddrmin, both parameterized over
// a phase list and both sharing the same star-iteration termination rule.
// Neither driver implements delta debugging or oracle logic itself - both
// drive package reduce's Prune/Hoist operators over the live tree.
package hdd

import (
	"context"

	"github.com/aledsdavies/picireny/cache"
	"github.com/aledsdavies/picireny/dd"
	"github.com/aledsdavies/picireny/reduce"
	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

// Transformation is one step of a phase's transformation sequence (§4.6.4):
// prune or hoist, applied to a configuration of KEEP node ids collected by
// the driver. Run takes the current root explicitly and returns the root
// going forward, since hoist may substitute the root itself away when
// root is a config node (hddmin's level 0). Name labels the op segment of
// the deterministic working directory path (§5:
// "iter_N/level_L/op/id...") this call's candidates are written under.
type Transformation struct {
	Name string
	Run  func(ctx context.Context, root tree.NodeID, configNodes []tree.NodeID, idPrefix string) (tree.NodeID, bool, error)
}

// ConfigFilter drops nodes a phase should not consider, keeping those for
// which it returns true (§4.6.1: "Apply the optional config_filter").
type ConfigFilter func(a *tree.Arena, id tree.NodeID) bool

// Phase is a phase configuration (§4.6.4): an ordered transformation
// sequence plus an optional config filter, re-traversing from the root.
type Phase struct {
	Name            string
	Transformations []Transformation
	ConfigFilter    ConfigFilter
}

// Driver bundles the collaborators every phase's transformations need:
// the arena, the DD engine factory and oracle Prune uses, the oracle
// Hoist drives directly, the shared cache, and the whitespace policy
// passed through to unparsing.
type Driver struct {
	Arena          *tree.Arena
	DDFactory      dd.Factory
	Oracle         tester.Oracle
	Cache          cache.Cache
	WithWhitespace bool
	Star           bool
}

// PruneTransformation returns a Transformation bound to d's collaborators,
// implementing §4.5.1. Pruning never relocates the root.
func (d *Driver) PruneTransformation() Transformation {
	return Transformation{
		Name: "prune",
		Run: func(ctx context.Context, root tree.NodeID, configNodes []tree.NodeID, idPrefix string) (tree.NodeID, bool, error) {
			changed, err := reduce.Prune(ctx, d.Arena, root, configNodes, d.DDFactory, d.Oracle, d.Cache, idPrefix, d.WithWhitespace)
			return root, changed, err
		},
	}
}

// HoistTransformation returns a Transformation bound to d's collaborators,
// implementing §4.5.2.
func (d *Driver) HoistTransformation() Transformation {
	return Transformation{
		Name: "hoist",
		Run: func(ctx context.Context, root tree.NodeID, configNodes []tree.NodeID, idPrefix string) (tree.NodeID, bool, error) {
			return reduce.Hoist(ctx, d.Arena, root, configNodes, d.Oracle, idPrefix, d.WithWhitespace)
		},
	}
}

// Phases builds the transformation sequences for the named presets
// (§4.6.4).
func (d *Driver) Phases(names []string) ([]Phase, error) {
	phases := make([]Phase, 0, len(names))
	for _, name := range names {
		p, err := d.phase(name)
		if err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}
	return phases, nil
}

func (d *Driver) phase(name string) (Phase, error) {
	switch name {
	case "prune":
		return Phase{Name: name, Transformations: []Transformation{d.PruneTransformation()}}, nil
	case "coarse-prune":
		return Phase{Name: name, Transformations: []Transformation{d.PruneTransformation()}, ConfigFilter: CoarseFilter}, nil
	case "hoist":
		return Phase{Name: name, Transformations: []Transformation{d.HoistTransformation()}}, nil
	case "prune+hoist":
		return Phase{Name: name, Transformations: []Transformation{d.PruneTransformation(), d.HoistTransformation()}}, nil
	case "coarse-prune+hoist":
		return Phase{
			Name:            name,
			Transformations: []Transformation{d.PruneTransformation(), d.HoistTransformation()},
			ConfigFilter:    CoarseFilter,
		}, nil
	default:
		return Phase{}, unknownPhaseError(name)
	}
}
