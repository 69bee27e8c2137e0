// Package dd defines the delta debugging engine contract the reduction
// operators consume (§6). The core does not implement delta debugging
// itself - only the Engine interface, the empty-configuration reducer
// (§4.4), and SimpleDD, a sequential reference engine sufficient to
// validate P1-P9 without depending on an external DD package.
package dd

import (
	"context"

	"github.com/aledsdavies/picireny/cache"
	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

// Engine reduces config to a 1-minimal failing subset per
// Zeller-Hildebrandt semantics. Repeated calls with the same config and
// test builder must yield the same subset (determinism); the core does
// not care how an Engine parallelizes candidate evaluation internally.
type Engine interface {
	DDMin(ctx context.Context, config []tree.NodeID, n int) ([]tree.NodeID, error)
}

// Factory constructs an Engine bound to a tester, cache, and id prefix,
// mirroring spec §6: "DD engine - constructed by the driver with
// (tester, cache, id_prefix, *engine-cfg)". Reduction operators take a
// Factory rather than a bare Engine because each operator call needs a
// fresh id-prefix scope (§5 deterministic working directories).
type Factory func(t tester.Tester, c cache.Cache, idPrefix string) Engine
