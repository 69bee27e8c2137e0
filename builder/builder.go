// Package builder defines the external tree-builder contract (§6): it
// turns source bytes into the KEEP tree of package tree, with positions
// and Replace set for every node. This package ships no real grammar
// parser - ANTLR4/srcML builders are external collaborators per spec §1
// non-goals - only the interface, a Registry for selecting an
// implementation by name, and a NullBuilder used to construct small
// fixture trees deterministically for tests and the worked scenarios of
// spec §8.
package builder

import (
	"context"

	"github.com/aledsdavies/picireny/pierrors"
	"github.com/aledsdavies/picireny/tree"
)

// Descriptor names the grammar/language a Builder should parse source
// against, per the CLI's --builder/--grammar/--language flags (§6).
type Descriptor struct {
	Kind     string // "antlr4", "srcml", or a registered test fixture name
	Grammar  string
	Language string
	// MinVersion, if set, is a semver constraint the builder's grammar
	// revision must satisfy; checked by package config before dispatch.
	MinVersion string
}

// Builder produces a tree from source bytes. Builder failure is fatal to
// the run (§6): a partial tree is never consumed.
type Builder interface {
	Build(ctx context.Context, source []byte, d Descriptor) (*tree.Arena, tree.NodeID, error)
}

// Registry resolves a Builder by Descriptor.Kind.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register associates name with b. Re-registering a name overwrites it.
func (r *Registry) Register(name string, b Builder) {
	r.builders[name] = b
}

// Get resolves name, returning a KindBuilderFailure error if unknown.
func (r *Registry) Get(name string) (Builder, error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, pierrors.New(pierrors.KindBuilderFailure, "no builder registered for "+name)
	}
	return b, nil
}
