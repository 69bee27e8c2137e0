package builder

import (
	"context"

	"github.com/aledsdavies/picireny/pierrors"
	"github.com/aledsdavies/picireny/tree"
)

// FixtureFunc constructs a ready-to-reduce tree directly, bypassing an
// actual parser. Used by NullBuilder.
type FixtureFunc func(ctx context.Context, source []byte) (*tree.Arena, tree.NodeID, error)

// NullBuilder dispatches to a registered FixtureFunc by
// Descriptor.Language, for tests and the worked end-to-end scenarios of
// spec §8 where hand-building the (tiny) fixture tree is simpler and more
// deterministic than wiring an actual grammar.
type NullBuilder struct {
	Fixtures map[string]FixtureFunc
}

// NewNullBuilder returns an empty NullBuilder.
func NewNullBuilder() *NullBuilder {
	return &NullBuilder{Fixtures: make(map[string]FixtureFunc)}
}

// Register associates a FixtureFunc with a Descriptor.Language value.
func (b *NullBuilder) Register(language string, f FixtureFunc) {
	b.Fixtures[language] = f
}

// Build implements Builder.
func (b *NullBuilder) Build(ctx context.Context, source []byte, d Descriptor) (*tree.Arena, tree.NodeID, error) {
	f, ok := b.Fixtures[d.Language]
	if !ok {
		return nil, tree.NoNode, pierrors.New(pierrors.KindBuilderFailure, "nullbuilder: no fixture registered for language "+d.Language)
	}
	a, root, err := f(ctx, source)
	if err != nil {
		return nil, tree.NoNode, pierrors.Wrap(pierrors.KindBuilderFailure, "nullbuilder: fixture failed", err)
	}
	return a, root, nil
}

var _ Builder = (*NullBuilder)(nil)
