package tester

import (
	"context"

	"github.com/aledsdavies/picireny/cache"
	"github.com/aledsdavies/picireny/testbuilder"
	"github.com/aledsdavies/picireny/tree"
)

// Tester is the config-shaped contract a dd.Engine calls (§6): it builds
// a candidate string for a configuration and hands it to an Oracle.
type Tester interface {
	Test(ctx context.Context, config []tree.NodeID, id string) (Verdict, error)
}

// ConfigTester composes an Oracle with a testbuilder.Func, per spec §6's
// "constructed by the driver with test_builder, test_pattern, ...". Cache
// is consulted by candidate bytes before the oracle runs, and populated
// after - the one place candidate text is known, so this is the one place
// that can key a cache by it (§5 process-wide cache).
type ConfigTester struct {
	Oracle Oracle
	Build  testbuilder.Func
	Cache  cache.Cache
}

// NewConfigTester returns a Tester that builds each candidate with build
// before handing it to oracle.
func NewConfigTester(oracle Oracle, build testbuilder.Func, c cache.Cache) *ConfigTester {
	return &ConfigTester{Oracle: oracle, Build: build, Cache: c}
}

// Test implements Tester.
func (t *ConfigTester) Test(ctx context.Context, config []tree.NodeID, id string) (Verdict, error) {
	candidate := t.Build(config)

	if t.Cache != nil {
		if v, ok := t.Cache.Get(candidate); ok {
			return toVerdict(v), nil
		}
	}

	v, err := t.Oracle.Test(ctx, candidate, id)
	if err != nil {
		return v, err
	}
	if t.Cache != nil {
		t.Cache.Put(candidate, toCacheVerdict(v))
	}
	return v, nil
}

func toCacheVerdict(v Verdict) cache.Verdict {
	if v == Fail {
		return cache.Fail
	}
	return cache.Pass
}

func toVerdict(v cache.Verdict) Verdict {
	if v == cache.Fail {
		return Fail
	}
	return Pass
}
