// Package cache provides the process-wide candidate cache the reduction
// operators hand to the DD engine (§5). The core's own contract with it
// is exactly two calls per operator: SetTestBuilder, so the cache can key
// by the bytes the current builder would produce, and Clear, called once
// an operator finishes because node identities and states change between
// operators.
package cache

import "github.com/aledsdavies/picireny/testbuilder"

// Verdict mirrors tester.Verdict without importing the tester package,
// keeping cache free of a dependency on the oracle machinery it caches
// results for.
type Verdict int

const (
	Fail Verdict = iota
	Pass
)

// Cache is the contract a DD engine implementation may use to avoid
// re-testing an already-seen candidate string.
type Cache interface {
	// SetTestBuilder informs the cache of the current test builder so it
	// can derive candidate bytes for keying.
	SetTestBuilder(b testbuilder.Func)
	// Clear drops all entries; called by each reduction operator when it
	// completes.
	Clear()
	// Get returns a cached verdict for candidate, if any.
	Get(candidate string) (Verdict, bool)
	// Put records a verdict for candidate.
	Put(candidate string, v Verdict)
}

// NullCache performs no caching; it is the default when the CLI is not
// given a --cache flag.
type NullCache struct{}

func (NullCache) SetTestBuilder(testbuilder.Func) {}
func (NullCache) Clear()                          {}
func (NullCache) Get(string) (Verdict, bool)       { return 0, false }
func (NullCache) Put(string, Verdict)              {}

var _ Cache = NullCache{}
