// Package config binds the CLI process surface (§6) into a validated
// Config: builder/tester/cache selection, the phase schedule, and the
// transformation toggles.
package config

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/aledsdavies/picireny/pierrors"
)

// Config is the fully-resolved process surface.
type Config struct {
	Input    string
	Builder  string // "antlr4", "srcml", or a NullBuilder fixture name
	Grammar  string
	Language string
	Out      string

	Reducer string // reducer class/config selector
	Tester  string // tester class/config selector
	Cache   string // "null" or "disk"

	Phases []string // phase preset names, applied in order
	Star   bool

	FlattenRecursion bool
	SqueezeTree      bool
	SkipUnremovable  bool
	SkipWhitespace   bool
	WithWhitespace   bool

	LogLevel string

	// MinGrammarVersion, if set, is a semver constraint the builder's
	// grammar revision must satisfy (e.g. "1.2.0"); checked against
	// GrammarVersion with Validate.
	MinGrammarVersion string
	GrammarVersion    string
}

// Default returns a Config with the engine's defaults: the "prune" phase
// only, star iteration on, and all four preparatory transformations on
// (the teacher's CLI defaults everything to "on" and lets flags narrow
// scope, not the reverse).
func Default() Config {
	return Config{
		Builder:          "antlr4",
		Out:              "out",
		Reducer:          "hddmin",
		Tester:           "command",
		Cache:            "null",
		Phases:           []string{"prune"},
		Star:             true,
		FlattenRecursion: true,
		SqueezeTree:      true,
		SkipUnremovable:  true,
		SkipWhitespace:   true,
		WithWhitespace:   true,
		LogLevel:         "info",
	}
}

// Validate checks structural requirements that flag parsing alone cannot
// (non-empty input/out paths, at least one phase, a known phase preset
// list, and the grammar minimum-version constraint if one was given).
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return pierrors.New(pierrors.KindInconsistency, "config: input path must not be empty")
	}
	if strings.TrimSpace(c.Out) == "" {
		return pierrors.New(pierrors.KindInconsistency, "config: output directory must not be empty")
	}
	if len(c.Phases) == 0 {
		return pierrors.New(pierrors.KindInconsistency, "config: at least one phase is required")
	}
	for _, p := range c.Phases {
		if _, ok := presetNames[p]; !ok {
			return pierrors.New(pierrors.KindInconsistency, "config: unknown phase preset "+p)
		}
	}
	if c.MinGrammarVersion != "" {
		min := normalizeSemver(c.MinGrammarVersion)
		got := normalizeSemver(c.GrammarVersion)
		if !semver.IsValid(min) {
			return pierrors.New(pierrors.KindInconsistency, "config: min-grammar-version is not valid semver: "+c.MinGrammarVersion)
		}
		if !semver.IsValid(got) {
			return pierrors.New(pierrors.KindInconsistency, "config: builder grammar-version is not valid semver: "+c.GrammarVersion)
		}
		if semver.Compare(got, min) < 0 {
			return pierrors.New(pierrors.KindInconsistency, "config: grammar version "+c.GrammarVersion+" is older than required "+c.MinGrammarVersion)
		}
	}
	return nil
}

func normalizeSemver(v string) string {
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// presetNames mirrors the phase preset names package hdd implements
// (§4.6.4). Kept here, rather than imported from hdd, so this leaf
// package has no dependency on the reduction engine. CLI flag validation
// (cmd/picireny) uses lithammer/fuzzysearch against KnownPhasePresets to
// suggest corrections for a mistyped --phases value.
var presetNames = map[string]bool{
	"prune":              true,
	"coarse-prune":       true,
	"hoist":              true,
	"prune+hoist":        true,
	"coarse-prune+hoist": true,
}

// KnownPhasePresets returns the set of recognized phase preset names.
func KnownPhasePresets() []string {
	names := make([]string, 0, len(presetNames))
	for n := range presetNames {
		names = append(names, n)
	}
	return names
}
