package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aledsdavies/picireny/builder"
	"github.com/aledsdavies/picireny/cache"
	"github.com/aledsdavies/picireny/config"
	"github.com/aledsdavies/picireny/dd"
	"github.com/aledsdavies/picireny/hdd"
	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/transform"
	"github.com/aledsdavies/picireny/tree"
	"github.com/aledsdavies/picireny/workdir"
)

// newBuilderRegistry wires the Builder implementations this binary ships
// with. antlr4/srcml are external collaborators (spec.md §1 non-goals):
// a deployment that needs them registers its own Builder under those
// names before calling runReduce; "null" exists so --builder null can
// drive a NullBuilder-backed smoke test without a real grammar.
func newBuilderRegistry() *builder.Registry {
	r := builder.NewRegistry()
	r.Register("null", builder.NewNullBuilder())
	return r
}

// runReduce is the "reduce" subcommand's body: build, prepare, reduce,
// write - mirroring the teacher's cli package's command-to-pipeline
// split. testCmd is the external tester command and arguments given
// after "--" on the command line.
func runReduce(ctx context.Context, cfg config.Config, testCmd []string) error {
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}
	configureLogging(cfg.LogLevel)

	reg := newBuilderRegistry()
	b, err := reg.Get(cfg.Builder)
	if err != nil {
		return builderError(err)
	}

	source, err := os.ReadFile(cfg.Input)
	if err != nil {
		return builderError(fmt.Errorf("reading input %s: %w", cfg.Input, err))
	}

	a, root, err := b.Build(ctx, source, builder.Descriptor{
		Kind:       cfg.Builder,
		Grammar:    cfg.Grammar,
		Language:   cfg.Language,
		MinVersion: cfg.MinGrammarVersion,
	})
	if err != nil {
		return builderError(err)
	}

	logTree(slog.Default(), "initial tree", a, root)

	root = transform.Pipeline(a, root, transform.Options{
		FlattenRecursion: cfg.FlattenRecursion,
		SqueezeTree:      cfg.SqueezeTree,
		SkipUnremovable:  cfg.SkipUnremovable,
		SkipWhitespace:   cfg.SkipWhitespace,
		WithWhitespace:   cfg.WithWhitespace,
	})
	logTree(slog.Default(), "tree after preparatory transforms", a, root)

	oracle, err := newOracle(cfg, testCmd)
	if err != nil {
		return usageError(err)
	}

	c, err := newCache(cfg)
	if err != nil {
		return usageError(err)
	}

	driver := &hdd.Driver{
		Arena:          a,
		DDFactory:      dd.NewSimpleDDFactory(),
		Oracle:         oracle,
		Cache:          c,
		WithWhitespace: cfg.WithWhitespace,
		Star:           cfg.Star,
	}

	phases, err := driver.Phases(cfg.Phases)
	if err != nil {
		return usageError(err)
	}

	switch cfg.Reducer {
	case "hddmin", "":
		root, err = driver.HDDMin(ctx, root, phases)
	case "hddrmin":
		root, err = driver.HDDRMin(ctx, root, phases, hdd.BFSForward)
	default:
		return usageError(fmt.Errorf("unknown --reducer %q (want hddmin or hddrmin)", cfg.Reducer))
	}
	if err != nil {
		return oracleError(err)
	}

	logTree(slog.Default(), "final tree", a, root)

	outPath := workdir.Root(cfg.Out, cfg.Input)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return oracleError(fmt.Errorf("creating output directory: %w", err))
	}
	reduced := tree.Unparse(a, root, cfg.WithWhitespace, nil)
	if err := os.WriteFile(outPath, []byte(reduced), 0o644); err != nil {
		return oracleError(fmt.Errorf("writing reduced output: %w", err))
	}

	slog.Info("reduction complete", "output", outPath, "bytes", len(reduced))
	return nil
}

// newOracle builds the Oracle cfg.Tester selects. "command" is the only
// tester this binary wires to an external process; testCmd is the
// argv given after "--" on the command line, with "%s" in an argument
// substituted with the rendered candidate path (tester.CommandOracle).
func newOracle(cfg config.Config, testCmd []string) (tester.Oracle, error) {
	switch cfg.Tester {
	case "command", "":
		if len(testCmd) == 0 {
			return nil, fmt.Errorf("--tester command requires a test command after \"--\"")
		}
		pattern := workdir.Pattern(workdir.TestsDir(cfg.Out), filepath.Base(cfg.Input))
		return tester.CommandOracle{
			Pattern: pattern,
			Command: testCmd[0],
			Args:    testCmd[1:],
		}, nil
	default:
		return nil, fmt.Errorf("unknown --tester %q (want command)", cfg.Tester)
	}
}

func newCache(cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache {
	case "null", "":
		return cache.NullCache{}, nil
	case "disk":
		return cache.NewDiskCache(filepath.Join(cfg.Out, "cache")), nil
	default:
		return nil, fmt.Errorf("unknown --cache %q (want null or disk)", cfg.Cache)
	}
}

func logTree(logger *slog.Logger, title string, a *tree.Arena, root tree.NodeID) {
	logger.Debug(title,
		"height", tree.Height(a, root),
		"shape", tree.Shape(a, root),
		"count", tree.Count(a, root),
	)
}

// configureLogging installs a slog text handler at the requested level,
// mirroring the teacher's lexer/parser logger construction: one handler
// per run, level driven entirely by a flag.
func configureLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
