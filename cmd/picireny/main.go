// Command picireny reduces a tree-shaped test case that triggers some
// interesting behavior to a 1-minimal subtree, by driving an external
// oracle command against candidates produced by hierarchical delta
// debugging (spec.md §6).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/picireny/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:           "picireny",
		Short:         "Hierarchical Delta Debugging test-case reducer",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "Reduce an input file against an external test command",
		RunE: func(cmd *cobra.Command, args []string) error {
			testCmd, err := trailingCommand(cmd)
			if err != nil {
				return usageError(err)
			}
			if err := validatePhases(cfg.Phases); err != nil {
				return usageError(err)
			}
			ctx, cancel := newCancellableContext()
			defer cancel()
			return runReduce(ctx, cfg, testCmd)
		},
	}
	bindFlags(reduceCmd, &cfg)
	rootCmd.AddCommand(reduceCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "phases",
		Short: "List the known phase preset names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.KnownPhasePresets() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "picireny:", err)
		return exitCodeFor(err)
	}
	return exitSuccess
}

// bindFlags wires cfg's fields to the reduce subcommand's flags, per the
// process surface of spec.md §6.
func bindFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	f.StringVarP(&cfg.Input, "input", "i", cfg.Input, "path to the input file to reduce")
	f.StringVar(&cfg.Builder, "builder", cfg.Builder, "tree builder to use (antlr4, srcml, or a registered fixture)")
	f.StringVar(&cfg.Grammar, "grammar", cfg.Grammar, "grammar name passed to the builder")
	f.StringVar(&cfg.Language, "language", cfg.Language, "language name passed to the builder")
	f.StringVarP(&cfg.Out, "out", "o", cfg.Out, "output directory for the reduced file and working files")
	f.StringVar(&cfg.Reducer, "reducer", cfg.Reducer, "reduction driver to use (hddmin or hddrmin)")
	f.StringVar(&cfg.Tester, "tester", cfg.Tester, "tester to use (command)")
	f.StringVar(&cfg.Cache, "cache", cfg.Cache, "candidate cache to use (null or disk)")
	f.StringSliceVar(&cfg.Phases, "phases", cfg.Phases, "phase presets to run, in order (see 'picireny phases')")
	f.BoolVar(&cfg.Star, "star", cfg.Star, "repeat the phase schedule to a fixpoint")
	f.BoolVar(&cfg.FlattenRecursion, "flatten-recursion", cfg.FlattenRecursion, "flatten direct left/right recursion before reducing")
	f.BoolVar(&cfg.SqueezeTree, "squeeze-tree", cfg.SqueezeTree, "collapse single-child chains before reducing")
	f.BoolVar(&cfg.SkipUnremovable, "skip-unremovable", cfg.SkipUnremovable, "skip nodes whose removal does not change the unparsed output")
	f.BoolVar(&cfg.SkipWhitespace, "skip-whitespace", cfg.SkipWhitespace, "skip whitespace-only nodes")
	f.BoolVar(&cfg.WithWhitespace, "with-whitespace", cfg.WithWhitespace, "include original whitespace when unparsing")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&cfg.MinGrammarVersion, "min-grammar-version", cfg.MinGrammarVersion, "minimum grammar version the builder must report")
	f.StringVar(&cfg.GrammarVersion, "grammar-version", cfg.GrammarVersion, "grammar version the builder reports, checked against --min-grammar-version")
}

// trailingCommand returns the test command given after "--", the
// convention the original picireny CLI and this one share for passing an
// arbitrary external tester through argument parsing untouched.
func trailingCommand(cmd *cobra.Command) ([]string, error) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return nil, nil
	}
	all := cmd.Flags().Args()
	return all[dash:], nil
}

// validatePhases checks each requested phase name against the known
// presets, suggesting the closest match by edit distance when one is
// typo'd (within an edit distance of 2) rather than simply unknown.
func validatePhases(phases []string) error {
	known := config.KnownPhasePresets()
	for _, p := range phases {
		if contains(known, p) {
			continue
		}
		best, bestDist := "", -1
		for _, k := range known {
			d := fuzzy.LevenshteinDistance(p, k)
			if bestDist < 0 || d < bestDist || (d == bestDist && k < best) {
				best, bestDist = k, d
			}
		}
		if bestDist >= 0 && bestDist <= 2 {
			return fmt.Errorf("unknown phase %q, did you mean %q? (known: %s)", p, best, strings.Join(known, ", "))
		}
		return fmt.Errorf("unknown phase %q (known: %s)", p, strings.Join(known, ", "))
	}
	return nil
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

// newCancellableContext returns a context canceled on SIGINT/SIGTERM, so
// an in-flight reduction run stops cleanly on Ctrl+C instead of leaving
// the external tester orphaned.
func newCancellableContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()
	return ctx, cancel
}
