// Package workdir builds the deterministic working-directory paths spec
// §5/§6 requires: every candidate a DD engine or hoist proposes gets a
// path of the shape iter_N/level_L/op/id... (hddmin) or
// iter_N/node_V/op/id... (hddrmin), rooted under <out>/tests so
// concurrent DD workers never collide on the same file and a rerun with
// the same inputs reproduces the same layout.
package workdir

import (
	"fmt"
	"path/filepath"
)

// Root returns the path the reduced output file is written to,
// <out>/<basename(input)>.
func Root(out, input string) string {
	return filepath.Join(out, filepath.Base(input))
}

// TestsDir returns the candidate-file directory <out>/tests.
func TestsDir(out string) string {
	return filepath.Join(out, "tests")
}

// LevelPrefix builds the id prefix for one transformation call within
// hddmin's level-based driver (§4.6.1): iter_N/level_L/op.
func LevelPrefix(iteration, level int, op string) string {
	return fmt.Sprintf("iter_%d/level_%d/%s", iteration, level, op)
}

// NodePrefix builds the id prefix for one transformation call within
// hddrmin's queue-based driver (§4.6.2): iter_N/node_V/op, where V is the
// count of rule nodes dequeued so far this traversal.
func NodePrefix(iteration, visited int, op string) string {
	return fmt.Sprintf("iter_%d/node_%d/%s", iteration, visited, op)
}

// CandidatePath joins a tests directory, an id prefix, and the id a DD
// engine or hoist produced (idPrefix/counter) into a concrete candidate
// file path.
func CandidatePath(testsDir, id string) string {
	return filepath.Join(testsDir, id)
}

// Pattern returns a %s-templated path suitable for tester.CommandOracle's
// Pattern field: the candidate id slots into the directory component,
// name is the file a real oracle command expects to find (e.g.
// "input.json").
func Pattern(testsDir, name string) string {
	return filepath.Join(testsDir, "%s", name)
}
