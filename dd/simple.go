package dd

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/aledsdavies/picireny/cache"
	"github.com/aledsdavies/picireny/tester"
	"github.com/aledsdavies/picireny/tree"
)

// SimpleDD is a sequential reference Engine implementing the classic
// Zeller-Hildebrandt ddmin algorithm. It is not the "generic delta
// debugger" the spec treats as an external collaborator (§1 non-goals);
// it exists so this module's property tests (P1-P9) and end-to-end
// scenarios (§8) can run without an external DD package; it is also the
// engine the CLI always uses (cmd/picireny has no flag to select another).
// Candidate caching happens one layer up, in
// the Tester Prune constructs (tester.ConfigTester) - the one place
// candidate bytes are already computed - so SimpleDD itself only calls
// Tester.Test.
type SimpleDD struct {
	Tester   tester.Tester
	IDPrefix string

	counter int64
}

// NewSimpleDDFactory returns a Factory producing SimpleDD engines, each
// scoped to its own id prefix. c is accepted to satisfy Factory's shape
// (§6) but unused here: SimpleDD delegates all caching to its Tester.
func NewSimpleDDFactory() Factory {
	return func(t tester.Tester, c cache.Cache, idPrefix string) Engine {
		return &SimpleDD{Tester: t, IDPrefix: idPrefix}
	}
}

// DDMin implements Engine.
func (d *SimpleDD) DDMin(ctx context.Context, config []tree.NodeID, n int) ([]tree.NodeID, error) {
	if n < 2 {
		n = 2
	}
	c := append([]tree.NodeID{}, config...)

	for {
		if len(c) == 0 {
			return c, nil
		}
		if len(c) == 1 {
			return c, nil // caller consults EmptyReduce for size-1 results
		}

		subsets := partition(c, n)

		if next, ok, err := d.firstFailing(ctx, subsets); err != nil {
			return nil, err
		} else if ok {
			c, n = next, 2
			continue
		}

		if n > 2 {
			complements := make([][]tree.NodeID, len(subsets))
			for i, s := range subsets {
				complements[i] = complement(c, s)
			}
			if next, ok, err := d.firstFailing(ctx, complements); err != nil {
				return nil, err
			} else if ok {
				newN := n - 1
				if newN < 2 {
					newN = 2
				}
				c, n = next, newN
				continue
			}
		}

		if n >= len(c) {
			return c, nil // 1-minimal
		}
		n = min(n*2, len(c))
	}
}

// firstFailing tests each candidate in order and returns the first one
// the oracle finds interesting (FAIL).
func (d *SimpleDD) firstFailing(ctx context.Context, candidates [][]tree.NodeID) ([]tree.NodeID, bool, error) {
	for _, cand := range candidates {
		if len(cand) == 0 {
			continue
		}
		v, err := d.test(ctx, cand)
		if err != nil {
			return nil, false, err
		}
		if v == tester.Fail {
			return cand, true, nil
		}
	}
	return nil, false, nil
}

func (d *SimpleDD) test(ctx context.Context, config []tree.NodeID) (tester.Verdict, error) {
	id := fmt.Sprintf("%s/%d", d.IDPrefix, atomic.AddInt64(&d.counter, 1))
	v, err := d.Tester.Test(ctx, config, id)
	if err != nil {
		slog.Warn("oracle error, treating candidate as PASS", "id", id, "error", err)
		return tester.Pass, nil
	}
	return v, nil
}

// partition splits c into n (nearly) equal contiguous subsets.
func partition(c []tree.NodeID, n int) [][]tree.NodeID {
	if n > len(c) {
		n = len(c)
	}
	out := make([][]tree.NodeID, 0, n)
	size := len(c) / n
	rem := len(c) % n
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, append([]tree.NodeID{}, c[start:end]...))
		start = end
	}
	return out
}

// complement returns the elements of c not in s, preserving c's order.
func complement(c, s []tree.NodeID) []tree.NodeID {
	in := make(map[tree.NodeID]bool, len(s))
	for _, id := range s {
		in[id] = true
	}
	out := make([]tree.NodeID, 0, len(c)-len(s))
	for _, id := range c {
		if !in[id] {
			out = append(out, id)
		}
	}
	return out
}

var _ Engine = (*SimpleDD)(nil)
