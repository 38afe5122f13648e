// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// impl_cycle.go - strong-connectivity cycle phase.
//
// Contract:
//   • Runs only when Spec.StronglyConnected and NodeCount >= 1.
//   • Emits i → i+1 for i = 1..n-1, then n → 1 (a self loop when n == 1).
//   • Both ends '+', overlap 0M; draws nothing from the stream.
//   • Exactly NodeCount links; the budget check already ran in Validate.
//
// A directed cycle through every node lets each node reach every other
// node, whatever links follow.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfagen/gfa"
	"github.com/katalvlaran/gfagen/internal/logging"
)

// writeCycle emits the Hamiltonian cycle 1→2→…→n→1.
func writeCycle(sink gfa.Sink, spec Spec, cfg config) (int, error) {
	n := spec.NodeCount
	if n < FirstSegmentID {
		return 0, nil
	}
	logging.Trace(cfg.logger, "Ensuring strong connectivity by creating a cycle through all nodes", "nodes", n)

	for i := FirstSegmentID; i <= n; i++ {
		next := i + 1
		if i == n {
			next = FirstSegmentID // close the ring
		}
		l := gfa.Link{From: i, FromOrient: gfa.Forward, To: next, ToOrient: gfa.Forward, Overlap: gfa.ZeroOverlap}
		if err := sink.WriteLink(l); err != nil {
			return i - FirstSegmentID, fmt.Errorf("%s: link %d→%d: %w", MethodCycle, i, next, err)
		}
	}

	return n, nil
}
