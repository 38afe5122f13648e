// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// impl_random_links.go - random link phase.
//
// Contract:
//   • Budget = Spec.RandomLinks() (EdgeCount, minus NodeCount after a cycle).
//   • Per link, draws in this order: from, to, from orientation, to orientation.
//   • Endpoints uniform over [1, NodeCount]; orientations uniform over {+,-}.
//   • Self loops and repeated links are kept; nothing is filtered.
//   • An empty node range with a positive budget was rejected by Validate
//     (ErrNoNodes); the guard below only protects direct callers.
//
// Complexity: O(budget) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfagen/gfa"
	"github.com/katalvlaran/gfagen/internal/logging"
)

// writeRandomLinks emits the remaining link budget.
func writeRandomLinks(sink gfa.Sink, spec Spec, cfg config) (int, error) {
	budget := spec.RandomLinks()
	if budget <= 0 {
		return 0, nil
	}
	if err := validateEndpoints(MethodRandomLinks, spec.NodeCount, budget); err != nil {
		return 0, err
	}
	if spec.StronglyConnected {
		logging.Trace(cfg.logger, "Writing remaining edges", "count", budget)
	}

	rng := cfg.rng
	n := spec.NodeCount
	for k := 0; k < budget; k++ {
		from := randomSegmentID(rng, n)
		to := randomSegmentID(rng, n)
		fromOrient := randomOrientation(rng)
		toOrient := randomOrientation(rng)

		l := gfa.Link{From: from, FromOrient: fromOrient, To: to, ToOrient: toOrient, Overlap: gfa.ZeroOverlap}
		if err := sink.WriteLink(l); err != nil {
			return k, fmt.Errorf("%s: link %d→%d: %w", MethodRandomLinks, from, to, err)
		}
	}

	return budget, nil
}
