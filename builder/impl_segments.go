// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// impl_segments.go - segment (node) phase.
//
// Contract:
//   • IDs 1..NodeCount in ascending order, dense, each exactly once.
//   • Per segment: one length draw, then `length` alphabet draws.
//   • Sequences may repeat across segments.
//
// Complexity:
//   • Time: O(NodeCount * maxLen).
//   • Space: O(maxLen) scratch, reused across segments.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfagen/gfa"
	"github.com/katalvlaran/gfagen/internal/logging"
)

// writeSegments emits one S line per node.
func writeSegments(sink gfa.Sink, spec Spec, cfg config) (int, error) {
	logging.Trace(cfg.logger, "Writing nodes", "count", spec.NodeCount)

	buf := make([]byte, 0, cfg.maxLen)
	for id := FirstSegmentID; id <= spec.NodeCount; id++ {
		buf = randomSequence(cfg.rng, cfg.minLen, cfg.maxLen, cfg.alphabet, buf)
		if err := sink.WriteSegment(gfa.Segment{ID: id, Sequence: string(buf)}); err != nil {
			return id - FirstSegmentID, fmt.Errorf("%s: segment %d: %w", MethodSegments, id, err)
		}
	}

	return spec.NodeCount, nil
}
