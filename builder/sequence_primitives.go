// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// sequence_primitives.go - the draws shared by the segment and link phases.
//
// Every draw goes through cfg.rng in a fixed order; these helpers are the
// only places that touch the stream.

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/gfagen/gfa"
)

// randomSequence appends one sequence to buf[:0] and returns it: first the
// length draw in [minLen, maxLen], then one alphabet draw per symbol.
// Complexity: O(length).
func randomSequence(rng *rand.Rand, minLen, maxLen int, alphabet, buf []byte) []byte {
	length := minLen + rng.IntN(maxLen-minLen+1)
	buf = buf[:0]
	for i := 0; i < length; i++ {
		buf = append(buf, alphabet[rng.IntN(len(alphabet))])
	}

	return buf
}

// randomSegmentID draws a segment ID uniformly from [1, n]; n >= 1.
func randomSegmentID(rng *rand.Rand, n int) int {
	return FirstSegmentID + rng.IntN(n)
}

// randomOrientation draws '+' or '-' with equal probability.
func randomOrientation(rng *rand.Rand) gfa.Orientation {
	return gfa.Orientations[rng.IntN(len(gfa.Orientations))]
}
