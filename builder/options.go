// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Option customizes a Generate call by mutating its config before any
// record is produced.
type Option func(*config)

// WithSeed creates a PCG stream from seed. Equal seeds give equal output.
// Complexity: O(1).
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, pcgStream))
		c.seed, c.seeded = seed, true
	}
}

// WithRand attaches a caller-owned stream. The caller must not draw from r
// while Generate runs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seed, c.seeded = 0, false
	}
}

// WithSequenceLength sets the closed range [minLen, maxLen] segment lengths
// are drawn from. Panics unless 1 <= minLen <= maxLen.
func WithSequenceLength(minLen, maxLen int) Option {
	if minLen < 1 || maxLen < minLen {
		panic("builder: WithSequenceLength(min<1 or max<min)")
	}
	return func(c *config) {
		c.minLen, c.maxLen = minLen, maxLen
	}
}

// WithAlphabet sets the symbols segment sequences are drawn from, each with
// equal probability. Repeated symbols weigh that symbol up. Panics on "".
// Tabs and newlines would break the line format and also panic.
func WithAlphabet(alphabet string) Option {
	if alphabet == "" {
		panic("builder: WithAlphabet(\"\")")
	}
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == '\t' || alphabet[i] == '\n' || alphabet[i] == '\r' {
			panic("builder: WithAlphabet(separator byte)")
		}
	}
	return func(c *config) {
		c.alphabet = []byte(alphabet)
	}
}

// WithLogger routes TRACE phase markers to l. Panics on nil; omit the
// option for silence.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
