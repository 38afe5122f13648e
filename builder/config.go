// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng       = nil        (Generate requires WithSeed or WithRand)
//   • minLen    = 5
//   • maxLen    = 15
//   • alphabet  = "ACGT"
//   • logger    = nil        (silent)

package builder

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// config aggregates all knobs used by the phases.
// It is passed by VALUE to phases (immutable to callers); the *rand.Rand it
// points to is the single stream the run advances.
type config struct {
	// RNG for every draw; nil means no stream was configured.
	rng *rand.Rand
	// seed is the value given to WithSeed; seeded reports whether it applies.
	seed   uint64
	seeded bool

	// Segment sequence knobs.
	minLen   int
	maxLen   int
	alphabet []byte

	// logger receives TRACE phase markers; nil is silent.
	logger *log.Logger
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		minLen:   DefaultMinSequenceLength,
		maxLen:   DefaultMaxSequenceLength,
		alphabet: []byte(DefaultAlphabet),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
