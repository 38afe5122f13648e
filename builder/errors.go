// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Configuration sentinels wrap ErrConfiguration, so a single
//     errors.Is(err, ErrConfiguration) catches every rejected Spec.
//   • Implementations attach context with `%w`; never compare strings.
//   • Generation never panics; option constructors (WithX) do on
//     meaningless input.

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration classifies every invalid combination of Spec inputs.
// It is reported before any record reaches the sink.
// Usage: if errors.Is(err, ErrConfiguration) { /* fix flags, exit non-zero */ }.
var ErrConfiguration = errors.New("builder: invalid configuration")

// ErrTooFewEdges indicates strong connectivity was requested with an edge
// budget smaller than the node count; the cycle alone needs NodeCount links.
var ErrTooFewEdges = fmt.Errorf("%w: cannot ensure strong connectivity with fewer edges than nodes", ErrConfiguration)

// ErrNoNodes indicates random links were requested over an empty node set.
var ErrNoNodes = fmt.Errorf("%w: random links need at least one node", ErrConfiguration)

// ErrNegativeCount indicates a negative node or edge count.
var ErrNegativeCount = fmt.Errorf("%w: counts must be non-negative", ErrConfiguration)

// ErrNilSink indicates Generate was called without a destination.
var ErrNilSink = errors.New("builder: sink is nil")

// ErrNeedRandSource indicates Generate was called without WithSeed or WithRand.
// Segment sequences always need a random stream, even for tiny graphs.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a formatted message with the method context and
// wraps the sentinel, e.g. "Validate: edges=1 < nodes=2: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
