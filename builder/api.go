// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// api.go - thin public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: Generate(sink, spec, opts...). Resolves cfg, validates
//     spec, runs the phases in order.
//   - Phases are implemented in impl_*.go; each one writes its records and
//     reports how many it wrote.
//   - Determinism: same spec, options and seed ⇒ identical record stream.
//   - Safety: never panic; return sentinel errors wrapped with context.
//
// Phase machine (no backward transitions, no retries):
//
//	Validated → HeaderWritten → NodesWritten → (CycleWritten)? → RandomEdgesWritten → Done
//
// The first failing phase aborts the run. Records already handed to the
// sink are not rolled back: the sink is a single-pass stream.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfagen/gfa"
	"github.com/katalvlaran/gfagen/internal/logging"
)

// Phase is the last state a Generate run completed.
type Phase int

// Phases in the order Generate completes them. PhaseCycleWritten is skipped
// when no cycle is requested.
const (
	PhaseNone Phase = iota
	PhaseValidated
	PhaseHeaderWritten
	PhaseNodesWritten
	PhaseCycleWritten
	PhaseRandomEdgesWritten
	PhaseDone
)

var phaseNames = [...]string{
	PhaseNone:               "none",
	PhaseValidated:          "validated",
	PhaseHeaderWritten:      "header-written",
	PhaseNodesWritten:       "nodes-written",
	PhaseCycleWritten:       "cycle-written",
	PhaseRandomEdgesWritten: "random-edges-written",
	PhaseDone:               "done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}

	return phaseNames[p]
}

// Stats summarizes a Generate run, also on failure.
type Stats struct {
	// Seed is the WithSeed value; valid only when Seeded is true.
	Seed   uint64
	Seeded bool

	Headers     int
	Segments    int
	CycleLinks  int
	RandomLinks int

	// Phase is the last phase completed.
	Phase Phase
}

// Links returns the number of links written by both edge phases.
func (s Stats) Links() int { return s.CycleLinks + s.RandomLinks }

// emitter writes the records of one phase and returns how many it wrote,
// including a partial count on error.
type emitter func(sink gfa.Sink, spec Spec, cfg config) (int, error)

// step binds an emitter to the phase it completes and the counter it feeds.
type step struct {
	emit  emitter
	done  Phase
	count func(*Stats) *int
	edges bool // first edge step logs the "Writing edges" marker
}

// Generate writes the graph described by spec to sink.
//
// Order of checks (no sink call happens before all of them pass):
//  1. sink != nil                (ErrNilSink)
//  2. spec.Validate()            (ErrConfiguration family)
//  3. a random stream is set     (ErrNeedRandSource)
//
// Errors from the sink are wrapped as "Generate: after <phase>: <Method>: ...: %w".
// Complexity: O(NodeCount*maxLen + EdgeCount) time, O(maxLen) extra space.
func Generate(sink gfa.Sink, spec Spec, opts ...Option) (Stats, error) {
	cfg := newConfig(opts...)
	stats := Stats{Seed: cfg.seed, Seeded: cfg.seeded}

	if sink == nil {
		return stats, fmt.Errorf("%s: %w", MethodGenerate, ErrNilSink)
	}
	if err := spec.Validate(); err != nil {
		return stats, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	if cfg.rng == nil {
		return stats, fmt.Errorf("%s: use WithSeed or WithRand: %w", MethodGenerate, ErrNeedRandSource)
	}
	stats.Phase = PhaseValidated

	steps := []step{
		{emit: writeHeader, done: PhaseHeaderWritten, count: func(s *Stats) *int { return &s.Headers }},
		{emit: writeSegments, done: PhaseNodesWritten, count: func(s *Stats) *int { return &s.Segments }},
	}
	if spec.CycleLinks() > 0 {
		steps = append(steps, step{emit: writeCycle, done: PhaseCycleWritten, count: func(s *Stats) *int { return &s.CycleLinks }, edges: true})
	}
	steps = append(steps, step{emit: writeRandomLinks, done: PhaseRandomEdgesWritten, count: func(s *Stats) *int { return &s.RandomLinks }, edges: true})

	edgesAnnounced := false
	for _, st := range steps {
		if st.edges && !edgesAnnounced {
			logging.Trace(cfg.logger, "Writing edges", "count", spec.EdgeCount)
			edgesAnnounced = true
		}
		n, err := st.emit(sink, spec, cfg)
		*st.count(&stats) = n
		if err != nil {
			return stats, fmt.Errorf("%s: after %s: %w", MethodGenerate, stats.Phase, err)
		}
		stats.Phase = st.done
	}
	stats.Phase = PhaseDone

	return stats, nil
}
