// Package builder generates synthetic GFA-like sequence graphs from a Spec,
// using the same functional-options and sentinel-error conventions as the
// rest of gfagen.
//
// The package offers the following key components:
//
//   - Spec: node count, edge count and the strong-connectivity switch.
//     Spec.Validate rejects impossible combinations before anything is written.
//   - Option / config:
//     – WithSeed:           seeded PCG stream (reproducible runs).
//     – WithRand:           caller-owned *rand.Rand stream.
//     – WithSequenceLength: closed range of segment lengths (default 5..15).
//     – WithAlphabet:       segment alphabet (default "ACGT").
//     – WithLogger:         charmbracelet logger for TRACE phase markers.
//   - Generate: the orchestrator. It runs the phases
//     header → segments → cycle (optional) → random links
//     against a gfa.Sink and returns Stats.
//
// Guarantees:
//
//   - Determinism: same Spec, same options and same seed ⇒ identical record
//     stream, hence byte-identical text through gfa.Writer.
//   - No output on configuration errors: validation runs before the first
//     sink call.
//   - Strong connectivity: with Spec.StronglyConnected the first NodeCount
//     links form the cycle 1→2→…→n→1 with '+' on both ends.
//   - Permissive links: random links may repeat or be self loops; nothing
//     is filtered.
//
// Draw order (part of the reproducibility contract):
//
//   - per segment: one length draw, then one draw per symbol;
//   - per random link: from, to, from orientation, to orientation.
//
// Errors are sentinels (ErrConfiguration and the errors wrapping it,
// ErrNilSink, ErrNeedRandSource); branch with errors.Is.
package builder
