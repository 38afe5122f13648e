// Package builder defines shared constants used by the generator phases,
// ensuring consistent defaults and error context across the package.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the phase or entry point for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name of the Generate entry point.
	MethodGenerate = "Generate"
	// MethodValidate is the canonical name of Spec.Validate.
	MethodValidate = "Validate"
	// MethodHeader is the canonical name of the header phase.
	MethodHeader = "Header"
	// MethodSegments is the canonical name of the segment (node) phase.
	MethodSegments = "Segments"
	// MethodCycle is the canonical name of the strong-connectivity cycle phase.
	MethodCycle = "Cycle"
	// MethodRandomLinks is the canonical name of the random link phase.
	MethodRandomLinks = "RandomLinks"
)

//-----------------------------------------------------------------------------
// Segment Defaults
//-----------------------------------------------------------------------------

// FirstSegmentID is the ID of the first segment; IDs are dense from here.
const FirstSegmentID = 1

// DefaultMinSequenceLength is the shortest generated segment sequence.
const DefaultMinSequenceLength = 5

// DefaultMaxSequenceLength is the longest generated segment sequence (inclusive).
const DefaultMaxSequenceLength = 15

// DefaultAlphabet is the DNA alphabet sampled for segment sequences.
const DefaultAlphabet = "ACGT"

//-----------------------------------------------------------------------------
// RNG
//-----------------------------------------------------------------------------

// pcgStream is the fixed second PCG word used by WithSeed. Changing it
// changes every seeded output, so it is frozen.
const pcgStream uint64 = 0x9E3779B97F4A7C15
