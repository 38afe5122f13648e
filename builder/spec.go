// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// spec.go - the immutable description of one generated graph.

package builder

// Spec describes the graph to generate. It is consumed once by Generate.
type Spec struct {
	// NodeCount is the number of segments; IDs run 1..NodeCount.
	NodeCount int
	// EdgeCount is the total number of links, cycle links included.
	EdgeCount int
	// StronglyConnected prepends the cycle 1→2→…→n→1 to the links.
	StronglyConnected bool
}

// CycleLinks returns how many links the cycle phase emits: NodeCount when
// strong connectivity is requested, otherwise 0.
func (s Spec) CycleLinks() int {
	if s.StronglyConnected {
		return s.NodeCount
	}

	return 0
}

// RandomLinks returns the budget left for random links after the cycle.
// Meaningful only for a Spec that passed Validate.
func (s Spec) RandomLinks() int {
	return s.EdgeCount - s.CycleLinks()
}

// Validate reports whether s can be generated. It performs every check that
// would otherwise surface mid-run, so an accepted Spec fails only on sink
// errors. Rejections wrap ErrConfiguration.
//
// Accepted corner cases: NodeCount = EdgeCount = 0 (header only) and
// StronglyConnected with NodeCount = 0 and EdgeCount = 0.
func (s Spec) Validate() error {
	if err := validateNonNegative(MethodValidate, s.NodeCount, s.EdgeCount); err != nil {
		return err
	}
	if s.StronglyConnected {
		if err := validateEdgeBudget(MethodValidate, s.NodeCount, s.EdgeCount); err != nil {
			return err
		}
	}

	return validateEndpoints(MethodValidate, s.NodeCount, s.RandomLinks())
}
