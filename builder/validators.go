// Package builder provides validation helpers that enforce the Spec
// contract before generation starts.
//
// Each function returns a sentinel wrapped by builderErrorf when its
// precondition is violated.
package builder

// validateNonNegative rejects negative node or edge counts.
// Complexity: O(1).
func validateNonNegative(method string, nodes, edges int) error {
	if nodes < 0 || edges < 0 {
		return builderErrorf(method, ErrNegativeCount, "nodes=%d edges=%d", nodes, edges)
	}

	return nil
}

// validateEdgeBudget ensures a cycle through all nodes fits in the edge budget.
// Complexity: O(1).
func validateEdgeBudget(method string, nodes, edges int) error {
	if edges < nodes {
		return builderErrorf(method, ErrTooFewEdges, "edges=%d < nodes=%d", edges, nodes)
	}

	return nil
}

// validateEndpoints ensures random links have a non-empty node range to draw
// endpoints from.
// Complexity: O(1).
func validateEndpoints(method string, nodes, randomLinks int) error {
	if randomLinks > 0 && nodes < FirstSegmentID {
		return builderErrorf(method, ErrNoNodes, "random links=%d over nodes=%d", randomLinks, nodes)
	}

	return nil
}
