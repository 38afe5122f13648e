// Package dfs implements depth-first reachability over a collected gfa.Graph
// and the strong-connectivity check built on it.
//
// What:
//
//   - DFS(g, start, opts...): walks links From→To (or To→From with
//     WithReverse) from a start segment. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - StronglyConnected(g): true when every segment reaches every other one.
//     Runs one forward and one reverse walk from the first segment
//     (Kosaraju's reachability argument): if both cover all segments, the
//     graph is one strongly connected component.
//
// Model:
//
//   - Vertices are segment IDs; each link is a directed arc From→To.
//   - Orientations are not part of the arc: the '+'/'+' cycle written by the
//     builder is an ordinary directed cycle here.
//   - Self loops and parallel links are harmless; visited segments are skipped.
//
// Why:
//
//   - Verify the builder's connectivity guarantee on generated fixtures.
//   - Give tests a cheap reachability oracle without a full graph library.
//
// Implementation:
//
//   - The walk keeps an explicit frame stack instead of recursing, so a
//     million-node cycle does not grow the goroutine stack to match.
//     Visit order is the same as the recursive formulation.
//
// Complexity:
//
//   - DFS:               Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if start is not a segment of g.
//   - context.Canceled / DeadlineExceeded if the context ends.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
