// Package gfa models the records of a GFA-like sequence graph and the sinks
// that consume them.
//
// What:
//
//   - Header:  one `H` line identifying the format version (VN:Z:1.0).
//   - Segment: one `S` line per node, a 1-based integer ID and a DNA sequence.
//   - Link:    one `L` line per edge, two oriented endpoints and an overlap.
//
// Sinks:
//
//   - Writer: tab-separated text on any io.Writer, buffered through bufio.
//   - Graph:  an in-memory collector with successor/predecessor lookup, used
//     by tests, examples and the dfs package.
//
// Wire format (tab separated, one record per line):
//
//	H	VN:Z:1.0
//	S	<id>	<sequence>
//	L	<from>	<from_orient>	<to>	<to_orient>	0M
//
// Errors:
//
//   - ErrBadOrientation  orientation byte is neither '+' nor '-'.
//   - ErrBadSegmentID    segment or link endpoint ID is < 1.
//   - write errors of the underlying io.Writer are returned wrapped with the
//     record kind that failed.
package gfa
