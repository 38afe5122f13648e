// Package gfagen generates synthetic sequence graphs in a GFA-like text
// format, for use as fixtures by graph-processing tools.
//
// What is gfagen?
//
//	A small, deterministic generator:
//		• Header, segment (node) and link (edge) records, tab separated
//		• Random DNA sequences of length 5..15 over {A,C,G,T}
//		• Random oriented links, self loops and repeats allowed
//		• Optional strong connectivity through a cycle over all nodes
//		• Byte-identical output for a fixed seed
//
// Under the hood:
//
//	builder/          - Spec, options and the Generate orchestrator
//	gfa/              - record types, the text Writer sink, the in-memory Graph sink
//	dfs/              - reachability and the strong-connectivity check
//	internal/logging/ - charmbracelet/log console logger with a TRACE level
//	cmd/gfagen/       - the command line tool
//
// Quick example (3 nodes, 3 edges, strongly connected):
//
//	H	VN:Z:1.0
//	S	1	GATTACA
//	S	2	CCGTA
//	S	3	TTAGGCAT
//	L	1	+	2	+	0M
//	L	2	+	3	+	0M
//	L	3	+	1	+	0M
//
//	go install github.com/katalvlaran/gfagen/cmd/gfagen@latest
package gfagen
