/*
Gfagen writes a random sequence graph in a GFA-like text format, for use as
a test fixture by graph tools.

Usage:

	gfagen -n nodes -e edges [-c] [-s seed] [-o file] [-l level]

Flags:

	-o, --output-file path
		where to write the graph. "-" or no flag means standard output.
	-n, --node-count n
		number of S (segment) lines. Required.
	-e, --edge-count n
		number of L (link) lines. Required.
	-c, --ensure-strongly-connected
		start the links with the cycle 1→2→…→n→1 so that every node reaches
		every other node. Needs edge-count >= node-count.
	-s, --seed n
		random number seed (unsigned 64 bit). Without it a fresh seed is drawn
		on every run; run with -l debug to see which one was used.
	-l, --log-level level
		one of error, warn, info, debug, trace. Default info, or
		$GFAGEN_LOG_LEVEL. Trace marks each generation phase.

Output:

	H	VN:Z:1.0
	S	1	ACGTTGCA
	...
	L	1	+	2	-	0M
	...

Diagnostics go to standard error only. A .env file in the working
directory is read for GFAGEN_* variables if present.

Exit status is 0 on success, 1 for configuration or I/O errors (nothing is
written for configuration errors) and 2 for bad or missing flags.
*/
package main
