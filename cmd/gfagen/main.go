// 19 Oct 2026

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gfagen/builder"
	"github.com/katalvlaran/gfagen/gfa"
	"github.com/katalvlaran/gfagen/internal/logging"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	envLoaded := loadEnv()

	opts, err := parseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(stderr, "gfagen:", err)
		return ExitUsageError
	}

	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "gfagen:", err)
		return ExitUsageError
	}
	logger := logging.New(stderr, logging.Params{Level: level, Timestamps: true})
	if !envLoaded {
		logger.Debug("No .env file found, using system environment variables")
	}

	// Configuration errors must leave the destination untouched.
	spec := opts.Spec()
	if err := spec.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return ExitFailure
	}

	seed := opts.Seed
	if !opts.SeedSet {
		seed = rand.Uint64()
	}
	logger.Debug("generating", "nodes", spec.NodeCount, "edges", spec.EdgeCount,
		"strongly_connected", spec.StronglyConnected, "seed", seed, "output", opts.OutputFile)

	if err := generate(opts.OutputFile, stdout, spec, seed, logger); err != nil {
		logger.Error("generation failed", "err", err)
		return ExitFailure
	}

	return ExitSuccess
}

// generate opens the destination, writes the graph and flushes. The file is
// closed on every path; a close error is reported when nothing failed before.
func generate(path string, stdout io.Writer, spec builder.Spec, seed uint64, logger *log.Logger) (err error) {
	dest, closeFn, err := openOutput(path, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := gfa.NewWriter(dest)
	stats, err := builder.Generate(w, spec, builder.WithSeed(seed), builder.WithLogger(logger))
	if err != nil {
		// Flush what was produced; the run has failed either way.
		_ = w.Flush()
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	logger.Debug("done", "segments", stats.Segments, "cycle_links", stats.CycleLinks,
		"random_links", stats.RandomLinks, "seed", stats.Seed)

	return nil
}

// openOutput resolves "-" to stdout; anything else is created or truncated.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == stdoutPath {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("output file: %w", err)
	}

	return f, f.Close, nil
}
