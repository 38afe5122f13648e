package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gfagen/builder"
	"github.com/katalvlaran/gfagen/internal/logging"
)

// envLogLevel overrides the default of --log-level.
const envLogLevel = "GFAGEN_LOG_LEVEL"

// stdoutPath is the only path meaning standard output.
const stdoutPath = "-"

// errMissingFlag reports a required flag that was not given.
var errMissingFlag = errors.New("missing required flag")

// cliOptions is what the command line resolves to.
type cliOptions struct {
	OutputFile        string `validate:"required"`
	NodeCount         uint64 `validate:"lte=9223372036854775807"`
	EdgeCount         uint64 `validate:"lte=9223372036854775807"`
	StronglyConnected bool
	Seed              uint64
	SeedSet           bool
	LogLevel          string `validate:"oneof=error warn info debug trace"`
}

// loadEnv reads .env if there is one. Existing variables win.
func loadEnv() bool {
	return godotenv.Load() == nil
}

// getEnvString returns the variable, or def when it is unset or blank.
func getEnvString(key, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return def
	}

	return value
}

// parseArgs parses the command line. pflag.ErrHelp is returned for -h.
func parseArgs(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := pflag.NewFlagSet("gfagen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.OutputFile, "output-file", "o", stdoutPath, `file to write the graph to; "-" is standard output`)
	fs.Uint64VarP(&opts.NodeCount, "node-count", "n", 0, "number of nodes (required)")
	fs.Uint64VarP(&opts.EdgeCount, "edge-count", "e", 0, "number of edges (required)")
	fs.BoolVarP(&opts.StronglyConnected, "ensure-strongly-connected", "c", false, "make the graph strongly connected")
	fs.Uint64VarP(&opts.Seed, "seed", "s", 0, "random number seed (default: fresh entropy)")
	fs.StringVarP(&opts.LogLevel, "log-level", "l", getEnvString(envLogLevel, "info"), strings.Join(logging.LevelNames, ", "))
	fs.SortFlags = false

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	for _, name := range []string{"node-count", "edge-count"} {
		if !fs.Changed(name) {
			return opts, fmt.Errorf("--%s: %w", name, errMissingFlag)
		}
	}
	opts.SeedSet = fs.Changed("seed")
	opts.LogLevel = strings.ToLower(strings.TrimSpace(opts.LogLevel))

	if err := validator.New().Struct(opts); err != nil {
		return opts, fmt.Errorf("invalid options: %w", err)
	}

	return opts, nil
}

// Spec converts the counts; validation has already bounded them to int.
func (o cliOptions) Spec() builder.Spec {
	return builder.Spec{
		NodeCount:         clampInt(o.NodeCount),
		EdgeCount:         clampInt(o.EdgeCount),
		StronglyConnected: o.StronglyConnected,
	}
}

func clampInt(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}

	return int(v)
}
