// Package logging builds the console logger used by gfagen.
//
// It wraps github.com/charmbracelet/log and adds a TRACE level below DEBUG,
// which the generator uses to mark phase boundaries. Output always goes to
// the diagnostic stream handed to New (stderr in the CLI), never to the data
// stream.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// TraceLevel sits one step below log.DebugLevel.
const TraceLevel = log.DebugLevel - 4

// Level names accepted by ParseLevel, most to least severe.
var LevelNames = []string{"error", "warn", "info", "debug", "trace"}

// ParseLevel maps a level name to a log.Level. Names are case-insensitive.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return log.ErrorLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	}

	return 0, fmt.Errorf("logging: unknown level %q (want one of %s)", name, strings.Join(LevelNames, ", "))
}

// Params configures New.
type Params struct {
	Level      log.Level
	Timestamps bool
	Prefix     string
}

// New returns a logger writing to w at the given level. The TRACE label is
// styled like the built-in labels.
func New(w io.Writer, params Params) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: params.Timestamps,
		Level:           params.Level,
		Prefix:          params.Prefix,
	})

	styles := log.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRAC").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("245"))
	logger.SetStyles(styles)

	return logger
}

// Trace logs msg at TraceLevel. A nil logger is a no-op.
func Trace(logger *log.Logger, msg string, keyvals ...any) {
	if logger == nil {
		return
	}
	logger.Log(TraceLevel, msg, keyvals...)
}
