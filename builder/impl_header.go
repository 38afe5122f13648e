// SPDX-License-Identifier: MIT
// Package: gfagen/builder
//
// impl_header.go - header phase.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfagen/gfa"
	"github.com/katalvlaran/gfagen/internal/logging"
)

// writeHeader emits the single H line. It draws nothing from the stream.
func writeHeader(sink gfa.Sink, _ Spec, cfg config) (int, error) {
	logging.Trace(cfg.logger, "Writing header")
	if err := sink.WriteHeader(gfa.Header{Version: gfa.Version}); err != nil {
		return 0, fmt.Errorf("%s: %w", MethodHeader, err)
	}

	return 1, nil
}
