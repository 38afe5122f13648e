// SPDX-License-Identifier: MIT
// Package: gfagen/gfa
//
// writer.go - Sink contract and the buffered text sink.
//
// Contract:
//   - One record per line, fields separated by a single tab, '\n' line ends.
//   - Records are written in call order; the Writer never reorders or drops.
//   - Write errors are sticky: after the first failure every call returns it.
//   - Flush must be called by the owner of the destination; Writer never
//     closes the underlying io.Writer.

package gfa

import (
	"bufio"
	"fmt"
	"io"
)

// Sink consumes generated records in emission order.
// A Sink is owned by a single generation run and is not safe for concurrent use.
type Sink interface {
	WriteHeader(h Header) error
	WriteSegment(s Segment) error
	WriteLink(l Link) error
}

// Writer is a Sink that renders records as GFA-like text lines.
type Writer struct {
	bw  *bufio.Writer
	buf []byte // per-line scratch, reused across records
	err error  // first write error, sticky
}

// lineScratch is the initial scratch capacity; long sequences grow it once.
const lineScratch = 64

// NewWriter returns a Writer buffering into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		bw:  bufio.NewWriter(w),
		buf: make([]byte, 0, lineScratch),
	}
}

// WriteHeader writes the H line.
func (w *Writer) WriteHeader(h Header) error {
	return w.writeLine("header", h.AppendTo(w.buf[:0]))
}

// WriteSegment writes an S line. IDs below 1 are rejected.
func (w *Writer) WriteSegment(s Segment) error {
	if s.ID < 1 {
		return fmt.Errorf("gfa: segment %d: %w", s.ID, ErrBadSegmentID)
	}

	return w.writeLine("segment", s.AppendTo(w.buf[:0]))
}

// WriteLink writes an L line after validating endpoints and orientations.
func (w *Writer) WriteLink(l Link) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("gfa: link %d→%d: %w", l.From, l.To, err)
	}

	return w.writeLine("link", l.AppendTo(w.buf[:0]))
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = fmt.Errorf("gfa: flush: %w", err)
	}

	return w.err
}

// writeLine appends '\n' to line and hands it to the buffered writer.
func (w *Writer) writeLine(kind string, line []byte) error {
	if w.err != nil {
		return w.err
	}
	line = append(line, '\n')
	w.buf = line // keep the grown scratch
	if _, err := w.bw.Write(line); err != nil {
		w.err = fmt.Errorf("gfa: write %s: %w", kind, err)
	}

	return w.err
}
