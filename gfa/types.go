// SPDX-License-Identifier: MIT
// Package: gfagen/gfa
//
// types.go - record types of the GFA-like text format.

package gfa

import (
	"errors"
	"strconv"
)

// Record type letters, the first field of every line.
const (
	HeaderType  = 'H'
	SegmentType = 'S'
	LinkType    = 'L'
)

// Version is the only format version emitted by this package.
const Version = "1.0"

// ZeroOverlap is the CIGAR overlap attached to every generated link.
const ZeroOverlap = "0M"

var (
	// ErrBadOrientation indicates an orientation other than '+' or '-'.
	ErrBadOrientation = errors.New("gfa: bad orientation")

	// ErrBadSegmentID indicates a segment ID (or link endpoint) below 1.
	ErrBadSegmentID = errors.New("gfa: segment ID must be >= 1")
)

// Orientation is the strand marker of a link endpoint.
type Orientation byte

const (
	// Forward is the '+' strand.
	Forward Orientation = '+'
	// Reverse is the '-' strand.
	Reverse Orientation = '-'
)

// Orientations lists both strands in draw order: index 0 is Forward.
var Orientations = [2]Orientation{Forward, Reverse}

// Valid reports whether o is Forward or Reverse.
func (o Orientation) Valid() bool {
	return o == Forward || o == Reverse
}

// String returns "+" or "-".
func (o Orientation) String() string {
	return string(rune(o))
}

// Header identifies the format version. The zero value renders as Version.
type Header struct {
	Version string
}

// Segment is a node of the sequence graph.
type Segment struct {
	// ID is the 1-based node identifier.
	ID int
	// Sequence is the node label over the generator alphabet.
	Sequence string
}

// Link is a directed edge between two oriented segment ends.
type Link struct {
	From       int
	FromOrient Orientation
	To         int
	ToOrient   Orientation
	// Overlap is a CIGAR string; empty renders as ZeroOverlap.
	Overlap string
}

// version resolves the zero value to the package Version.
func (h Header) version() string {
	if h.Version == "" {
		return Version
	}

	return h.Version
}

// overlap resolves the zero value to ZeroOverlap.
func (l Link) overlap() string {
	if l.Overlap == "" {
		return ZeroOverlap
	}

	return l.Overlap
}

// Validate checks the endpoint IDs and orientations of l.
func (l Link) Validate() error {
	if l.From < 1 || l.To < 1 {
		return ErrBadSegmentID
	}
	if !l.FromOrient.Valid() || !l.ToOrient.Valid() {
		return ErrBadOrientation
	}

	return nil
}

// AppendTo appends the tab-separated line for h (without newline) to b.
func (h Header) AppendTo(b []byte) []byte {
	b = append(b, HeaderType, '\t')
	b = append(b, "VN:Z:"...)

	return append(b, h.version()...)
}

// AppendTo appends the tab-separated line for s (without newline) to b.
func (s Segment) AppendTo(b []byte) []byte {
	b = append(b, SegmentType, '\t')
	b = strconv.AppendInt(b, int64(s.ID), 10)
	b = append(b, '\t')

	return append(b, s.Sequence...)
}

// AppendTo appends the tab-separated line for l (without newline) to b.
func (l Link) AppendTo(b []byte) []byte {
	b = append(b, LinkType, '\t')
	b = strconv.AppendInt(b, int64(l.From), 10)
	b = append(b, '\t', byte(l.FromOrient), '\t')
	b = strconv.AppendInt(b, int64(l.To), 10)
	b = append(b, '\t', byte(l.ToOrient), '\t')

	return append(b, l.overlap()...)
}

func (h Header) String() string  { return string(h.AppendTo(nil)) }
func (s Segment) String() string { return string(s.AppendTo(nil)) }
func (l Link) String() string    { return string(l.AppendTo(nil)) }
