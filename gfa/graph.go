// SPDX-License-Identifier: MIT
// Package: gfagen/gfa
//
// graph.go - in-memory Sink.
//
// Graph keeps every record it receives, in order, and indexes links by
// endpoint so that traversals can ask for successors and predecessors.
// Orientation is kept on the links but ignored by the index: a link
// From→To makes To a successor of From whatever the strands are.

package gfa

import "fmt"

// Graph is a Sink that collects records in memory. The zero value is ready
// to use.
type Graph struct {
	Header   Header
	Segments []Segment
	Links    []Link

	headers int
	succ    map[int][]int
	pred    map[int][]int
}

// NewGraph returns an empty collector.
func NewGraph() *Graph {
	return &Graph{
		succ: make(map[int][]int),
		pred: make(map[int][]int),
	}
}

// WriteHeader records h. Only the last header is kept; HeaderCount reports
// how many were written.
func (g *Graph) WriteHeader(h Header) error {
	g.Header = h
	g.headers++

	return nil
}

// WriteSegment records s.
func (g *Graph) WriteSegment(s Segment) error {
	if s.ID < 1 {
		return fmt.Errorf("gfa: segment %d: %w", s.ID, ErrBadSegmentID)
	}
	g.Segments = append(g.Segments, s)

	return nil
}

// WriteLink records l and indexes both endpoints. Duplicate links and self
// loops are kept as given.
func (g *Graph) WriteLink(l Link) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("gfa: link %d→%d: %w", l.From, l.To, err)
	}
	if g.succ == nil {
		g.succ, g.pred = make(map[int][]int), make(map[int][]int)
	}
	g.Links = append(g.Links, l)
	g.succ[l.From] = append(g.succ[l.From], l.To)
	g.pred[l.To] = append(g.pred[l.To], l.From)

	return nil
}

// HeaderCount returns the number of WriteHeader calls.
func (g *Graph) HeaderCount() int { return g.headers }

// SegmentIDs returns the segment IDs in emission order.
func (g *Graph) SegmentIDs() []int {
	ids := make([]int, len(g.Segments))
	for i, s := range g.Segments {
		ids[i] = s.ID
	}

	return ids
}

// HasSegment reports whether a segment with the given ID was written.
// Complexity: O(1) for dense 1..n IDs in order, O(n) otherwise.
func (g *Graph) HasSegment(id int) bool {
	if id >= 1 && id <= len(g.Segments) && g.Segments[id-1].ID == id {
		return true
	}
	for _, s := range g.Segments {
		if s.ID == id {
			return true
		}
	}

	return false
}

// Successors returns the targets of links leaving id, in emission order.
// The returned slice must not be modified.
func (g *Graph) Successors(id int) []int { return g.succ[id] }

// Predecessors returns the sources of links entering id, in emission order.
// The returned slice must not be modified.
func (g *Graph) Predecessors(id int) []int { return g.pred[id] }
