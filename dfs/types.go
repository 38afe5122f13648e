// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting and
// reverse walks.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *gfa.Graph is passed to DFS or
	// StronglyConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start segment does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a segment is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a segment were
	// explored (post-order), before it is appended to Order.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start segment. Default is -1 (no limit).
	MaxDepth int

	// Reverse walks links backwards (To→From).
	Reverse bool
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit and forward links.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for cancellation. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithReverse walks links against their direction (predecessors).
func WithReverse() Option {
	return func(o *DFSOptions) {
		o.Reverse = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records segments in the sequence they finished (post-order).
	Order []int

	// Depth maps each reached segment to its tree depth from the start.
	Depth map[int]int

	// Parent maps each reached segment to the segment it was discovered from.
	// The start segment has no entry.
	Parent map[int]int

	// Visited flags the segments reached.
	Visited map[int]bool
}
