package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gfagen/gfa"
)

// StronglyConnected reports whether every segment of g reaches every other
// segment along directed links. A graph with no segments, or a single one,
// is strongly connected.
func StronglyConnected(g *gfa.Graph, opts ...Option) (bool, error) {
	return StronglyConnectedContext(context.Background(), g, opts...)
}

// StronglyConnectedContext is StronglyConnected with cancellation.
// opts are applied to both walks, so depth limits and hooks affect the
// answer; ctx always takes precedence over a WithContext among them.
func StronglyConnectedContext(ctx context.Context, g *gfa.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if len(g.Segments) <= 1 {
		return true, nil
	}

	root := g.Segments[0].ID
	walks := [][]Option{
		append(append([]Option{}, opts...), WithContext(ctx)),
		append(append([]Option{}, opts...), WithReverse(), WithContext(ctx)),
	}
	for _, wopts := range walks {
		res, err := DFS(g, root, wopts...)
		if err != nil {
			return false, fmt.Errorf("dfs: StronglyConnected: %w", err)
		}
		for _, s := range g.Segments {
			if !res.Visited[s.ID] {
				return false, nil
			}
		}
	}

	return true, nil
}
