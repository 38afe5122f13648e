package dfs

import (
	"fmt"

	"github.com/katalvlaran/gfagen/gfa"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	id    int
	depth int
	next  int // index of the next neighbor to examine
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *gfa.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g starting at segment start.
// Returns the DFSResult, or an error if aborted by context or hook; on abort
// the partial result is returned with an empty Order.
func DFS(g *gfa.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasSegment(start) {
		return nil, ErrStartVertexNotFound
	}

	n := len(g.Segments)
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}
	if err := w.traverse(start); err != nil {
		res.Order = nil
		return res, err
	}

	return res, nil
}

// neighbors returns the arcs leaving id in the walk direction.
func (w *dfsWalker) neighbors(id int) []int {
	if w.opts.Reverse {
		return w.graph.Predecessors(id)
	}

	return w.graph.Successors(id)
}

// discover marks id visited and runs the pre-order hook.
func (w *dfsWalker) discover(id, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	return nil
}

// traverse runs the walk from start using an explicit stack of frames, in
// the same order a recursive walk would use.
func (w *dfsWalker) traverse(start int) error {
	if err := w.discover(start, 0); err != nil {
		return err
	}
	stack := []frame{{id: start}}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		nbs := w.neighbors(top.id)
		descended := false

		if w.opts.MaxDepth < 0 || top.depth < w.opts.MaxDepth {
			for top.next < len(nbs) {
				nid := nbs[top.next]
				top.next++
				if w.res.Visited[nid] {
					continue
				}
				w.res.Parent[nid] = top.id
				if err := w.discover(nid, top.depth+1); err != nil {
					return err
				}
				stack = append(stack, frame{id: nid, depth: top.depth + 1})
				descended = true
				break
			}
		}
		if descended {
			continue
		}

		// all neighbors explored: post-order
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", top.id, err)
			}
		}
		w.res.Order = append(w.res.Order, top.id)
		stack = stack[:len(stack)-1]
	}

	return nil
}
