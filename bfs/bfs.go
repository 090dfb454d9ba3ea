// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// queueItem pairs a location with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input, ErrOptionViolation
// for bad options, the context error on cancellation, or a wrapped OnVisit
// error. On error the partial Result is still returned.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := g.Node(start); !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue marks id seen at depth d with its parent and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	if id != parent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbour that is a node of the graph.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	n, _ := w.graph.Node(item.id)
	n.RangeEdges(func(e core.Edge) bool {
		if w.res.Reached(e.To) || !w.opts.FilterEdge(item.id, e) {
			return true
		}
		if _, ok := w.graph.Node(e.To); !ok {
			return true // dangling
		}
		w.enqueue(e.To, next, item.id)
		return true
	})
}

// Unreachable returns, in ascending order, the ids of all locations that
// cannot be reached from start by following roads.
func Unreachable(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	var out []int
	g.Nodes().Range(func(n *core.Node) bool {
		if !res.Reached(n.ID()) {
			out = append(out, n.ID())
		}
		return true
	})
	slices.Sort(out)

	return out, nil
}
