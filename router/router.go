// SPDX-License-Identifier: MIT
//
// File: router.go
// Role: Router facade and the per-call search runner.

package router

import (
	"container/heap"
	"math"
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// Router runs route queries with a fixed set of options. It keeps no state
// between calls and is safe for concurrent use.
type Router struct {
	opts Options
}

// New resolves opts over DefaultOptions and returns a Router.
func New(opts ...Option) *Router {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = Zero
	}

	return &Router{opts: cfg}
}

// Options returns the resolved options.
func (r *Router) Options() Options { return r.opts }

// Route is shorthand for New(opts...).Route(g, start, end).
func Route(g *core.Graph, start, end int, opts ...Option) Result {
	return New(opts...).Route(g, start, end)
}

// Route computes the minimum-cost path from start to end over g.
//
// Preconditions are checked in order:
//  1. g == nil                 ⇒ no route.
//  2. start == end             ⇒ Success, Path [start], TotalDist 0.
//  3. end not in g             ⇒ no route.
//  4. start not in g           ⇒ no route (it never receives a zero-cost seed).
//
// The graph is only read. See the package documentation for the full contract.
func (r *Router) Route(g *core.Graph, start, end int) Result {
	if g == nil {
		return Result{}
	}
	if start == end {
		return Result{Path: []int{start}, Success: true}
	}
	goal, ok := g.Node(end)
	if !ok {
		return Result{}
	}
	origin, ok := g.Node(start)
	if !ok {
		return Result{}
	}

	s := &search{
		g:     g,
		opts:  r.opts,
		start: start,
		end:   end,
		goal:  goal,
		best:  make(map[int]float64, g.Len()),
		prev:  make(map[int]int, g.Len()),
	}
	s.init(origin)

	return s.run()
}

// search holds the mutable state of a single Route call.
type search struct {
	g     *core.Graph
	opts  Options
	start int
	end   int
	goal  *core.Node

	best     map[int]float64 // node id → best known cost from start
	prev     map[int]int     // node id → predecessor on the best known path
	frontier frontier        // min-heap ordered by (priority, seq)
	seq      uint64          // push counter for FIFO tie-breaking
	explored int
}

// init seeds every existing node with +Inf, the start node with 0, and pushes
// start at priority h(start, end).
func (s *search) init(origin *core.Node) {
	inf := math.Inf(1)
	s.g.Nodes().Range(func(n *core.Node) bool {
		s.best[n.ID()] = inf
		return true
	})
	s.best[s.start] = 0

	heap.Init(&s.frontier)
	s.push(s.start, 0, s.opts.Heuristic(origin, s.goal))
}

// cost returns the best known cost for id; ids never seen (dangling targets)
// count as unreached.
func (s *search) cost(id int) float64 {
	if c, ok := s.best[id]; ok {
		return c
	}

	return math.Inf(1)
}

func (s *search) push(id int, cost, priority float64) {
	heap.Push(&s.frontier, entry{id: id, cost: cost, priority: priority, seq: s.seq})
	s.seq++
}

// run is the main loop. It returns on the first pop of the end node, or with
// a failure Result once the frontier is exhausted.
func (s *search) run() Result {
	for s.frontier.Len() > 0 {
		cur := heap.Pop(&s.frontier).(entry)

		if cur.id == s.end {
			return s.result()
		}

		// Stale entry: a cheaper path to cur.id was found after it was pushed.
		if cur.cost > s.cost(cur.id) {
			continue
		}

		// Dangling reference: nothing to expand.
		n, ok := s.g.Node(cur.id)
		if !ok {
			continue
		}

		s.explored++
		s.relax(n, cur.cost)
	}

	return Result{Explored: s.explored}
}

// relax tries every outgoing edge of n, whose best cost is du.
func (s *search) relax(n *core.Node, du float64) {
	var (
		e  core.Edge
		nd float64
		h  float64
	)
	for i := 0; i < n.Degree(); i++ {
		e = n.EdgeAt(i)

		// Negative and NaN weights violate the precondition; closed roads are skipped.
		if !(e.Weight >= 0) || e.Weight >= s.opts.ImpassableThreshold {
			continue
		}

		nd = du + e.Weight
		if nd > s.opts.MaxCost {
			continue
		}
		// Strict comparison, no epsilon: equal-cost alternatives keep the first found.
		if !(nd < s.cost(e.To)) {
			continue
		}

		s.best[e.To] = nd
		s.prev[e.To] = n.ID()

		h = 0
		if target, ok := s.g.Node(e.To); ok {
			h = s.opts.Heuristic(target, s.goal)
		}
		s.push(e.To, nd, nd+h)
	}
}

// result rebuilds the start→end path by walking predecessors back from end.
func (s *search) result() Result {
	path := []int{s.end}
	for cur := s.end; cur != s.start; {
		p, ok := s.prev[cur]
		if !ok || len(path) > len(s.prev)+1 {
			// Unreachable for a consistent predecessor table; report no route
			// rather than a truncated path.
			return Result{Explored: s.explored}
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return Result{
		Path:      path,
		TotalDist: s.best[s.end],
		Success:   true,
		Explored:  s.explored,
	}
}
