// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics over a built graph: Stats and Validate.
// Policy:
//   - No mutation; both walk the catalog once.
//   - Validate reports findings, it never repairs them.

package core

import (
	"errors"
	"fmt"
)

// Stats is a snapshot of catalog sizes and suspicious-edge counters.
type Stats struct {
	Nodes          int // number of nodes
	Edges          int // number of directed edges
	SelfLoops      int // edges whose target is their own source
	DanglingEdges  int // edges whose target id is absent
	NegativeWeight int // edges with weight < 0
}

// Stats walks the graph once and returns its counters.
// Complexity: O(V+E) time, O(1) space.
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.nodes)}
	for _, n := range g.nodes {
		s.Edges += len(n.edges)
		for _, e := range n.edges {
			if e.To == n.id {
				s.SelfLoops++
			}
			if _, ok := g.nodes[e.To]; !ok {
				s.DanglingEdges++
			}
			if e.Weight < 0 {
				s.NegativeWeight++
			}
		}
	}

	return s
}

// Validate reports every dangling target and negative weight in g as a
// joined error; each part wraps ErrDanglingEdge or ErrNegativeWeight.
// Returns nil for a clean graph. Findings are listed in insertion order.
//
// The router tolerates dangling targets and never calls Validate; loaders
// and the CLI use it to surface data problems as warnings.
//
// Complexity: O(V+E).
func Validate(g *Graph) error {
	if g == nil {
		return nil
	}

	var errs []error
	g.Nodes().Range(func(n *Node) bool {
		for _, e := range n.edges {
			if _, ok := g.nodes[e.To]; !ok {
				errs = append(errs, fmt.Errorf("%w: %d→%d", ErrDanglingEdge, n.id, e.To))
			}
			if e.Weight < 0 {
				errs = append(errs, fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, n.id, e.To, e.Weight))
			}
		}

		return true
	})

	return errors.Join(errs...)
}
