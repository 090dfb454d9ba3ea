// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge-level queries.

package core

import "fmt"

// AddEdge appends a directed edge from → to with the given weight to the
// adjacency list of from.
//
// Steps:
//  1. Look up from; unknown ⇒ error wrapping ErrNodeNotFound.
//  2. Append Edge{To: to, Weight: weight}. The target is not checked and
//     the weight is not validated; self-loops and parallel edges are kept.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	n, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: source %d (edge %d→%d)", ErrNodeNotFound, from, from, to)
	}
	n.edges = append(n.edges, Edge{To: to, Weight: weight})

	return nil
}

// EdgeCount returns the total number of directed edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.edges)
	}

	return total
}
