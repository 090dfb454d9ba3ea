// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode, Node, Len, FindIDByName, Resolve.
// Determinism:
//   - FindIDByName scans in first-insertion order, so the "first match" is stable.

package core

import (
	"strconv"
	"strings"
)

// AddNode inserts the node id, or overwrites it if already present.
//
// Implementation:
//   - Stage 1: Record id in the insertion order if it is new.
//   - Stage 2: Store a fresh Node record with an empty adjacency list.
//
// Behavior highlights:
//   - Overwrite is a replace, not a merge: the previous outgoing edges of id are dropped.
//   - Edges into id from other nodes survive, since they are stored on those nodes.
//   - Any id value is accepted, including negative ones.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id int, name string, x, y float64) {
	if _, exists := g.nodes[id]; !exists {
		g.order = append(g.order, id)
	}
	g.nodes[id] = &Node{id: id, name: name, x: x, y: y}
}

// Node returns the node with the given id and true, or nil and false.
// Pure lookup: no allocation, no mutation.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// FindOption configures a FindIDByName lookup.
type FindOption func(*findOptions)

type findOptions struct {
	normalize func(string) string
}

// WithNormalizer applies fn to both the query and each candidate name before
// the exact comparison. Use Fold for case-insensitive lookups.
func WithNormalizer(fn func(string) string) FindOption {
	return func(o *findOptions) { o.normalize = fn }
}

// Fold lower-cases s and trims surrounding white space.
// It is the usual normalizer for names typed by users.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FindIDByName returns the id of the first node, in insertion order, whose
// name equals name exactly (after optional normalization), or NotFound.
//
// Complexity: O(V) time, O(1) space.
func (g *Graph) FindIDByName(name string, opts ...FindOption) int {
	var cfg findOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	want := name
	if cfg.normalize != nil {
		want = cfg.normalize(name)
	}

	var (
		n    *Node
		have string
	)
	for _, id := range g.order {
		n = g.nodes[id]
		have = n.name
		if cfg.normalize != nil {
			have = cfg.normalize(have)
		}
		if have == want {
			return id
		}
	}

	return NotFound
}

// Resolve maps a user reference to a node id: ref is first tried as the
// decimal id of an existing node, then as a name under Fold.
// It returns NotFound if neither matches.
func (g *Graph) Resolve(ref string) int {
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		if _, ok := g.nodes[id]; ok {
			return id
		}
	}

	return g.FindIDByName(ref, WithNormalizer(Fold))
}
