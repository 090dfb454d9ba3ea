// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors, GraphOption, NewGraph.

package core

import "errors"

// NotFound is returned by FindIDByName when no node carries the requested name.
const NotFound = -1

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a source node that was never added.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDanglingEdge indicates an edge whose target id is not present in the graph.
	ErrDanglingEdge = errors.New("core: edge target not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is a directed connection from its owning Node to the node with id To.
type Edge struct {
	// To is the target node id. It may reference a node that does not exist.
	To int

	// Weight is the travel cost of the edge. Not validated by the store.
	Weight float64
}

// Node is a named location with planar coordinates and its outgoing roads.
//
// Nodes are owned by their Graph. Callers receive *Node values that only
// expose read accessors, so a Node cannot be altered outside the store.
type Node struct {
	id    int
	name  string
	x, y  float64
	edges []Edge
}

// ID returns the caller-assigned identifier.
func (n *Node) ID() int { return n.id }

// Name returns the display name.
func (n *Node) Name() string { return n.name }

// X returns the horizontal coordinate.
func (n *Node) X() float64 { return n.x }

// Y returns the vertical coordinate.
func (n *Node) Y() float64 { return n.y }

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return len(n.edges) }

// EdgeAt returns the i-th outgoing edge in insertion order.
// Panics if i is out of range, like a slice index.
func (n *Node) EdgeAt(i int) Edge { return n.edges[i] }

// RangeEdges calls fn for each outgoing edge in insertion order until fn
// returns false. It does not allocate.
func (n *Node) RangeEdges(fn func(e Edge) bool) {
	for _, e := range n.edges {
		if !fn(e) {
			return
		}
	}
}

// Edges returns a copy of the outgoing edges in insertion order.
// Complexity: O(deg) time and space.
func (n *Node) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Graph is the in-memory road network: id → Node, each Node carrying its
// own adjacency list.
//
// order records ids in first-insertion order. Re-adding an id keeps its
// original position, which gives FindIDByName and View.Range a stable,
// reproducible iteration order independent of Go map randomization.
type Graph struct {
	nodes map[int]*Node
	order []int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for about n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.nodes = make(map[int]*Node, n)
		g.order = make([]int, 0, n)
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{nodes: make(map[int]*Node)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
