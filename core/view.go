// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only view over the node catalog.
// Determinism:
//   - Range walks nodes in first-insertion order; IDs returns ids ascending.

package core

import "sort"

// View is a read-only window onto a Graph's id → Node mapping.
//
// It exposes no mutating operation, and the *Node values it yields only have
// read accessors. A View reflects later AddNode/AddEdge calls on its Graph.
type View struct {
	g *Graph
}

// Nodes returns the read-only view of all nodes.
func (g *Graph) Nodes() View { return View{g: g} }

// Len returns the number of nodes.
func (v View) Len() int { return len(v.g.nodes) }

// Get returns the node with the given id, like Graph.Node.
func (v View) Get(id int) (*Node, bool) { return v.g.Node(id) }

// Has reports whether id is present.
func (v View) Has(id int) bool {
	_, ok := v.g.nodes[id]

	return ok
}

// Range calls fn for each node in first-insertion order until fn returns false.
// It does not allocate.
func (v View) Range(fn func(n *Node) bool) {
	for _, id := range v.g.order {
		if !fn(v.g.nodes[id]) {
			return
		}
	}
}

// IDs returns a fresh, ascending slice of all node ids.
// Complexity: O(V log V).
func (v View) IDs() []int {
	ids := make([]int, len(v.g.order))
	copy(ids, v.g.order)
	sort.Ints(ids)

	return ids
}
