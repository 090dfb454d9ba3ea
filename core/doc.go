// Package core provides the in-memory road-network store used by the router.
//
// A Graph G = (V,E) maps caller-assigned integer ids to Node records. Each Node
// owns its outgoing adjacency list, so a single keyed lookup yields both the
// node attributes and the roads leaving it.
//
// Model:
//
//   - Node: id, display name (not unique), planar coordinates (x, y).
//     Coordinates feed admissible heuristics only; they never affect edge costs.
//   - Edge: a directed arc to a target id with a real-valued weight.
//     A two-way road is two independent edges; the store never mirrors edges.
//   - Edge targets may reference ids that were never added ("dangling").
//     Readers must check Node(id) before dereferencing a target.
//   - Edge sources must exist: AddEdge from an unknown id returns an error
//     wrapping ErrNodeNotFound instead of silently dropping the edge.
//
// Overwrite semantics:
//
//	AddNode(id, ...) on an existing id replaces the name and coordinates AND
//	resets that node's adjacency to empty. Edges from other nodes into id are
//	untouched, since they live on those other nodes.
//
// Core Methods:
//
//	AddNode(id int, name string, x, y float64)           // O(1) amortized
//	AddEdge(from, to int, weight float64) error          // O(1) amortized
//	Node(id int) (*Node, bool)                           // O(1), no allocation
//	Nodes() View                                         // O(1), read-only view
//	FindIDByName(name string, opts ...FindOption) int    // O(V), NotFound if absent
//	Stats() Stats                                        // O(V+E)
//	Validate(g *Graph) error                             // O(V+E), joined findings
//
// Concurrency:
//
//	Graph carries no locks. Build it completely (AddNode/AddEdge) before any
//	query. Once built, every read path (Node, Nodes, View methods, Node
//	accessors) neither allocates shared state nor mutates anything, so any
//	number of goroutines may route over the same Graph in parallel.
//
// Errors:
//
//	ErrNodeNotFound   - AddEdge referenced an unknown source id.
//	ErrDanglingEdge   - Validate found an edge whose target was never added.
//	ErrNegativeWeight - Validate found an edge with a negative weight.
package core
