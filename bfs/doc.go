// Package bfs provides breadth-first search over a core.Graph, counting
// roads instead of summing distances.
//
// What
//
//   - Explore locations in non-decreasing hop count from a start location.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  location id → number of roads from start
//   - Parent: location id → predecessor in the BFS tree
//   - Reachability helpers for map checks: Unreachable lists every location
//     the start cannot reach.
//
// Why
//
//   - A road map that is not strongly connected makes some route queries fail.
//     Unreachable finds those locations in O(V + E) before any user asks.
//   - Fewest-stop routes (PathTo) for itineraries where each stop has a cost.
//
// Determinism
//
//	Roads are followed in insertion order, so the visit sequence of a graph
//	built the same way is reproducible.
//
// Dangling roads
//
//	A road to an id with no node is never followed; such ids never appear in
//	the result.
//
// Complexity (V = locations, E = roads)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, home,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(func(from int, e core.Edge) bool { return e.Weight < 50 }),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartNotFound     if the start location does not exist.
//   - ErrOptionViolation   for invalid options (e.g. negative MaxDepth).
//   - Context errors and wrapped OnVisit errors.
package bfs
