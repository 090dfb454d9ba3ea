// Package router computes minimum-cost routes over a core.Graph.
//
// Overview:
//
//   - One search procedure covers both Dijkstra and A*: the frontier is
//     ordered by cost-so-far + h(node, end), and h is a pluggable Heuristic.
//     With the Zero heuristic (default) the search is Dijkstra's algorithm;
//     with Euclidean (WithAStar) it is A* guided by straight-line distance.
//   - The search stops as soon as the end node is popped from the frontier.
//   - Stale frontier entries (pushed before a cheaper relaxation) are
//     recognized by comparing their recorded cost with the best-known cost
//     and skipped, so no explicit visited set is kept ("lazy decrease-key").
//
// Heuristic admissibility:
//
//	Euclidean never overestimates only if every edge weight is at least the
//	straight-line distance between its endpoints' coordinates. The router
//	does not check this; it is the caller's responsibility.
//
// Result conventions:
//
//   - Success: Path lists ids from start to end inclusive, TotalDist is the
//     sum of traversed edge weights.
//   - No route: Success == false, empty Path, TotalDist == 0. "No route" is a
//     normal outcome and is never reported as an error. The internal +Inf
//     "not reached" sentinel never appears in a Result.
//   - start == end: Success, Path == [start], TotalDist == 0, without searching.
//   - end absent from the graph, start absent, or nil graph: no route.
//
// Tolerated malformed input:
//
//   - Edges whose target was never added are pushed like any other
//     neighbor and skipped when popped.
//   - Edges with a negative or NaN weight break the non-negativity
//     precondition and are ignored, so the search always terminates.
//
// Options:
//
//   - WithHeuristic(h) / WithAStar(): choose the heuristic.
//   - WithMaxCost(c): never extend a path beyond total cost c.
//   - WithImpassableThreshold(t): treat edges with weight ≥ t as closed roads.
//
// Determinism:
//
//	Entries with equal priority pop in push order (FIFO), and neighbors are
//	relaxed in adjacency insertion order. Equal-cost alternatives keep the
//	first one discovered, since relaxation uses a strict "<" without epsilon.
//	Repeated calls with the same graph and arguments return identical results.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with a binary heap and lazy decrease-key.
//   - Space: O(V + E) for the cost and predecessor tables and the frontier.
//
// Thread safety:
//
//	A Router holds only immutable options; each call allocates private
//	working state. Any number of goroutines may call Route concurrently over
//	the same Graph as long as nobody mutates that Graph meanwhile.
package router
