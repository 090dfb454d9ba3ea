// SPDX-License-Identifier: MIT
// Package builder generates deterministic synthetic road networks.
//
// The generated graphs feed demos (`lvroute --demo`), tests and benchmarks.
// Every road is two directed edges, and every edge weight is the
// straight-line length of the road times a detour factor ≥ 1, so the
// router's Euclidean heuristic stays admissible on any generated graph.
//
// Constructors:
//
//	Grid(rows, cols, spacing, opts...)  – orthogonal street grid, ids row-major from 1.
//	RandomTown(n, opts...)              – n scattered locations, each linked to its
//	                                      k nearest neighbours. Requires WithSeed/WithRand.
//
// Options (panic on meaningless values, like the rest of the module):
//
//	WithSeed(seed) / WithRand(r)  – randomness source for RandomTown.
//	WithDetour(f)                 – weight multiplier, f ≥ 1.
//	WithNeighbours(k)             – links per location in RandomTown, k ≥ 1.
//	WithExtent(size)              – side of the square RandomTown scatters into.
//
// Errors:
//
//	Constructors never panic; they return wrapped sentinels (ErrTooFewNodes,
//	ErrBadSpacing, ErrNeedRandSource). Check with errors.Is.
//
// Determinism:
//
//	Same parameters, options and seed ⇒ identical node order, coordinates
//	and edge order.
package builder
