// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Heuristics, Options, functional options, Result.

package router

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors used as panic values by invalid option constructors.
var (
	// ErrBadMaxCost indicates WithMaxCost received a negative or NaN value.
	ErrBadMaxCost = errors.New("router: MaxCost must be non-negative")

	// ErrBadImpassableThreshold indicates WithImpassableThreshold received a value ≤ 0 or NaN.
	ErrBadImpassableThreshold = errors.New("router: ImpassableThreshold must be positive")
)

// Heuristic estimates the remaining cost from a node to the destination.
// It must return a finite, non-negative value and must not overestimate the
// true remaining cost, or the returned route may not be the cheapest one.
type Heuristic func(from, to *core.Node) float64

// Zero is the disabled heuristic; with it the search is plain Dijkstra.
func Zero(_, _ *core.Node) float64 { return 0 }

// Euclidean returns the straight-line distance between the two nodes' coordinates.
func Euclidean(from, to *core.Node) float64 {
	return math.Hypot(from.X()-to.X(), from.Y()-to.Y())
}

// Options configures a search.
//
// Heuristic           – remaining-cost estimate; nil behaves like Zero.
// MaxCost             – paths whose total cost would exceed this are not extended.
// ImpassableThreshold – edges with weight ≥ this value are skipped.
type Options struct {
	Heuristic           Heuristic
	MaxCost             float64
	ImpassableThreshold float64
}

// Option is a functional option for configuring a Router.
type Option func(*Options)

// DefaultOptions returns Dijkstra semantics with no cost cap and no closed roads.
//
// Defaults:
//   - Heuristic:           Zero.
//   - MaxCost:             +Inf (no cap).
//   - ImpassableThreshold: +Inf (every edge passable).
func DefaultOptions() Options {
	return Options{
		Heuristic:           Zero,
		MaxCost:             math.Inf(1),
		ImpassableThreshold: math.Inf(1),
	}
}

// WithHeuristic sets the heuristic; nil restores Zero.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			h = Zero
		}
		o.Heuristic = h
	}
}

// WithAStar enables A* with the Euclidean heuristic.
func WithAStar() Option {
	return WithHeuristic(Euclidean)
}

// WithMaxCost caps the total cost of explored paths. A destination farther
// than c is reported as unreachable.
// Panics with ErrBadMaxCost if c is negative or NaN.
func WithMaxCost(c float64) Option {
	if c < 0 || math.IsNaN(c) {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) { o.MaxCost = c }
}

// WithImpassableThreshold treats edges with weight ≥ t as closed roads.
// Panics with ErrBadImpassableThreshold if t ≤ 0 or NaN.
func WithImpassableThreshold(t float64) Option {
	if t <= 0 || math.IsNaN(t) {
		panic(ErrBadImpassableThreshold.Error())
	}

	return func(o *Options) { o.ImpassableThreshold = t }
}

// Result is the outcome of one route query. It is built fresh by every call
// and owned by the caller.
type Result struct {
	// Path lists node ids from start to end inclusive; empty when Success is false.
	Path []int

	// TotalDist is the sum of traversed edge weights; 0 when Success is false.
	TotalDist float64

	// Success reports whether a route was found.
	Success bool

	// Explored counts nodes whose outgoing edges were relaxed.
	Explored int
}
