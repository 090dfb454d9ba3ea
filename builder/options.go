// SPDX-License-Identifier: MIT
//
// options.go: sentinel errors, configuration and functional options.

package builder

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned (wrapped) by constructors.
var (
	// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrBadSpacing indicates a non-positive grid spacing.
	ErrBadSpacing = errors.New("builder: spacing must be positive")

	// ErrNeedRandSource indicates a stochastic constructor was called without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")
)

// Deterministic defaults.
const (
	defaultDetour     = 1.0
	defaultNeighbours = 3
	defaultExtent     = 100.0
)

// config aggregates all knobs used by constructors.
type config struct {
	rng        *rand.Rand
	detour     float64
	neighbours int
	extent     float64
}

// Option customizes a constructor.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		detour:     defaultDetour,
		neighbours: defaultNeighbours,
		extent:     defaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a seeded *rand.Rand for reproducible output.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithDetour multiplies every road's straight-line length by f.
// Panics if f < 1, which would make the Euclidean heuristic inadmissible.
func WithDetour(f float64) Option {
	if !(f >= 1) {
		panic("builder: WithDetour requires f ≥ 1")
	}

	return func(c *config) { c.detour = f }
}

// WithNeighbours sets how many nearest locations RandomTown links each node to.
// Panics if k < 1.
func WithNeighbours(k int) Option {
	if k < 1 {
		panic("builder: WithNeighbours requires k ≥ 1")
	}

	return func(c *config) { c.neighbours = k }
}

// WithExtent sets the side length of the square RandomTown scatters into.
// Panics if size ≤ 0.
func WithExtent(size float64) Option {
	if !(size > 0) {
		panic("builder: WithExtent requires size > 0")
	}

	return func(c *config) { c.extent = size }
}
