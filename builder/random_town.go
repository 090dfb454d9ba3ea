// SPDX-License-Identifier: MIT
//
// random_town.go: RandomTown(n) k-nearest-neighbour road network.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes); an RNG is required (else ErrNeedRandSource).
//   • Node i (1..n) is named "Town-i" and placed uniformly in [0,extent)².
//   • Each node is linked to its k nearest other nodes (ties by lower id),
//     k clamped to n-1. A link is a two-way road added once per unordered pair,
//     weight = Euclidean length × detour.
//   • Connectivity is not guaranteed; distant clusters may stay apart.
//
// Complexity:
//   • Time O(n² log n) for the neighbour sort, Space O(n).

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodRandomTown = "RandomTown"
	minTownNodes     = 2
	townNameFmt      = "Town-%d"
)

type point struct {
	id   int
	x, y float64
}

type pair struct{ a, b int }

// RandomTown scatters n locations and links each to its nearest neighbours.
func RandomTown(n int, opts ...Option) (*core.Graph, error) {
	if n < minTownNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTown, n, minTownNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomTown, ErrNeedRandSource)
	}
	k := cfg.neighbours
	if k > n-1 {
		k = n - 1
	}

	// 1) Place nodes; coordinates are drawn in id order for reproducibility.
	pts := make([]point, n)
	g := core.NewGraph(core.WithCapacity(n))
	for i := range pts {
		p := point{id: i + 1, x: cfg.rng.Float64() * cfg.extent, y: cfg.rng.Float64() * cfg.extent}
		pts[i] = p
		g.AddNode(p.id, fmt.Sprintf(townNameFmt, p.id), p.x, p.y)
	}

	// 2) Link each node to its k nearest neighbours, once per unordered pair.
	linked := make(map[pair]struct{}, n*k)
	near := make([]point, 0, n-1)
	for _, p := range pts {
		near = near[:0]
		for _, q := range pts {
			if q.id != p.id {
				near = append(near, q)
			}
		}
		sort.SliceStable(near, func(i, j int) bool {
			di, dj := dist(p, near[i]), dist(p, near[j])
			if di != dj {
				return di < dj
			}
			return near[i].id < near[j].id
		})

		for _, q := range near[:k] {
			key := pair{a: min(p.id, q.id), b: max(p.id, q.id)}
			if _, seen := linked[key]; seen {
				continue
			}
			linked[key] = struct{}{}
			if err := addRoad(g, p.id, q.id, dist(p, q)*cfg.detour); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandomTown, err)
			}
		}
	}

	return g, nil
}

func dist(a, b point) float64 { return math.Hypot(a.x-b.x, a.y-b.y) }
