// SPDX-License-Identifier: MIT
//
// grid.go: Grid(rows, cols, spacing) street grid.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes); spacing > 0 (else ErrBadSpacing).
//   • Node (r,c) gets id r*cols + c + 1, name "r,c", coordinates (c*spacing, r*spacing).
//   • Each cell links to its right and bottom neighbour in both directions,
//     weight = spacing × detour.
//
// Determinism:
//   • Nodes are added row-major; for each cell the right road is emitted
//     before the bottom road, forward edge before reverse edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	gridNameFmt = "%d,%d"
)

// Grid builds a rows×cols orthogonal street grid.
func Grid(rows, cols int, spacing float64, opts ...Option) (*core.Graph, error) {
	// 1) Validate parameters before touching any graph.
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
	}
	if !(spacing > 0) {
		return nil, fmt.Errorf("%s: spacing=%g: %w", methodGrid, spacing, ErrBadSpacing)
	}
	cfg := newConfig(opts...)

	id := func(r, c int) int { return r*cols + c + 1 }

	// 2) Nodes in row-major order.
	g := core.NewGraph(core.WithCapacity(rows * cols))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNode(id(r, c), fmt.Sprintf(gridNameFmt, r, c), float64(c)*spacing, float64(r)*spacing)
		}
	}

	// 3) Two-way roads to the right and bottom neighbours.
	w := spacing * cfg.detour
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				if err := addRoad(g, u, id(r, c+1), w); err != nil {
					return nil, fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
			if r+1 < rows {
				if err := addRoad(g, u, id(r+1, c), w); err != nil {
					return nil, fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}
	}

	return g, nil
}

// addRoad inserts u→v and v→u with weight w.
func addRoad(g *core.Graph, u, v int, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return err
	}

	return g.AddEdge(v, u, w)
}
