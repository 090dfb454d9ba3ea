// SPDX-License-Identifier: MIT
//
// Package visual renders a core.Graph and a route as plain text.
//
// ASCII draws every location on a character grid scaled to the bounding box
// of the graph; route nodes are drawn over plain locations:
//
//	+--------------------------------------------------+
//	|X                                                 |
//	|                     O                            |
//	|O                                                O|
//	+--------------------------------------------------+
//	( X = Location, O = Your Route )
//
// Y grows upward on the map and downward on the terminal, so rows are flipped.
// When every node shares one x (or one y) that axis collapses to the centre
// column (or row).
package visual

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/router"
)

const (
	DefaultWidth  = 50
	DefaultHeight = 20

	// Legend is written after the bottom border.
	Legend = "( X = Location, O = Your Route )"

	markLocation = 'X'
	markRoute    = 'O'
)

// ErrBadSize is the panic value of WithSize for non-positive dimensions.
var ErrBadSize = errors.New("visual: width and height must be ≥ 1")

// Option configures ASCII.
type Option func(*canvas)

// WithSize sets the grid dimensions in characters. Panics if either is < 1.
func WithSize(width, height int) Option {
	if width < 1 || height < 1 {
		panic(ErrBadSize.Error())
	}

	return func(c *canvas) { c.w, c.h = width, height }
}

type canvas struct {
	w, h                   int
	minX, maxX, minY, maxY float64
	rows                   [][]byte
}

// ASCII writes the map of g with path highlighted to w. Path ids missing
// from g are ignored. An empty (or nil) graph draws only the border lines.
func ASCII(w io.Writer, g *core.Graph, path []int, opts ...Option) error {
	c := &canvas{w: DefaultWidth, h: DefaultHeight}
	for _, opt := range opts {
		opt(c)
	}
	bw := bufio.NewWriter(w)
	border := "+" + strings.Repeat("-", c.w) + "+\n"

	if g == nil || g.Len() == 0 {
		bw.WriteString(border)
		bw.WriteString(border)
		return bw.Flush()
	}

	// 1) Bounding box.
	c.minX, c.minY = math.Inf(1), math.Inf(1)
	c.maxX, c.maxY = math.Inf(-1), math.Inf(-1)
	g.Nodes().Range(func(n *core.Node) bool {
		c.minX, c.maxX = math.Min(c.minX, n.X()), math.Max(c.maxX, n.X())
		c.minY, c.maxY = math.Min(c.minY, n.Y()), math.Max(c.maxY, n.Y())
		return true
	})

	// 2) Plot locations, then the route on top.
	c.rows = make([][]byte, c.h)
	for i := range c.rows {
		c.rows[i] = []byte(strings.Repeat(" ", c.w))
	}
	g.Nodes().Range(func(n *core.Node) bool {
		c.plot(n, markLocation)
		return true
	})
	for _, id := range path {
		if n, ok := g.Node(id); ok {
			c.plot(n, markRoute)
		}
	}

	// 3) Frame.
	bw.WriteString(border)
	for _, row := range c.rows {
		bw.WriteByte('|')
		bw.Write(row)
		bw.WriteString("|\n")
	}
	bw.WriteString(border)
	bw.WriteString(Legend + "\n")

	return bw.Flush()
}

func (c *canvas) plot(n *core.Node, mark byte) {
	col := scale(n.X(), c.minX, c.maxX, c.w)
	row := c.h - 1 - scale(n.Y(), c.minY, c.maxY, c.h)
	c.rows[row][col] = mark
}

// scale maps v in [lo,hi] onto 0..cells-1, truncating. A zero-width range
// maps to the middle cell, as does a non-finite range or value.
func scale(v, lo, hi float64, cells int) int {
	f := (v - lo) / (hi - lo)
	if !(hi > lo) || math.IsNaN(f) || math.IsInf(hi-lo, 0) {
		return (cells - 1) / 2
	}

	return min(max(int(f*float64(cells-1)), 0), cells-1)
}

// Describe writes a one-line route summary such as
// "Home -> Market -> Park (total 4.00)", or "No route found." when res failed.
// Ids without a node in g are shown as "#id".
func Describe(w io.Writer, g *core.Graph, res router.Result) error {
	if !res.Success {
		_, err := io.WriteString(w, "No route found.\n")
		return err
	}

	names := make([]string, len(res.Path))
	for i, id := range res.Path {
		names[i] = fmt.Sprintf("#%d", id)
		if g == nil {
			continue
		}
		if n, ok := g.Node(id); ok {
			names[i] = n.Name()
		}
	}
	_, err := fmt.Fprintf(w, "%s (total %.2f)\n", strings.Join(names, " -> "), res.TotalDist)

	return err
}
