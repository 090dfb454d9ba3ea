// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import "github.com/katalvlaran/lvroute/core"

// Common node ids used across core tests.
const (
	IDHome   = 1
	IDMarket = 2
	IDPark   = 3
	IDGhost  = 4 // never added; used as a dangling target
)

// newTriangle builds Home(0,0) → Market(1,0) → Park(2,0) with a dangling
// Home → Ghost edge.
func newTriangle() *core.Graph {
	g := core.NewGraph()
	g.AddNode(IDHome, "Home", 0, 0)
	g.AddNode(IDMarket, "Market", 1, 0)
	g.AddNode(IDPark, "Park", 2, 0)
	_ = g.AddEdge(IDHome, IDMarket, 1.0)
	_ = g.AddEdge(IDMarket, IDPark, 1.0)
	_ = g.AddEdge(IDHome, IDGhost, 10.0)

	return g
}
