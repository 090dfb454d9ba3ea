// SPDX-License-Identifier: MIT
// Package core_test verifies node lifecycle, edge insertion and lookup contracts.

package core_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

func TestAddNode_StoresAttributes(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(-7, "Harbor", 3.5, -1.25)

	n, ok := g.Node(-7)
	require.True(t, ok, "negative ids are valid")
	assert.Equal(t, -7, n.ID())
	assert.Equal(t, "Harbor", n.Name())
	assert.Equal(t, 3.5, n.X())
	assert.Equal(t, -1.25, n.Y())
	assert.Zero(t, n.Degree())
	assert.Equal(t, 1, g.Len())
}

func TestAddNode_OverwriteClearsAdjacency(t *testing.T) {
	g := newTriangle()

	home, _ := g.Node(IDHome)
	require.Equal(t, 2, home.Degree())

	g.AddNode(IDHome, "New Home", 5, 5)

	home, ok := g.Node(IDHome)
	require.True(t, ok)
	assert.Equal(t, "New Home", home.Name())
	assert.Equal(t, 5.0, home.X())
	assert.Zero(t, home.Degree(), "re-adding must reset, not merge, outgoing edges")
	assert.Equal(t, 3, g.Len(), "overwrite must not add a node")

	// Edges into Home from other nodes are stored on those nodes and survive.
	g.AddNode(IDPark, "Park", 2, 0)
	require.NoError(t, g.AddEdge(IDPark, IDHome, 4))
	g.AddNode(IDHome, "Home", 0, 0)
	park, _ := g.Node(IDPark)
	require.Equal(t, 1, park.Degree())
	assert.Equal(t, core.Edge{To: IDHome, Weight: 4}, park.EdgeAt(0))
}

func TestAddEdge_UnknownSource(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(IDHome, "Home", 0, 0)

	err := g.AddEdge(99, IDHome, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	assert.Contains(t, err.Error(), "99")
	assert.Zero(t, g.EdgeCount(), "a rejected edge must not be stored anywhere")
}

func TestAddEdge_DanglingTargetAccepted(t *testing.T) {
	g := newTriangle()

	home, _ := g.Node(IDHome)
	require.Equal(t, 2, home.Degree())
	assert.Equal(t, core.Edge{To: IDGhost, Weight: 10}, home.EdgeAt(1))

	_, ok := g.Node(IDGhost)
	assert.False(t, ok, "dangling target must not be auto-created")
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1, "Loop", 0, 0)
	require.NoError(t, g.AddEdge(1, 1, 0.5))

	n, _ := g.Node(1)
	require.Equal(t, 1, n.Degree(), "exactly one neighbor entry")
	assert.Equal(t, core.Edge{To: 1, Weight: 0.5}, n.EdgeAt(0))
}

func TestAddEdge_NegativeWeightStoredAsGiven(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1, "A", 0, 0)
	require.NoError(t, g.AddEdge(1, 2, -3))

	n, _ := g.Node(1)
	assert.Equal(t, -3.0, n.EdgeAt(0).Weight)
}

func TestNode_EdgesReturnsCopy(t *testing.T) {
	g := newTriangle()
	home, _ := g.Node(IDHome)

	edges := home.Edges()
	edges[0].Weight = 1000

	assert.Equal(t, 1.0, home.EdgeAt(0).Weight, "mutating the copy must not reach the store")
}

func TestNode_RangeEdgesStopsEarly(t *testing.T) {
	g := newTriangle()
	home, _ := g.Node(IDHome)

	var seen []int
	home.RangeEdges(func(e core.Edge) bool {
		seen = append(seen, e.To)
		return false
	})
	assert.Equal(t, []int{IDMarket}, seen)
}

func TestNode_Missing(t *testing.T) {
	g := newTriangle()
	n, ok := g.Node(12345)
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestFindIDByName(t *testing.T) {
	g := newTriangle()
	g.AddNode(10, "Market", 9, 9) // duplicate name added later

	assert.Equal(t, IDMarket, g.FindIDByName("Market"), "first match in insertion order wins")
	assert.Equal(t, core.NotFound, g.FindIDByName("market"), "matching is exact by default")
	assert.Equal(t, core.NotFound, g.FindIDByName("Mark"), "no fuzzy matching")
	assert.Equal(t, IDMarket, g.FindIDByName("  MARKET ", core.WithNormalizer(core.Fold)))
	assert.Equal(t, core.NotFound, core.NewGraph().FindIDByName("anything"))
}

func TestFindIDByName_OverwriteKeepsPosition(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(5, "Depot", 0, 0)
	g.AddNode(6, "Depot", 0, 0)
	g.AddNode(5, "Depot", 1, 1) // overwrite keeps id 5 ahead of 6

	assert.Equal(t, 5, g.FindIDByName("Depot"))
}

func TestResolve(t *testing.T) {
	g := newTriangle()
	g.AddNode(42, "7", 0, 0) // a name that looks like an id

	assert.Equal(t, IDPark, g.Resolve("3"))
	assert.Equal(t, IDPark, g.Resolve(" park "))
	assert.Equal(t, 42, g.Resolve("7"), "unknown id falls back to the name")
	assert.Equal(t, 42, g.Resolve("42"))
	assert.Equal(t, core.NotFound, g.Resolve(strconv.Itoa(IDGhost)), "dangling target is not a node")
	assert.Equal(t, core.NotFound, g.Resolve(""))
}

func TestWithCapacity(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(16))
	g.AddNode(1, "A", 0, 0)
	assert.Equal(t, 1, g.Len())

	assert.NotPanics(t, func() { core.NewGraph(core.WithCapacity(-1)).AddNode(1, "A", 0, 0) })
}
