// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// BenchmarkAddEdge measures appending edges to a single hub node.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	g.AddNode(0, "Hub", 0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(0, i, 1)
	}
}

// BenchmarkNode measures keyed lookup on a 10k-node catalog.
func BenchmarkNode(b *testing.B) {
	const size = 10000
	g := core.NewGraph(core.WithCapacity(size))
	for i := 0; i < size; i++ {
		g.AddNode(i, "n", 0, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Node(i % size)
	}
}
