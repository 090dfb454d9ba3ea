// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: Min-heap of frontier entries for container/heap.

package router

// entry is a frontier record: a node, the cost-so-far it was pushed with,
// and its priority (cost + heuristic). seq orders equal priorities FIFO.
type entry struct {
	id       int
	cost     float64
	priority float64
	seq      uint64
}

// frontier is a min-heap of entries ordered by (priority, seq).
// Outdated entries stay in the heap and are discarded when popped.
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by push sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
