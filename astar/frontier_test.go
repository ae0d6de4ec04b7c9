package astar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestFrontier returns a frontier over n nodes whose F and G come from fg.
func newTestFrontier(fg [][2]int) (*frontier, []Node) {
	nodes := make([]Node, len(fg))
	for i, v := range fg {
		nodes[i] = Node{Row: 0, Col: i, F: v[0], G: v[1]}
	}
	return newFrontier(nodes), nodes
}

func drain(f *frontier) []int {
	var out []int
	for f.len() > 0 {
		out = append(out, f.pop())
	}
	return out
}

// TestFrontier_Order verifies F, then G, then insertion order.
func TestFrontier_Order(t *testing.T) {
	f, _ := newTestFrontier([][2]int{
		{50, 20}, // 0
		{40, 30}, // 1
		{40, 10}, // 2
		{40, 10}, // 3, ties with 2, pushed later
		{60, 0},  // 4
	})
	for _, idx := range []int{4, 0, 3, 1, 2} {
		f.push(idx)
	}
	require.Equal(t, []int{3, 2, 1, 0, 4}, drain(f))
}

// TestFrontier_Fix verifies decrease-key re-sorts a queued node.
func TestFrontier_Fix(t *testing.T) {
	f, nodes := newTestFrontier([][2]int{{10, 0}, {20, 0}, {30, 0}})
	f.push(0)
	f.push(1)
	f.push(2)

	nodes[2].F = 5
	f.fix(2)
	require.Equal(t, 2, f.pop())

	// Equal keys after a fix: the re-keyed node counts as newest.
	nodes[1].F = 10
	f.fix(1)
	require.Equal(t, []int{0, 1}, drain(f))
}

// TestFrontier_ContainsRemove covers membership and removal.
func TestFrontier_ContainsRemove(t *testing.T) {
	f, _ := newTestFrontier([][2]int{{1, 0}, {2, 0}, {3, 0}})
	f.push(0)
	f.push(2)
	require.True(t, f.contains(0))
	require.False(t, f.contains(1))

	f.remove(0)
	f.remove(1) // absent: no-op
	require.False(t, f.contains(0))
	require.Equal(t, 1, f.len())
	require.Equal(t, 2, f.pop())
	require.False(t, f.contains(2))
}

// TestFrontier_Reset empties the queue and clears positions.
func TestFrontier_Reset(t *testing.T) {
	f, _ := newTestFrontier([][2]int{{1, 0}, {2, 0}})
	f.push(0)
	f.push(1)
	f.reset()
	require.Zero(t, f.len())
	require.False(t, f.contains(0))
	require.False(t, f.contains(1))
	f.push(1)
	require.Equal(t, 1, f.pop())
}

// TestFrontier_Panics checks that misuse fails loudly.
func TestFrontier_Panics(t *testing.T) {
	f, _ := newTestFrontier([][2]int{{1, 0}, {2, 0}})
	f.push(0)
	require.Panics(t, func() { f.push(0) })
	require.Panics(t, func() { f.fix(1) })
}
