package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
)

// BenchmarkFindPath_Open measures a corner-to-corner search on an open grid.
func BenchmarkFindPath_Open(b *testing.B) {
	const n = 200
	e, err := astar.NewEngine(n, n, astar.Coordinate{}, astar.Coordinate{Row: n - 1, Col: n - 1})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.FindPath()
	}
}

// BenchmarkFindPath_Obstacles measures search on a 200×200 grid with 25% blocks.
func BenchmarkFindPath_Obstacles(b *testing.B) {
	const n = 200
	start, goal := astar.Coordinate{}, astar.Coordinate{Row: n - 1, Col: n - 1}
	grid := randomGrid(rand.New(rand.NewSource(7)), n, n, 0.25, start, goal)
	e, err := astar.NewEngineFromGrid(grid, start, goal)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.FindPath()
	}
}
