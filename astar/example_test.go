// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_FindPath walks the main diagonal of an open 5×5 grid.
// Four diagonal moves at cost 14 give a total of 56.
func ExampleEngine_FindPath() {
	e, err := astar.NewEngine(5, 5, astar.Coordinate{Row: 0, Col: 0}, astar.Coordinate{Row: 4, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path := e.FindPath()
	cost, _ := e.PathCost(path)
	fmt.Println(path)
	fmt.Println("cost:", cost)

	// Output:
	// [(0,0) (1,1) (2,2) (3,3) (4,4)]
	// cost: 56
}

////////////////////////////////////////////////////////////////////////////////
// Example: SetBlocked
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_SetBlocked routes around a wall in row 1 that leaves a gap
// only at the right edge.
//
//	S . . .
//	# # # .
//	G . . .
func ExampleEngine_SetBlocked() {
	e, _ := astar.NewEngine(3, 4, astar.Coordinate{Row: 0, Col: 0}, astar.Coordinate{Row: 2, Col: 0})
	if err := e.SetBlocked(
		astar.Coordinate{Row: 1, Col: 0},
		astar.Coordinate{Row: 1, Col: 1},
		astar.Coordinate{Row: 1, Col: 2},
	); err != nil {
		fmt.Println("error:", err)
		return
	}

	path := e.FindPath()
	cost, _ := e.PathCost(path)
	fmt.Println("cells:", len(path), "cost:", cost)

	// Output:
	// cells: 7 cost: 68
}

////////////////////////////////////////////////////////////////////////////////
// Example: NewEngineFromGrid
////////////////////////////////////////////////////////////////////////////////

// ExampleNewEngineFromGrid builds an engine from a matrix where 0 marks a
// blocked cell, then shows that a sealed goal yields an empty path.
func ExampleNewEngineFromGrid() {
	grid := [][]int{
		{1, 1, 1},
		{1, 0, 0},
		{1, 0, 1},
	}
	e, err := astar.NewEngineFromGrid(grid, astar.Coordinate{Row: 0, Col: 0}, astar.Coordinate{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path := e.FindPath()
	fmt.Println("reachable:", len(path) > 0)

	// Output:
	// reachable: false
}
