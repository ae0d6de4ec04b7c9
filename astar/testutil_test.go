package astar_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gridpath/astar"
)

// referenceCost computes the optimal start→goal cost by exhaustive
// relaxation over every cell and move until nothing changes. It shares no
// code with the engine. Returns -1 when the goal is unreachable.
func referenceCost(values [][]int, start, goal astar.Coordinate, straight, diagonal int, conn astar.Connectivity) int {
	rows, cols := len(values), len(values[0])
	dist := make([][]int, rows)
	for r := range dist {
		dist[r] = make([]int, cols)
		for c := range dist[r] {
			dist[r][c] = math.MaxInt
		}
	}
	dist[start.Row][start.Col] = 0

	type move struct{ dr, dc, cost int }
	moves := []move{{-1, 0, straight}, {1, 0, straight}, {0, -1, straight}, {0, 1, straight}}
	if conn == astar.Conn8 {
		moves = append(moves, move{-1, -1, diagonal}, move{-1, 1, diagonal}, move{1, -1, diagonal}, move{1, 1, diagonal})
	}

	for changed := true; changed; {
		changed = false
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if values[r][c] < 1 || dist[r][c] == math.MaxInt {
					continue
				}
				for _, m := range moves {
					nr, nc := r+m.dr, c+m.dc
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols || values[nr][nc] < 1 {
						continue
					}
					if nd := dist[r][c] + m.cost; nd < dist[nr][nc] {
						dist[nr][nc] = nd
						changed = true
					}
				}
			}
		}
	}

	if dist[goal.Row][goal.Col] == math.MaxInt {
		return -1
	}
	return dist[goal.Row][goal.Col]
}

// randomGrid returns a rows×cols matrix with roughly density of its cells
// blocked (value 0); start and goal are always open.
func randomGrid(rng *rand.Rand, rows, cols int, density float64, start, goal astar.Coordinate) [][]int {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = 1
			if rng.Float64() < density {
				values[r][c] = 0
			}
		}
	}
	values[start.Row][start.Col] = 1
	values[goal.Row][goal.Col] = 1

	return values
}

// openGrid returns a rows×cols matrix with no blocked cells.
func openGrid(rows, cols int) [][]int {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = 1
		}
	}
	return values
}

func chebyshev(a, b astar.Coordinate) int {
	return max(absInt(a.Row-b.Row), absInt(a.Col-b.Col))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// adjacent reports whether a and b are distinct cells within one king move.
func adjacent(a, b astar.Coordinate) bool {
	return a != b && absInt(a.Row-b.Row) <= 1 && absInt(a.Col-b.Col) <= 1
}
