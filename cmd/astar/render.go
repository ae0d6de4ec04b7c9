package main

import (
	"strings"

	"github.com/katalvlaran/gridpath/astar"
)

// Map glyphs.
const (
	glyphOpen  = '.'
	glyphBlock = '#'
	glyphPath  = '*'
	glyphStart = 'S'
	glyphGoal  = 'G'
)

// render draws the grid one row per line: S and G mark the endpoints,
// '*' the path, '#' blocked cells and '.' open cells.
func render(e *astar.Engine, path []astar.Coordinate) string {
	onPath := make(map[astar.Coordinate]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	b.Grow(e.Rows() * (e.Cols() + 1))
	for r := 0; r < e.Rows(); r++ {
		for col := 0; col < e.Cols(); col++ {
			c := astar.Coordinate{Row: r, Col: col}
			switch {
			case c == e.Start():
				b.WriteRune(glyphStart)
			case c == e.Goal():
				b.WriteRune(glyphGoal)
			case e.IsBlocked(c):
				b.WriteRune(glyphBlock)
			case onPath[c]:
				b.WriteRune(glyphPath)
			default:
				b.WriteRune(glyphOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
