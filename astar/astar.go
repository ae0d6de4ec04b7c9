// Package astar implements A* search over a rectangular grid of cells.
//
// The engine keeps every Node in a row-major arena. The frontier and the
// closed set hold arena indices, so cost and parent state has a single source
// of truth and is mutated in place during search.
//
// Notes on implementation choices:
//
//   - Decrease-key is done on an indexed heap (heap.Fix), not by pushing
//     duplicates: a node is in the frontier at most once.
//   - A node is closed before any neighbor can name it as parent, and a
//     closed node is never reopened, so parent chains cannot cycle.
//   - Every FindPath call starts from a clean search state; blocks and
//     heuristics persist between calls.
package astar

import (
	"context"
	"fmt"
)

// neighbor offsets as (dRow, dCol), orthogonal first.
var (
	orthogonalOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	diagonalOffsets   = [4][2]int{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
)

// Engine runs A* between a fixed start and goal on a rows×cols grid.
type Engine struct {
	rows, cols int
	start      int // arena index of the start cell
	goal       int // arena index of the goal cell
	costs      Costs
	opts       Options

	nodes    []Node
	open     *frontier
	closed   []bool
	expanded int
}

// NewEngine allocates a rows×cols grid, computes every cell's heuristic
// against goal and returns an engine ready for SetBlocked and FindPath.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. rows > 0 and cols > 0 (ErrBadDimensions).
//  3. start and goal lie inside the grid (ErrOutOfBounds).
//
// Complexity: O(rows×cols) time and memory.
func NewEngine(rows, cols int, start, goal Coordinate, opts ...Option) (*Engine, error) {
	// 1) Build and validate options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the grid shape and both endpoints.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, rows, cols)
	}
	e := &Engine{
		rows: rows,
		cols: cols,
		costs: Costs{
			Straight: o.StraightCost,
			Diagonal: o.DiagonalCost,
			Conn:     o.Conn,
		},
		opts: o,
	}
	if !e.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v on %d×%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !e.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v on %d×%d grid", ErrOutOfBounds, goal, rows, cols)
	}
	e.start = e.index(start)
	e.goal = e.index(goal)

	// 3) Allocate the arena; each node gets its heuristic once.
	e.nodes = make([]Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := NewNode(r, c)
			n.ComputeHeuristic(goal, e.costs)
			e.nodes[r*cols+c] = n
		}
	}
	e.open = newFrontier(e.nodes)
	e.closed = make([]bool, len(e.nodes))

	return e, nil
}

// NewEngineFromGrid builds an engine from a non-empty rectangular matrix,
// values[row][col]. Cells with value < 1 are blocked.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBlockedEndpoint or any
// NewEngine error.
func NewEngineFromGrid(values [][]int, start, goal Coordinate, opts ...Option) (*Engine, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	e, err := NewEngine(rows, cols, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	var blocks []Coordinate
	for r, row := range values {
		for c, v := range row {
			if v < 1 {
				blocks = append(blocks, Coordinate{Row: r, Col: c})
			}
		}
	}
	if err = e.SetBlocked(blocks...); err != nil {
		return nil, err
	}

	return e, nil
}

// SetBlocked marks cells impassable. All coordinates are validated before
// any cell is changed: an out-of-bounds cell yields ErrOutOfBounds and
// blocking the start or goal yields ErrBlockedEndpoint.
// Must be called before FindPath.
func (e *Engine) SetBlocked(cells ...Coordinate) error {
	for _, c := range cells {
		if !e.InBounds(c) {
			return fmt.Errorf("%w: block %v on %d×%d grid", ErrOutOfBounds, c, e.rows, e.cols)
		}
		if idx := e.index(c); idx == e.start || idx == e.goal {
			return fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}
	for _, c := range cells {
		e.nodes[e.index(c)].Blocked = true
	}

	return nil
}

// FindPath returns the cells from start to goal inclusive, or an empty slice
// when the goal is unreachable. Callers that cancel searches should use
// FindPathContext instead: FindPath runs under the WithContext context
// (Background by default) and reports a cancelled search as an empty slice.
func (e *Engine) FindPath() []Coordinate {
	path, err := e.FindPathContext(e.opts.Ctx)
	if err != nil {
		return []Coordinate{}
	}
	return path
}

// FindPathContext runs A* and returns the path from start to goal inclusive.
// An unreachable goal yields an empty slice and a nil error. The context is
// checked once per iteration; on cancellation ctx.Err() is returned.
//
// Complexity: O(N log N) time, O(N) memory, N = rows×cols.
func (e *Engine) FindPathContext(ctx context.Context) ([]Coordinate, error) {
	e.reset()
	if e.start == e.goal {
		e.closed[e.start] = true
		e.expanded = 1
		e.opts.OnExpand(e.nodes[e.start].Coordinate())
		return []Coordinate{e.nodes[e.start].Coordinate()}, nil
	}

	e.open.push(e.start)
	for e.open.len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := e.open.pop()
		if e.closed[current] {
			panic(fmt.Sprintf("astar: closed node %v popped from frontier", e.nodes[current].Coordinate()))
		}
		e.closed[current] = true
		e.expanded++
		e.opts.OnExpand(e.nodes[current].Coordinate())

		if current == e.goal {
			return e.path(current), nil
		}
		e.expand(current)
	}

	return []Coordinate{}, nil
}

// expand discovers or relaxes every open neighbor of the node at idx.
func (e *Engine) expand(idx int) {
	cur := &e.nodes[idx]
	for _, d := range orthogonalOffsets {
		e.visit(cur, cur.Row+d[0], cur.Col+d[1], e.costs.Straight)
	}
	if e.costs.Conn == Conn4 {
		return
	}
	for _, d := range diagonalOffsets {
		e.visit(cur, cur.Row+d[0], cur.Col+d[1], e.costs.Diagonal)
	}
}

// visit handles a single neighbor (row, col) of cur reached at moveCost.
func (e *Engine) visit(cur *Node, row, col, moveCost int) {
	c := Coordinate{Row: row, Col: col}
	if !e.InBounds(c) {
		return
	}
	idx := e.index(c)
	nb := &e.nodes[idx]
	if nb.Blocked || e.closed[idx] {
		return
	}

	if !e.open.contains(idx) {
		nb.SetData(cur, moveCost)
		e.open.push(idx)
		return
	}
	// Already queued: its heap position is stale once F drops.
	if nb.TryImprovePath(cur, moveCost) {
		e.open.fix(idx)
	}
}

// path walks parent links back from the node at idx and returns start→idx.
func (e *Engine) path(idx int) []Coordinate {
	var rev []Coordinate
	n := e.nodes[idx]
	for {
		rev = append(rev, n.Coordinate())
		p, ok := n.Parent()
		if !ok {
			break
		}
		if len(rev) > len(e.nodes) {
			panic("astar: parent chain contains a cycle")
		}
		n = e.nodes[e.index(p)]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// reset clears costs, parents, the frontier and the closed set.
func (e *Engine) reset() {
	for i := range e.nodes {
		e.nodes[i].clearSearch()
		e.closed[i] = false
	}
	e.open.reset()
	e.expanded = 0
}

// PathCost sums the move costs along path. Consecutive cells must be
// neighbors under the engine's connectivity, and no cell may be blocked.
// An empty or single-cell path costs 0.
func (e *Engine) PathCost(path []Coordinate) (int, error) {
	total := 0
	for i, c := range path {
		if !e.InBounds(c) {
			return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if e.nodes[e.index(c)].Blocked {
			return 0, fmt.Errorf("%w: %v", ErrBlockedCell, c)
		}
		if i == 0 {
			continue
		}
		step, ok := e.stepCost(path[i-1], c)
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v", ErrNotAdjacent, path[i-1], c)
		}
		total += step
	}

	return total, nil
}

// stepCost returns the cost of moving a→b in one step.
func (e *Engine) stepCost(a, b Coordinate) (int, bool) {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	switch {
	case dr+dc == 1:
		return e.costs.Straight, true
	case dr == 1 && dc == 1 && e.costs.Conn == Conn8:
		return e.costs.Diagonal, true
	default:
		return 0, false
	}
}

// InBounds reports whether c lies within the grid.
func (e *Engine) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.cols
}

// IsBlocked reports whether c is an in-bounds blocked cell.
func (e *Engine) IsBlocked(c Coordinate) bool {
	return e.InBounds(c) && e.nodes[e.index(c)].Blocked
}

// Node returns a copy of the node at c as left by the last search.
func (e *Engine) Node(c Coordinate) (Node, bool) {
	if !e.InBounds(c) {
		return Node{}, false
	}
	return e.nodes[e.index(c)], true
}

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.cols }

// Start returns the start coordinate.
func (e *Engine) Start() Coordinate { return e.nodes[e.start].Coordinate() }

// Goal returns the goal coordinate.
func (e *Engine) Goal() Coordinate { return e.nodes[e.goal].Coordinate() }

// StraightCost returns the orthogonal move cost.
func (e *Engine) StraightCost() int { return e.costs.Straight }

// DiagonalCost returns the diagonal move cost.
func (e *Engine) DiagonalCost() int { return e.costs.Diagonal }

// Connectivity returns Conn4 or Conn8.
func (e *Engine) Connectivity() Connectivity { return e.costs.Conn }

// Expanded returns how many nodes the last search closed.
func (e *Engine) Expanded() int { return e.expanded }

// index maps c to its row-major arena index.
func (e *Engine) index(c Coordinate) int {
	return c.Row*e.cols + c.Col
}
