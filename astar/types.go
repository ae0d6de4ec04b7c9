// Package astar defines coordinates, sentinel errors and functional options
// for the grid A* engine.
package astar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by the astar package.
var (
	// ErrBadDimensions indicates rows or cols is zero or negative.
	ErrBadDimensions = errors.New("astar: grid dimensions must be positive")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("astar: coordinate out of bounds")

	// ErrBlockedEndpoint indicates the start or goal cell is (or would become) blocked.
	ErrBlockedEndpoint = errors.New("astar: start or goal cell is blocked")

	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("astar: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("astar: all rows must have the same length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNotAdjacent indicates two consecutive path cells are not grid neighbors
	// under the engine's connectivity.
	ErrNotAdjacent = errors.New("astar: path cells are not adjacent")

	// ErrBlockedCell indicates a path passes through a blocked cell.
	ErrBlockedCell = errors.New("astar: path crosses a blocked cell")

	// ErrBadCoordinate indicates a coordinate string could not be parsed.
	ErrBadCoordinate = errors.New("astar: malformed coordinate")
)

// Default movement costs. A diagonal step is roughly √2 times a straight one.
const (
	DefaultStraightCost = 10
	DefaultDiagonalCost = 14
)

// Coordinate addresses one grid cell. It is the identity key of a Node.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ParseCoordinate parses "row,col" (surrounding parentheses and spaces are
// tolerated) into a Coordinate.
func ParseCoordinate(s string) (Coordinate, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrBadCoordinate, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrBadCoordinate, s, err)
	}

	return Coordinate{Row: row, Col: col}, nil
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the tunable parameters of an Engine.
type Options struct {
	// StraightCost is the cost of an orthogonal move. Must be ≥ 0.
	StraightCost int

	// DiagonalCost is the cost of a diagonal move. Must be ≥ 0.
	// Ignored under Conn4.
	DiagonalCost int

	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity

	// Ctx is checked once per search iteration by FindPathContext when no
	// explicit context is passed.
	Ctx context.Context

	// OnExpand is called each time a node is moved into the closed set.
	OnExpand func(c Coordinate)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - StraightCost = 10, DiagonalCost = 14
//   - Conn8 movement
//   - context.Background()
//   - a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		StraightCost: DefaultStraightCost,
		DiagonalCost: DefaultDiagonalCost,
		Conn:         Conn8,
		Ctx:          context.Background(),
		OnExpand:     func(Coordinate) {},
	}
}

// WithStraightCost sets the orthogonal move cost. Negative values are an option violation.
func WithStraightCost(cost int) Option {
	return func(o *Options) {
		if cost < 0 {
			o.err = fmt.Errorf("%w: StraightCost cannot be negative (%d)", ErrOptionViolation, cost)
			return
		}
		o.StraightCost = cost
	}
}

// WithDiagonalCost sets the diagonal move cost. Negative values are an option violation.
func WithDiagonalCost(cost int) Option {
	return func(o *Options) {
		if cost < 0 {
			o.err = fmt.Errorf("%w: DiagonalCost cannot be negative (%d)", ErrOptionViolation, cost)
			return
		}
		o.DiagonalCost = cost
	}
}

// WithConnectivity selects Conn4 or Conn8 movement.
func WithConnectivity(conn Connectivity) Option {
	return func(o *Options) {
		if conn != Conn4 && conn != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(conn))
			return
		}
		o.Conn = conn
	}
}

// WithContext sets the context consulted by FindPath.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run whenever a node is closed.
func WithOnExpand(fn func(c Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
