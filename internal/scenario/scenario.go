// Package scenario decodes YAML descriptions of a pathfinding problem and
// turns them into a ready-to-run astar.Engine.
//
// A scenario gives the grid either by size plus a block list, or by a
// layout of equal-length rows where '#' marks a blocked cell:
//
//	start: "0,0"
//	goal: "2,3"
//	connectivity: conn8
//	layout:
//	  - "...."
//	  - ".##."
//	  - "...."
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
)

// ErrInvalid indicates a scenario that cannot describe a grid.
var ErrInvalid = errors.New("scenario: invalid scenario")

// BlockedRune marks a blocked cell in Layout.
const BlockedRune = '#'

// Scenario is the YAML form of one search problem.
type Scenario struct {
	Name         string   `yaml:"name"`
	Rows         int      `yaml:"rows"`
	Cols         int      `yaml:"cols"`
	Start        string   `yaml:"start"`
	Goal         string   `yaml:"goal"`
	StraightCost *int     `yaml:"straight_cost"`
	DiagonalCost *int     `yaml:"diagonal_cost"`
	Connectivity string   `yaml:"connectivity"` // "conn8" (default) or "conn4"
	Blocks       []string `yaml:"blocks"`
	Layout       []string `yaml:"layout"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario from YAML bytes. Rows and Cols are taken from
// Layout when one is given.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if len(s.Layout) > 0 {
		s.Rows, s.Cols = len(s.Layout), len([]rune(s.Layout[0]))
	}

	return &s, nil
}

// Options converts the scenario's cost and connectivity settings into
// astar options. Unset costs keep the engine defaults.
func (s *Scenario) Options() ([]astar.Option, error) {
	var opts []astar.Option
	if s.StraightCost != nil {
		opts = append(opts, astar.WithStraightCost(*s.StraightCost))
	}
	if s.DiagonalCost != nil {
		opts = append(opts, astar.WithDiagonalCost(*s.DiagonalCost))
	}
	switch strings.ToLower(strings.TrimSpace(s.Connectivity)) {
	case "", "conn8", "8":
	case "conn4", "4":
		opts = append(opts, astar.WithConnectivity(astar.Conn4))
	default:
		return nil, fmt.Errorf("%w: connectivity %q", ErrInvalid, s.Connectivity)
	}

	return opts, nil
}

// Engine builds an engine for the scenario. extra options are applied after
// the scenario's own, so callers can override costs or install hooks.
func (s *Scenario) Engine(extra ...astar.Option) (*astar.Engine, error) {
	start, err := astar.ParseCoordinate(s.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrInvalid, err)
	}
	goal, err := astar.ParseCoordinate(s.Goal)
	if err != nil {
		return nil, fmt.Errorf("%w: goal: %w", ErrInvalid, err)
	}
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)

	blocks, err := s.blockList()
	if err != nil {
		return nil, err
	}
	e, err := astar.NewEngine(s.Rows, s.Cols, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.SetBlocked(blocks...); err != nil {
		return nil, err
	}

	return e, nil
}

// blockList merges Blocks with the '#' cells of Layout.
func (s *Scenario) blockList() ([]astar.Coordinate, error) {
	blocks := make([]astar.Coordinate, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		c, err := astar.ParseCoordinate(b)
		if err != nil {
			return nil, fmt.Errorf("%w: block: %w", ErrInvalid, err)
		}
		blocks = append(blocks, c)
	}
	for r, line := range s.Layout {
		cells := []rune(line)
		if len(cells) != s.Cols {
			return nil, fmt.Errorf("%w: layout row %d has %d cells, want %d", ErrInvalid, r, len(cells), s.Cols)
		}
		for col, ch := range cells {
			if ch == BlockedRune {
				blocks = append(blocks, astar.Coordinate{Row: r, Col: col})
			}
		}
	}

	return blocks, nil
}
