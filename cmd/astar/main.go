// Command astar runs a grid A* search and prints the path, its cost and an
// ASCII map of the grid.
//
// The problem comes either from flags or from a YAML scenario file:
//
//	astar --rows 5 --cols 5 --start 0,0 --goal 4,4 --block 2,2 --block 1,1
//	astar --scenario maze.yaml --four-way
//
// Flags given alongside --scenario override the scenario's costs and
// connectivity. --debug logs every expanded cell.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/scenario"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "astar"
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "astar:", err)
		os.Exit(1)
	}
}

// newCommand builds the CLI, writing results to out.
func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "find a shortest path on a grid with blocked cells",
		Version: Version,
		// Coordinates are "row,col": one --block value is one cell.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scenario", Aliases: []string{"f"}, Usage: "YAML scenario file"},
			&cli.IntFlag{Name: "rows", Value: 5, Usage: "grid height"},
			&cli.IntFlag{Name: "cols", Value: 5, Usage: "grid width"},
			&cli.StringFlag{Name: "start", Value: "0,0", Usage: "start cell as row,col"},
			&cli.StringFlag{Name: "goal", Value: "4,4", Usage: "goal cell as row,col"},
			&cli.StringSliceFlag{Name: "block", Aliases: []string{"b"}, Usage: "blocked cell as row,col (repeatable)"},
			&cli.IntFlag{Name: "straight-cost", Value: astar.DefaultStraightCost, Usage: "cost of an orthogonal move"},
			&cli.IntFlag{Name: "diagonal-cost", Value: astar.DefaultDiagonalCost, Usage: "cost of a diagonal move"},
			&cli.BoolFlag{Name: "four-way", Usage: "disable diagonal moves"},
			&cli.BoolFlag{Name: "no-map", Usage: "do not print the ASCII map"},
			&cli.BoolFlag{Name: "debug", Usage: "log every expanded cell"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, out)
		},
	}
}

// run builds the engine, searches and prints the result.
func run(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithOnExpand(func(c astar.Coordinate) {
			logger.Debug("expand", "cell", c.String())
		}),
	}

	e, err := buildEngine(cmd, opts)
	if err != nil {
		return err
	}
	logger.Debug("searching",
		"rows", e.Rows(), "cols", e.Cols(),
		"start", e.Start().String(), "goal", e.Goal().String(),
		"straight", e.StraightCost(), "diagonal", e.DiagonalCost(),
		"conn", e.Connectivity().String())

	path, err := e.FindPathContext(ctx)
	if err != nil {
		return fmt.Errorf("search aborted: %w", err)
	}
	logger.Debug("done", "expanded", e.Expanded(), "found", len(path) > 0)

	if len(path) == 0 {
		fmt.Fprintf(out, "no path from %v to %v\n", e.Start(), e.Goal())
	} else {
		cost, err := e.PathCost(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "path: %v\n", path)
		fmt.Fprintf(out, "steps: %d cost: %d\n", len(path)-1, cost)
	}
	if !cmd.Bool("no-map") {
		fmt.Fprint(out, render(e, path))
	}

	return nil
}

// buildEngine constructs the engine from --scenario or from the grid flags.
// Explicitly set cost and connectivity flags are appended last and win.
func buildEngine(cmd *cli.Command, base []astar.Option) (*astar.Engine, error) {
	overrides := base
	if cmd.IsSet("straight-cost") {
		overrides = append(overrides, astar.WithStraightCost(int(cmd.Int("straight-cost"))))
	}
	if cmd.IsSet("diagonal-cost") {
		overrides = append(overrides, astar.WithDiagonalCost(int(cmd.Int("diagonal-cost"))))
	}
	if cmd.Bool("four-way") {
		overrides = append(overrides, astar.WithConnectivity(astar.Conn4))
	}

	if path := cmd.String("scenario"); path != "" {
		s, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		return s.Engine(overrides...)
	}

	start, err := astar.ParseCoordinate(cmd.String("start"))
	if err != nil {
		return nil, err
	}
	goal, err := astar.ParseCoordinate(cmd.String("goal"))
	if err != nil {
		return nil, err
	}
	blocks := make([]astar.Coordinate, 0, len(cmd.StringSlice("block")))
	for _, b := range cmd.StringSlice("block") {
		c, err := astar.ParseCoordinate(b)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, c)
	}

	e, err := astar.NewEngine(int(cmd.Int("rows")), int(cmd.Int("cols")), start, goal, overrides...)
	if err != nil {
		return nil, err
	}
	if err = e.SetBlocked(blocks...); err != nil {
		return nil, err
	}

	return e, nil
}
