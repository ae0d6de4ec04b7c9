// Package gridpath is an in-memory toolkit for shortest paths on 2-D grids
// with blocked cells.
//
// What is inside?
//
//	astar/             A* engine: node model, indexed-heap frontier, closed set
//	internal/scenario/ YAML problem descriptions for the command-line driver
//	cmd/astar/         CLI: search from flags or a scenario, print path and map
//
// Movement is 8-directional by default (straight cost 10, diagonal cost 14)
// or 4-directional with astar.WithConnectivity(astar.Conn4). The heuristic is
// derived from whatever costs are configured, so returned paths are always
// cost-optimal.
//
// Quick ASCII example:
//
//	S . . .
//	# # # .
//	G . . .
//
// routes S→(0,1)→(0,2)→(1,3)→(2,2)→(2,1)→G at cost 68.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
