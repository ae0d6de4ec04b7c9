// Package astar finds shortest paths between two cells of a rectangular grid
// with optionally blocked cells, using the A* best-first search.
//
// What:
//
//   - Engine owns a fixed-size arena of Node values, one per cell, addressed
//     by Coordinate (row, col) in row-major order.
//   - Each Node carries its G (cost from start), H (heuristic to goal) and
//     F = G + H, plus a parent Coordinate used for path reconstruction.
//   - The frontier is an indexed min-heap over arena indices with O(log n)
//     decrease-key; the closed set is a flat []bool over the same indices.
//
// Why:
//
//   - Game AI, tile-based navigation and robotics simulation on uniform-cost
//     grids with 4- or 8-directional movement.
//
// Cost model:
//
//   - Straight moves cost StraightCost (default 10), diagonal moves cost
//     DiagonalCost (default 14).
//   - The heuristic is derived from the configured costs (octile under Conn8,
//     Manhattan under Conn4), so it stays admissible whatever the costs are.
//
// Determinism:
//
//   - Frontier ties on F are broken by lower G, then by insertion order.
//     The same grid, blocks and costs always yield the same path.
//
// Complexity:
//
//   - FindPath: O(N log N) time, O(N) memory, where N = rows×cols.
//
// Errors:
//
//   - ErrBadDimensions:   rows or cols is not positive.
//   - ErrOutOfBounds:     a coordinate lies outside the grid.
//   - ErrBlockedEndpoint: start or goal would be blocked.
//   - ErrEmptyGrid, ErrNonRectangular: invalid matrix for NewEngineFromGrid.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrNotAdjacent, ErrBlockedCell: PathCost was given an invalid path.
//
// An unreachable goal is not an error: FindPath returns an empty slice.
//
// Thread safety:
//
//   - An Engine is not safe for concurrent use. Build one engine per
//     goroutine; engines share no state.
package astar
