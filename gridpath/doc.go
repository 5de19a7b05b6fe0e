// Package gridpath finds the length of the shortest walk across a 2D grid
// of open and walled cells, from the top-left corner to the bottom-right.
//
// What:
//
//   - ShortestPath(grid, opts...): length in steps (edges traversed) of
//     the shortest 4-directionally connected path over Open cells from
//     (0,0) to (rows-1, cols-1); NoPath (-1) when unreachable or when
//     either endpoint is a Wall; 0 for a single open cell.
//   - FromInts(values): convenience conversion from the classic 0/1
//     encoding (0 = open, anything else = wall).
//
// Why:
//
//   - Grid adjacency is an unweighted graph, and BFS visits vertices in
//     non-decreasing distance from the start, so the level at which the
//     goal first appears is by construction the shortest path length.
//   - Any shortest route is acceptable; only the length is reported.
//
// Options:
//
//   - WithContext(ctx):  cancellation for very large grids.
//   - WithOnVisit(fn):   observation hook fired once per visited cell,
//     with its coordinates and BFS distance.
//   - WithDiagonals():   8-directional adjacency instead of the default 4.
//
// Complexity (R×C grid):
//
//   - Time:   O(R·C)
//   - Memory: O(R·C) for the visited set and frontier queue.
//
// Errors:
//
//   - ErrEmptyGrid  — grid has no rows or no columns.
//   - ErrRaggedGrid — rows have differing lengths.
//   - ctx.Err()     — when a WithContext context is cancelled mid-search.
package gridpath
