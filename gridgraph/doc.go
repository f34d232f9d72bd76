// Package gridgraph treats a 2D grid of byte cells as an implicit graph for
// the dijkstra package.
//
// What:
//
//   - Grid wraps a rectangular [][]byte map parsed from text lines.
//   - Cells equal to Wall ('#') are impassable; everything else is open.
//   - DistanceGrid is a dense per-cell distance store with an explicit
//     "undiscovered" state, owned by the caller of a search.
//   - Walker is a ready-made dijkstra.Traversal: unit-cost 4-directional moves
//     over a Grid, writing into a DistanceGrid.
//   - Components labels 4-connected open regions with one flood fill.
//
// Why:
//
//   - Most grid puzzles are "walls and floor, one step costs one". Walker covers
//     them without any per-puzzle traversal code.
//   - Searches that need a richer state (facing, cheats) still reuse Grid for
//     parsing, bounds and wall tests.
//
// Complexity:
//
//   - NewGrid / Parse:  O(W×H) time and memory.
//   - ShortestPath:     O(W×H × log(W×H)).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSymbolNotFound: Find found no cell with the requested symbol.
package gridgraph
