// Package gridpath is a toolkit for shortest-path puzzles on character grids,
// built around one generic Dijkstra driver.
//
// 🚀 What is gridpath?
//
//	A small, typed library where the caller owns the graph and the distances:
//		• dijkstra:  generic Run over any Traversal (neighbours, impossible
//		             points, distance read/write), with lazy decrease-key
//		• direction: the four compass moves, rotations and bounded neighbours
//		• gridgraph: text grids, dense distance stores, a unit-cost Walker
//		• maze:      facing-aware search with turn costs and best-route tiles
//		• bytefall:  falling obstacles and the first byte that cuts a route
//		• racetrack: one search from the finish, then every wall-skipping cheat
//
// ✨ Why choose gridpath?
//
//   - No graph materialisation: neighbours are computed on demand
//   - Any unsigned distance type; sums that wrap count as unreachable
//   - Distances stay with the caller, so a search can be resumed or inspected
//
// Layout:
//
//	dijkstra/         Traversal, Run, MapStore, Funcs adapter
//	direction/        Up/Right/Down/Left and helpers
//	gridgraph/        Grid, DistanceGrid, Walker, Components
//	maze/ bytefall/ racetrack/  puzzle solvers on top of the above
//	internal/config/  YAML parameters for the CLI
//	cmd/gridpath/     cobra CLI with zap logging
//
// Quick example:
//
//	g, _ := gridgraph.NewGrid([]string{"S..", ".#.", "..E"})
//	d, ok := gridgraph.ShortestPath[uint32](g, gridgraph.Pos{}, gridgraph.Pos{X: 2, Y: 2})
//	// d == 4, ok == true
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
