// Package gridgraph defines core types and sentinel errors for the
// gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

// Wall is the cell symbol that can never be entered.
const Wall byte = '#'

// Open is the symbol used for free cells in generated grids.
const Open byte = '.'

// Pos is a cell coordinate. X is the column, Y the row.
type Pos struct {
	X, Y int
}

// Grid is a rectangular 2D byte grid, typically a puzzle map read from text.
// Width and Height define dimensions; Cells[y][x] holds the symbol at (x, y).
// Grid is mutable through Set, so the same map can be re-walled between
// searches.
type Grid struct {
	Width, Height int
	Cells         [][]byte
}
