// Package gridgraph provides a byte-grid representation of puzzle maps and
// the glue that lets the dijkstra package search them:
//
//   - Parsing from text, bounds checks, symbol lookup and wall tests
//   - A dense distance store (DistanceGrid)
//   - A 4-directional unit-cost Traversal (Walker)
//
// Cells equal to Wall are impassable; every other symbol is open floor.
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NewGrid constructs a Grid from non-empty, equal-length text lines.
// It deep-copies the input so later mutation through Set never aliases it.
// Returns ErrEmptyGrid if there are no lines or the first is empty,
// ErrNonRectangular if any line length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	for y, row := range lines {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = []byte(lines[y])
	}

	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// NewFilledGrid builds a width×height grid with every cell set to b.
// Returns ErrEmptyGrid for non-positive dimensions.
func NewFilledGrid(width, height int, b byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]byte, height)
	for y := range cells {
		row := make([]byte, width)
		for x := range row {
			row[x] = b
		}
		cells[y] = row
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// Parse reads one grid row per line from r. Trailing blank lines and
// carriage returns are ignored.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return NewGrid(lines)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the symbol at p. p must be in bounds.
func (g *Grid) At(p Pos) byte {
	return g.Cells[p.Y][p.X]
}

// Set overwrites the symbol at p. p must be in bounds.
func (g *Grid) Set(p Pos, b byte) {
	g.Cells[p.Y][p.X] = b
}

// IsWall reports whether p is out of bounds or holds Wall.
func (g *Grid) IsWall(p Pos) bool {
	return !g.InBounds(p.X, p.Y) || g.Cells[p.Y][p.X] == Wall
}

// Find returns the first cell (row-major) holding symbol.
func (g *Grid) Find(symbol byte) (Pos, error) {
	for y, row := range g.Cells {
		for x, b := range row {
			if b == symbol {
				return Pos{X: x, Y: y}, nil
			}
		}
	}
	return Pos{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, symbol)
}

// Count returns how many cells hold symbol.
func (g *Grid) Count(symbol byte) int {
	n := 0
	for _, row := range g.Cells {
		for _, b := range row {
			if b == symbol {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([][]byte, g.Height)
	for y := range cells {
		cells[y] = append([]byte(nil), g.Cells[y]...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// String renders the grid back to text, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for _, row := range g.Cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
