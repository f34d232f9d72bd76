// Package direction enumerates the four orthogonal grid directions and the
// arithmetic on them: unit deltas, quarter turns, reversal, and in-bounds
// neighbour listing.
//
// Screen coordinates are used throughout: x grows to the right, y grows
// downwards, so Up is (0, -1).
package direction

import (
	"errors"
	"fmt"
)

// ErrUnknownDirection indicates a rune that names no direction.
var ErrUnknownDirection = errors.New("direction: unknown direction")

// Direction is one of Up, Right, Down, Left. The numeric order is clockwise,
// which makes rotation a modular increment.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// All lists the directions in clockwise order starting with Up.
var All = [4]Direction{Up, Right, Down, Left}

var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit step for d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// Apply moves (x, y) one step in direction d. No bounds are checked.
func (d Direction) Apply(x, y int) (int, int) {
	dx, dy := d.Delta()
	return x + dx, y + dy
}

// RotateRight turns d a quarter clockwise.
func (d Direction) RotateRight() Direction { return (d + 1) % 4 }

// RotateLeft turns d a quarter counter-clockwise.
func (d Direction) RotateLeft() Direction { return (d + 3) % 4 }

// Opposite reverses d.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Valid reports whether d is one of the four named directions.
func (d Direction) Valid() bool { return d >= Up && d <= Left }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Parse accepts the arrow glyphs ^ > v < and the letters U R D L.
func Parse(r rune) (Direction, error) {
	switch r {
	case '^', 'U':
		return Up, nil
	case '>', 'R':
		return Right, nil
	case 'v', 'D':
		return Down, nil
	case '<', 'L':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}

// ValidNeighbours lists the 4-neighbours of (x, y) that lie inside a
// width×height area, in clockwise order starting with Up.
func ValidNeighbours(x, y, width, height int) [][2]int {
	out := make([][2]int, 0, 4)
	for _, d := range All {
		nx, ny := d.Apply(x, y)
		if nx < 0 || ny < 0 || nx >= width || ny >= height {
			continue
		}
		out = append(out, [2]int{nx, ny})
	}
	return out
}
