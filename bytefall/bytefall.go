// Package bytefall simulates bytes falling into a square memory space and
// blocking cells, then measures the route from the top-left corner to the
// bottom-right one.
//
// Input is one "x,y" coordinate per line, in falling order.
package bytefall

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrBadCoordinate indicates a line that is not "x,y" with integers.
	ErrBadCoordinate = errors.New("bytefall: malformed coordinate")
	// ErrOutOfRange indicates a byte outside the memory space.
	ErrOutOfRange = errors.New("bytefall: coordinate outside memory space")
	// ErrUnreachable indicates the exit cannot be reached.
	ErrUnreachable = errors.New("bytefall: exit is unreachable")
	// ErrNeverBlocked indicates the exit stays reachable after every byte.
	ErrNeverBlocked = errors.New("bytefall: exit is never cut off")
)

// Space is a Width×Height memory area. The entrance is (0,0), the exit
// (Width-1, Height-1).
type Space struct {
	Width, Height int
}

// DefaultSpace is the 71×71 area of the full-size puzzle.
func DefaultSpace() Space { return Space{Width: 71, Height: 71} }

// ParseBytes reads the falling order. Blank lines are skipped.
func ParseBytes(r io.Reader) ([]gridgraph.Pos, error) {
	var out []gridgraph.Pos
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadCoordinate, line, err)
		}
		out = append(out, gridgraph.Pos{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bytefall: read: %w", err)
	}
	return out, nil
}

// Corrupt returns the memory grid with every listed byte walled off.
func (s Space) Corrupt(bytes []gridgraph.Pos) (*gridgraph.Grid, error) {
	g, err := gridgraph.NewFilledGrid(s.Width, s.Height, gridgraph.Open)
	if err != nil {
		return nil, fmt.Errorf("bytefall: %w", err)
	}
	for i, p := range bytes {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: byte %d at (%d,%d) in %dx%d", ErrOutOfRange, i, p.X, p.Y, s.Width, s.Height)
		}
		g.Set(p, gridgraph.Wall)
	}
	return g, nil
}

func (s Space) exit() gridgraph.Pos { return gridgraph.Pos{X: s.Width - 1, Y: s.Height - 1} }

// ShortestPath lets the first n bytes fall and returns the minimum number of
// steps from the entrance to the exit.
func (s Space) ShortestPath(bytes []gridgraph.Pos, n int) (uint32, error) {
	if n > len(bytes) {
		n = len(bytes)
	}
	g, err := s.Corrupt(bytes[:n])
	if err != nil {
		return 0, err
	}
	if g.IsWall(gridgraph.Pos{}) {
		return 0, ErrUnreachable
	}
	d, ok := gridgraph.ShortestPath[uint32](g, gridgraph.Pos{}, s.exit())
	if !ok {
		return 0, ErrUnreachable
	}
	return d, nil
}

// FirstBlocking returns the index and position of the first byte after
// which the exit is unreachable. Bytes before index from are assumed to be
// known-safe and are not re-tested.
//
// Reachability only ever goes from true to false as bytes fall, so the
// answer is found by binary search over the prefix length.
func (s Space) FirstBlocking(bytes []gridgraph.Pos, from int) (int, gridgraph.Pos, error) {
	for i, p := range bytes {
		if p.X < 0 || p.Y < 0 || p.X >= s.Width || p.Y >= s.Height {
			return 0, gridgraph.Pos{}, fmt.Errorf("%w: byte %d at (%d,%d)", ErrOutOfRange, i, p.X, p.Y)
		}
	}
	if from < 0 {
		from = 0
	}
	if from > len(bytes) {
		from = len(bytes)
	}

	var searchErr error
	blocked := func(n int) bool {
		_, err := s.ShortestPath(bytes, n)
		switch {
		case errors.Is(err, ErrUnreachable):
			return true
		case err != nil:
			searchErr = err
		}
		return false
	}

	// smallest prefix length n in (from, len] that blocks the exit
	k := sort.Search(len(bytes)-from, func(i int) bool { return blocked(from + i + 1) })
	if searchErr != nil {
		return 0, gridgraph.Pos{}, searchErr
	}
	if k == len(bytes)-from {
		return 0, gridgraph.Pos{}, ErrNeverBlocked
	}
	idx := from + k
	return idx, bytes[idx], nil
}
