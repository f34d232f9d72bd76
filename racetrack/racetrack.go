// Package racetrack counts shortcuts ("cheats") on a single-lane track.
//
// A cheat lets the racer pass through walls for up to maxCheat moves, ending
// on open track. Its saving is how much earlier the racer reaches E compared
// with staying on the track. One search from E gives every cell's remaining
// distance, so each cheat is evaluated in O(1).
package racetrack

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrMissingStart indicates the track has no S cell.
	ErrMissingStart = errors.New("racetrack: no start cell")
	// ErrMissingEnd indicates the track has no E cell.
	ErrMissingEnd = errors.New("racetrack: no end cell")
	// ErrUnreachable indicates E cannot be reached from S on the track.
	ErrUnreachable = errors.New("racetrack: end is unreachable")
	// ErrBadCheat indicates a cheat length below 2, which cannot cross a wall.
	ErrBadCheat = errors.New("racetrack: cheat length must be at least 2")
)

// Track is a parsed race map.
type Track struct {
	Grid  *gridgraph.Grid
	Start gridgraph.Pos
	End   gridgraph.Pos

	walker *gridgraph.Walker[uint32]
	stats  dijkstra.Stats
}

// Parse reads a track and locates S and E.
func Parse(r io.Reader) (*Track, error) {
	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}
	s, err := g.Find('S')
	if err != nil {
		return nil, ErrMissingStart
	}
	e, err := g.Find('E')
	if err != nil {
		return nil, ErrMissingEnd
	}
	return &Track{Grid: g, Start: s, End: e}, nil
}

// Distances returns, for every open cell connected to E, the number of
// steps to E. The search runs once and is cached.
func (t *Track) Distances() *gridgraph.DistanceGrid[uint32] {
	if t.walker == nil {
		t.walker = gridgraph.NewWalker[uint32](t.Grid)
		t.stats = t.walker.Run(t.End)
	}
	return t.walker.Store
}

// Stats reports the search behind Distances.
func (t *Track) Stats() dijkstra.Stats {
	t.Distances()
	return t.stats
}

// Length is the honest race time from S to E, false if E is unreachable.
func (t *Track) Length() (uint32, bool) {
	return t.Distances().Dist(t.Start)
}

// Cheats returns a histogram from picoseconds saved to the number of
// distinct cheats saving exactly that much. A cheat is identified by its
// start and end cells; its length is their Manhattan distance, in
// [2, maxCheat].
func (t *Track) Cheats(maxCheat int) (map[int]int, error) {
	if maxCheat < 2 {
		return nil, ErrBadCheat
	}
	dist := t.Distances()
	g := t.Grid
	out := make(map[int]int)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			a := gridgraph.Pos{X: x, Y: y}
			da, ok := dist.Dist(a)
			if !ok {
				continue
			}
			for dy := -maxCheat; dy <= maxCheat; dy++ {
				span := maxCheat - abs(dy)
				for dx := -span; dx <= span; dx++ {
					m := abs(dx) + abs(dy)
					if m < 2 {
						continue
					}
					b := gridgraph.Pos{X: x + dx, Y: y + dy}
					if !g.InBounds(b.X, b.Y) {
						continue
					}
					db, ok := dist.Dist(b)
					if !ok {
						continue
					}
					if saved := int(da) - int(db) - m; saved > 0 {
						out[saved]++
					}
				}
			}
		}
	}
	return out, nil
}

// CountCheats is the number of cheats of length up to maxCheat saving at
// least minSaving.
func (t *Track) CountCheats(maxCheat, minSaving int) (int, error) {
	h, err := t.Cheats(maxCheat)
	if err != nil {
		return 0, err
	}
	n := 0
	for saved, count := range h {
		if saved >= minSaving {
			n += count
		}
	}
	return n, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
