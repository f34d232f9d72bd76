// Package maze scores routes through a walled maze in which the walker has a
// facing direction. Stepping forward is cheap; turning in place is expensive.
//
// The search state is (x, y, facing), so a cell is reached up to four times
// with different costs. The start always faces Right.
//
// Solve answers two questions with a single dijkstra.Run:
//
//   - the lowest score from S to E, over every facing at E;
//   - how many distinct cells lie on at least one lowest-score route, found by
//     walking predecessor states backwards from each optimal end state.
package maze

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/direction"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Map symbols.
const (
	Start byte = 'S'
	End   byte = 'E'
)

var (
	// ErrMissingStart indicates the maze has no S cell.
	ErrMissingStart = errors.New("maze: no start cell")
	// ErrMissingEnd indicates the maze has no E cell.
	ErrMissingEnd = errors.New("maze: no end cell")
	// ErrUnreachable indicates E cannot be reached from S.
	ErrUnreachable = errors.New("maze: end is unreachable")
)

// State is a position together with the direction the walker faces.
type State struct {
	gridgraph.Pos
	Facing direction.Direction
}

// Options sets the two move costs.
type Options struct {
	TurnCost uint64
	StepCost uint64
}

// DefaultOptions returns a turn cost of 1000 and a step cost of 1.
func DefaultOptions() Options {
	return Options{TurnCost: 1000, StepCost: 1}
}

// Result is the outcome of Solve.
type Result struct {
	BestScore uint64
	BestTiles int
	Stats     dijkstra.Stats
}

// Maze is a parsed map with its start and end located.
type Maze struct {
	Grid  *gridgraph.Grid
	Start gridgraph.Pos
	End   gridgraph.Pos
}

// Parse reads a maze and locates S and E.
func Parse(r io.Reader) (*Maze, error) {
	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	return New(g)
}

// New wraps an already-parsed grid.
func New(g *gridgraph.Grid) (*Maze, error) {
	s, err := g.Find(Start)
	if err != nil {
		return nil, ErrMissingStart
	}
	e, err := g.Find(End)
	if err != nil {
		return nil, ErrMissingEnd
	}
	return &Maze{Grid: g, Start: s, End: e}, nil
}

// search is the dijkstra.Traversal over facing states.
type search struct {
	grid  *gridgraph.Grid
	opts  Options
	store *dijkstra.MapStore[State, uint64]
}

func (s *search) Neighbours(p State, g *gridgraph.Grid) []dijkstra.Edge[State, uint64] {
	out := []dijkstra.Edge[State, uint64]{
		{To: State{Pos: p.Pos, Facing: p.Facing.RotateRight()}, Cost: s.opts.TurnCost},
		{To: State{Pos: p.Pos, Facing: p.Facing.RotateLeft()}, Cost: s.opts.TurnCost},
	}
	nx, ny := p.Facing.Apply(p.X, p.Y)
	if g.InBounds(nx, ny) {
		out = append(out, dijkstra.Edge[State, uint64]{
			To:   State{Pos: gridgraph.Pos{X: nx, Y: ny}, Facing: p.Facing},
			Cost: s.opts.StepCost,
		})
	}
	return out
}

func (s *search) IsImpossible(p State) bool { return s.grid.IsWall(p.Pos) }

func (s *search) Dist(p State) (uint64, bool) { return s.store.Dist(p) }

func (s *search) SetDist(p State, d uint64) { s.store.SetDist(p, d) }

// predecessors lists the states q with an edge q→p and its cost.
// It is the inverse of Neighbours: the same cell with the facing turned
// either way, or one step back against the facing.
func (s *search) predecessors(p State) []dijkstra.Edge[State, uint64] {
	out := []dijkstra.Edge[State, uint64]{
		{To: State{Pos: p.Pos, Facing: p.Facing.RotateLeft()}, Cost: s.opts.TurnCost},
		{To: State{Pos: p.Pos, Facing: p.Facing.RotateRight()}, Cost: s.opts.TurnCost},
	}
	bx, by := p.Facing.Opposite().Apply(p.X, p.Y)
	if s.grid.InBounds(bx, by) {
		out = append(out, dijkstra.Edge[State, uint64]{
			To:   State{Pos: gridgraph.Pos{X: bx, Y: by}, Facing: p.Facing},
			Cost: s.opts.StepCost,
		})
	}
	return out
}

// Solve runs the search with the given costs.
func (m *Maze) Solve(opts Options) (Result, error) {
	if !m.Grid.Connected(m.Start, m.End) {
		return Result{}, ErrUnreachable
	}
	s := &search{
		grid:  m.Grid,
		opts:  opts,
		store: dijkstra.NewMapStore[State, uint64](m.Grid.Width * m.Grid.Height * 4),
	}
	start := State{Pos: m.Start, Facing: direction.Right}
	stats := dijkstra.Run[State, *gridgraph.Grid, uint64](s, start, 0, m.Grid,
		dijkstra.WithInitialCapacity[State, uint64](m.Grid.Width*m.Grid.Height))

	var (
		best  uint64
		found bool
		ends  []State
	)
	for _, d := range direction.All {
		st := State{Pos: m.End, Facing: d}
		v, ok := s.store.Dist(st)
		if !ok {
			continue
		}
		switch {
		case !found || v < best:
			best, found, ends = v, true, []State{st}
		case v == best:
			ends = append(ends, st)
		}
	}
	if !found {
		return Result{Stats: stats}, ErrUnreachable
	}

	return Result{BestScore: best, BestTiles: s.tilesOnBestPaths(ends), Stats: stats}, nil
}

// tilesOnBestPaths walks back from the optimal end states. A predecessor q
// is on a best route to p exactly when dist(q) + cost(q→p) == dist(p).
func (s *search) tilesOnBestPaths(ends []State) int {
	seen := make(map[State]bool, len(ends))
	tiles := make(map[gridgraph.Pos]struct{})
	stack := append([]State(nil), ends...)
	for _, e := range ends {
		seen[e] = true
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tiles[cur.Pos] = struct{}{}

		dc, _ := s.store.Dist(cur)
		for _, e := range s.predecessors(cur) {
			if seen[e.To] || s.grid.IsWall(e.To.Pos) {
				continue
			}
			dq, ok := s.store.Dist(e.To)
			if !ok || dq+e.Cost != dc {
				continue
			}
			seen[e.To] = true
			stack = append(stack, e.To)
		}
	}
	return len(tiles)
}
