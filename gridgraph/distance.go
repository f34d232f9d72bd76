package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
)

// DistanceGrid stores one optional distance per cell of a width×height area.
// An out-of-range Pos panics: the store is dense and cannot address it.
type DistanceGrid[D dijkstra.Distance] struct {
	width, height int
	dist          []D
	known         []bool
}

// NewDistanceGrid returns a store in which every cell is undiscovered.
func NewDistanceGrid[D dijkstra.Distance](width, height int) *DistanceGrid[D] {
	return &DistanceGrid[D]{
		width:  width,
		height: height,
		dist:   make([]D, width*height),
		known:  make([]bool, width*height),
	}
}

func (s *DistanceGrid[D]) index(p Pos) int {
	if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
		panic(fmt.Sprintf("gridgraph: position (%d,%d) outside %dx%d distance grid", p.X, p.Y, s.width, s.height))
	}
	return p.Y*s.width + p.X
}

// Dist returns the distance of p and whether it has been discovered.
func (s *DistanceGrid[D]) Dist(p Pos) (D, bool) {
	i := s.index(p)
	return s.dist[i], s.known[i]
}

// SetDist records d for p.
func (s *DistanceGrid[D]) SetDist(p Pos, d D) {
	i := s.index(p)
	s.dist[i] = d
	s.known[i] = true
}

// Reset marks every cell undiscovered.
func (s *DistanceGrid[D]) Reset() {
	clear(s.dist)
	clear(s.known)
}

// Clone returns an independent copy.
func (s *DistanceGrid[D]) Clone() *DistanceGrid[D] {
	return &DistanceGrid[D]{
		width:  s.width,
		height: s.height,
		dist:   append([]D(nil), s.dist...),
		known:  append([]bool(nil), s.known...),
	}
}

// Reached is the number of discovered cells.
func (s *DistanceGrid[D]) Reached() int {
	n := 0
	for _, k := range s.known {
		if k {
			n++
		}
	}
	return n
}
