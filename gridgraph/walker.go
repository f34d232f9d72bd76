package gridgraph

import (
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/direction"
)

// Walker searches a Grid with unit-cost moves to the four orthogonal
// neighbours. Walls are impossible. Distances go into Store, which the
// caller owns and may inspect after the search.
type Walker[D dijkstra.Distance] struct {
	Grid  *Grid
	Store *DistanceGrid[D]
}

var _ dijkstra.Traversal[Pos, *Grid, uint32] = (*Walker[uint32])(nil)

// NewWalker pairs g with a fresh DistanceGrid of the same size.
func NewWalker[D dijkstra.Distance](g *Grid) *Walker[D] {
	return &Walker[D]{Grid: g, Store: NewDistanceGrid[D](g.Width, g.Height)}
}

// Neighbours yields the in-bounds orthogonal neighbours of p at cost 1.
func (w *Walker[D]) Neighbours(p Pos, b *Grid) []dijkstra.Edge[Pos, D] {
	adj := direction.ValidNeighbours(p.X, p.Y, b.Width, b.Height)
	out := make([]dijkstra.Edge[Pos, D], len(adj))
	for i, xy := range adj {
		out[i] = dijkstra.Edge[Pos, D]{To: Pos{X: xy[0], Y: xy[1]}, Cost: 1}
	}
	return out
}

// IsImpossible reports walls.
func (w *Walker[D]) IsImpossible(p Pos) bool { return w.Grid.IsWall(p) }

// Dist implements dijkstra.Traversal.
func (w *Walker[D]) Dist(p Pos) (D, bool) { return w.Store.Dist(p) }

// SetDist implements dijkstra.Traversal.
func (w *Walker[D]) SetDist(p Pos, d D) { w.Store.SetDist(p, d) }

// Run computes distances from source over the whole grid.
func (w *Walker[D]) Run(source Pos, opts ...dijkstra.Option[Pos, D]) dijkstra.Stats {
	return dijkstra.Run[Pos, *Grid, D](w, source, 0, w.Grid, opts...)
}

// ShortestPath is the number of steps from one cell to another, or false if
// to cannot be reached.
func ShortestPath[D dijkstra.Distance](g *Grid, from, to Pos) (D, bool) {
	w := NewWalker[D](g)
	w.Run(from)
	return w.Store.Dist(to)
}
