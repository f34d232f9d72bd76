package gridgraph

import "github.com/katalvlaran/gridpath/direction"

// Components labels every open cell with the id of its 4-connected region.
// Walls get -1. Ids run from 0 in row-major order of each region's first
// cell; the second result is the number of regions.
//
// Time:   O(W·H).
// Memory: O(W·H) for the labels and the queue.
func (g *Grid) Components() ([]int, int) {
	labels := make([]int, g.Width*g.Height)
	for i := range labels {
		labels[i] = -1
	}
	n := 0

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.Index(x, y)
			if labels[i0] >= 0 || g.IsWall(Pos{X: x, Y: y}) {
				continue
			}
			// flood the region
			queue := []int{i0}
			labels[i0] = n
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, v := range direction.ValidNeighbours(ux, uy, g.Width, g.Height) {
					vi := g.Index(v[0], v[1])
					if labels[vi] >= 0 || g.IsWall(Pos{X: v[0], Y: v[1]}) {
						continue
					}
					labels[vi] = n
					queue = append(queue, vi)
				}
			}
			n++
		}
	}
	return labels, n
}

// Connected reports whether a and b are open cells in the same region.
func (g *Grid) Connected(a, b Pos) bool {
	if g.IsWall(a) || g.IsWall(b) {
		return false
	}
	labels, _ := g.Components()
	return labels[g.Index(a.X, a.Y)] == labels[g.Index(b.X, b.Y)]
}
