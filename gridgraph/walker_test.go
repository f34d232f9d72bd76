package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func mustGrid(t *testing.T, lines ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(lines)
	require.NoError(t, err)
	return g
}

func TestWalker_OpenGrid(t *testing.T) {
	g, err := gridgraph.NewFilledGrid(5, 5, gridgraph.Open)
	require.NoError(t, err)

	w := gridgraph.NewWalker[uint32](g)
	stats := w.Run(gridgraph.Pos{})

	d, ok := w.Store.Dist(gridgraph.Pos{X: 4, Y: 4})
	require.True(t, ok)
	assert.Equal(t, uint32(8), d)
	d, ok = w.Store.Dist(gridgraph.Pos{X: 0, Y: 4})
	require.True(t, ok)
	assert.Equal(t, uint32(4), d)

	assert.Equal(t, 25, w.Store.Reached())
	assert.Equal(t, 24, stats.Relaxed)
}

func TestWalker_GapInWall(t *testing.T) {
	g := mustGrid(t,
		".....",
		".....",
		"##.##",
		".....",
		".....",
	)
	d, ok := gridgraph.ShortestPath[uint32](g, gridgraph.Pos{}, gridgraph.Pos{X: 0, Y: 4})
	require.True(t, ok)
	assert.Equal(t, uint32(8), d)

	assert.Equal(t, 0, gridgraph.NewWalker[uint32](g).Store.Reached(), "fresh store starts empty")
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := mustGrid(t,
		"..#..",
		"..#..",
	)
	_, ok := gridgraph.ShortestPath[uint16](g, gridgraph.Pos{}, gridgraph.Pos{X: 4, Y: 1})
	assert.False(t, ok)
}

func TestDistanceGrid(t *testing.T) {
	s := gridgraph.NewDistanceGrid[uint8](3, 2)
	_, ok := s.Dist(gridgraph.Pos{X: 2, Y: 1})
	assert.False(t, ok)

	s.SetDist(gridgraph.Pos{X: 2, Y: 1}, 7)
	c := s.Clone()
	s.Reset()

	_, ok = s.Dist(gridgraph.Pos{X: 2, Y: 1})
	assert.False(t, ok)
	d, ok := c.Dist(gridgraph.Pos{X: 2, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, uint8(7), d)
	assert.Equal(t, 1, c.Reached())
	assert.Equal(t, 0, s.Reached())

	assert.Panics(t, func() { s.Dist(gridgraph.Pos{X: 3, Y: 0}) })
}

func TestWalker_MaxDistance(t *testing.T) {
	g, err := gridgraph.NewFilledGrid(10, 1, gridgraph.Open)
	require.NoError(t, err)
	w := gridgraph.NewWalker[uint32](g)
	w.Run(gridgraph.Pos{}, dijkstra.WithMaxDistance[gridgraph.Pos, uint32](3))
	assert.Equal(t, 4, w.Store.Reached())
}
