package direction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/direction"
)

func TestRotation(t *testing.T) {
	for _, d := range direction.All {
		assert.Equal(t, d, d.RotateRight().RotateLeft(), "right then left from %v", d)
		assert.Equal(t, d.Opposite(), d.RotateRight().RotateRight(), "two rights from %v", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "double opposite from %v", d)
	}
	assert.Equal(t, direction.Right, direction.Up.RotateRight())
	assert.Equal(t, direction.Left, direction.Up.RotateLeft())
	assert.Equal(t, direction.Up, direction.Left.RotateRight())
}

func TestDeltaAndApply(t *testing.T) {
	cases := []struct {
		d      direction.Direction
		wx, wy int
	}{
		{direction.Up, 5, 4},
		{direction.Right, 6, 5},
		{direction.Down, 5, 6},
		{direction.Left, 4, 5},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			x, y := tc.d.Apply(5, 5)
			assert.Equal(t, tc.wx, x)
			assert.Equal(t, tc.wy, y)

			dx, dy := tc.d.Delta()
			ox, oy := tc.d.Opposite().Delta()
			assert.Equal(t, 0, dx+ox)
			assert.Equal(t, 0, dy+oy)
		})
	}
}

func TestValidNeighbours(t *testing.T) {
	// Corner: only right and down survive.
	assert.Equal(t, [][2]int{{1, 0}, {0, 1}}, direction.ValidNeighbours(0, 0, 3, 3))
	// Centre: all four, clockwise from up.
	assert.Equal(t, [][2]int{{1, 0}, {2, 1}, {1, 2}, {0, 1}}, direction.ValidNeighbours(1, 1, 3, 3))
	// Single cell has none.
	assert.Empty(t, direction.ValidNeighbours(0, 0, 1, 1))
}

func TestParse(t *testing.T) {
	for r, want := range map[rune]direction.Direction{
		'^': direction.Up, '>': direction.Right, 'v': direction.Down, '<': direction.Left,
		'U': direction.Up, 'R': direction.Right, 'D': direction.Down, 'L': direction.Left,
	} {
		got, err := direction.Parse(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := direction.Parse('x')
	assert.ErrorIs(t, err, direction.ErrUnknownDirection)
}

func TestStringAndValid(t *testing.T) {
	assert.Equal(t, "left", direction.Left.String())
	assert.Equal(t, "Direction(7)", direction.Direction(7).String())
	assert.True(t, direction.Down.Valid())
	assert.False(t, direction.Direction(-1).Valid())
}
