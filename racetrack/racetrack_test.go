package racetrack_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/racetrack"
)

const sample = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

func parseSample(t *testing.T) *racetrack.Track {
	t.Helper()
	tr, err := racetrack.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	return tr
}

func TestLength(t *testing.T) {
	tr := parseSample(t)
	n, ok := tr.Length()
	require.True(t, ok)
	assert.Equal(t, uint32(84), n)
	assert.Equal(t, 85, tr.Distances().Reached(), "the track is a single lane")
	assert.Positive(t, tr.Stats().Popped)
}

func TestCheats_Short(t *testing.T) {
	tr := parseSample(t)
	got, err := tr.Cheats(2)
	require.NoError(t, err)

	want := map[int]int{
		2: 14, 4: 14, 6: 2, 8: 4, 10: 2, 12: 3,
		20: 1, 36: 1, 38: 1, 40: 1, 64: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("2-move cheat histogram mismatch (-want +got):\n%s", diff)
	}
}

func TestCheats_Long(t *testing.T) {
	tr := parseSample(t)
	got, err := tr.Cheats(20)
	require.NoError(t, err)

	want := map[int]int{
		50: 32, 52: 31, 54: 29, 56: 39, 58: 25, 60: 23, 62: 20,
		64: 19, 66: 12, 68: 14, 70: 12, 72: 22, 74: 4, 76: 3,
	}
	for saved := range got {
		if saved < 50 {
			delete(got, saved)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("20-move cheat histogram (>=50) mismatch (-want +got):\n%s", diff)
	}

	n, err := tr.CountCheats(20, 50)
	require.NoError(t, err)
	assert.Equal(t, 285, n)
}

func TestCountCheats(t *testing.T) {
	tr := parseSample(t)

	n, err := tr.CountCheats(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 44, n)

	n, err = tr.CountCheats(2, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = tr.CountCheats(1, 0)
	assert.ErrorIs(t, err, racetrack.ErrBadCheat)
}

func TestParse_Errors(t *testing.T) {
	_, err := racetrack.Parse(strings.NewReader("#.E#\n"))
	assert.ErrorIs(t, err, racetrack.ErrMissingStart)

	_, err = racetrack.Parse(strings.NewReader("#S.#\n"))
	assert.ErrorIs(t, err, racetrack.ErrMissingEnd)
}
