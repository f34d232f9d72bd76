package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/internal/config"
)

const mazeInput = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const bytesInput = "5,4\n4,2\n4,5\n3,0\n2,1\n6,3\n2,4\n1,5\n0,6\n3,3\n2,6\n5,1\n" +
	"1,2\n5,5\n2,5\n6,5\n1,4\n0,4\n6,4\n1,1\n6,1\n1,0\n0,5\n1,6\n2,0\n"

const raceInput = `###############
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

// execute runs the CLI with stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMazeCommand(t *testing.T) {
	out, err := execute(t, mazeInput, "maze")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 7036\npart 2: 45\n", out)
}

func TestMazeCommand_FileArg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("#####\n#S.E#\n#####\n"), 0o644))

	out, err := execute(t, "", "maze", path, "--step-cost", "5")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 10\npart 2: 3\n", out)
}

func TestBytesCommand(t *testing.T) {
	out, err := execute(t, bytesInput, "bytes", "--width", "7", "--height", "7", "--fallen", "12")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 22\npart 2: 6,1\n", out)
}

func TestBytesCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bytes:\n  width: 7\n  height: 7\n  fallen: 12\n"), 0o644))

	out, err := execute(t, bytesInput, "bytes", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "part 1: 22\npart 2: 6,1\n", out)
}

func TestRaceCommand(t *testing.T) {
	out, err := execute(t, raceInput, "race", "--min-saving", "50")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 1\npart 2: 285\n", out)

	out, err = execute(t, raceInput, "race", "--min-saving", "20")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "part 1: 5\n"), out)
}

func TestCommand_Errors(t *testing.T) {
	_, err := execute(t, raceInput, "race", "--max-cheat", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "", "maze", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)

	_, err = execute(t, "#S#\n", "maze")
	assert.Error(t, err)
}
