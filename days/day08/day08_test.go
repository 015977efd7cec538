package day08_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day08"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

const sample = `rect 3x2
rotate column x=1 by 1
rotate row y=0 by 4
rotate column x=1 by 1
`

func TestSampleDisplay(t *testing.T) {
	cmds, err := day08.Parse(sample)
	require.NoError(t, err)

	d, err := day08.NewDisplay(7, 3)
	require.NoError(t, err)
	for _, c := range cmds {
		require.NoError(t, d.Apply(c))
	}
	assert.Equal(t, ".#..#.#\n#.#....\n.#.....", d.String())
	assert.Equal(t, 6, d.Lit())
}

func TestParseCommand(t *testing.T) {
	c, err := day08.ParseCommand("rotate column x=32 by 1")
	require.NoError(t, err)
	assert.Equal(t, day08.Command{Kind: day08.RotateColumn, A: 32, B: 1}, c)

	for _, bad := range []string{"rect 3", "rotate row x=1 by 2", "spin 3"} {
		_, err := day08.ParseCommand(bad)
		assert.Error(t, err, bad)
	}
}

func TestApply_OutOfRange(t *testing.T) {
	d, err := day08.NewDisplay(7, 3)
	require.NoError(t, err)
	assert.Error(t, d.Apply(day08.Command{Kind: day08.Rect, A: 8, B: 1}))
	assert.Error(t, d.Apply(day08.Command{Kind: day08.RotateRow, A: 3, B: 1}))
}

func TestPuzzle(t *testing.T) {
	assert.Equal(t, "6", puzzletest.Solve(t, day08.Puzzle, sample, 1))
	screen := puzzletest.Solve(t, day08.Puzzle, sample, 2)
	assert.Len(t, screen, 1+day08.Height*(day08.Width+1)-1)
}
