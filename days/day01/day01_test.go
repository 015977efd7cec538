package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day01"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

func TestPart1(t *testing.T) {
	cases := map[string]string{
		"R2, L3":         "5",
		"R2, R2, R2":     "2",
		"R5, L5, R5, R3": "12",
	}
	for in, want := range cases {
		assert.Equal(t, want, puzzletest.Solve(t, day01.Puzzle, in, 1), in)
	}
}

func TestPart2(t *testing.T) {
	assert.Equal(t, "4", puzzletest.Solve(t, day01.Puzzle, "R8, R4, R4, R8", 2))

	err := puzzletest.SolveErr(t, day01.Puzzle, "R1, R1", 2)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestParse(t *testing.T) {
	moves, err := day01.Parse("L10, R0\n")
	require.NoError(t, err)
	assert.Equal(t, []day01.Move{{Left: true, Blocks: 10}, {Left: false, Blocks: 0}}, moves)

	for _, bad := range []string{"X3", "R", "L-2", ""} {
		_, err := day01.Parse(bad)
		assert.ErrorIs(t, err, puzzle.ErrParse, bad)
	}
}
