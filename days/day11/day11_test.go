package day11_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day11"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

const sample = `The first floor contains a hydrogen-compatible microchip and a lithium-compatible microchip.
The second floor contains a hydrogen generator.
The third floor contains a lithium generator.
The fourth floor contains nothing relevant.
`

const onePair = `The first floor contains a thulium generator and a thulium-compatible microchip.
The second floor contains nothing relevant.
The third floor contains nothing relevant.
The fourth floor contains nothing relevant.
`

func TestSample(t *testing.T) {
	assert.Equal(t, "11", puzzletest.Solve(t, day11.Puzzle, sample, 1))
}

func TestSteps_OnePair(t *testing.T) {
	s, err := day11.Parse(onePair)
	require.NoError(t, err)
	steps, err := day11.Steps(s)
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
}

func TestSteps_AlreadyDone(t *testing.T) {
	s, err := day11.Parse("nothing\nnothing\nnothing\na cobalt generator and a cobalt-compatible microchip\n")
	require.NoError(t, err)
	steps, err := day11.Steps(s)
	require.NoError(t, err)
	assert.Zero(t, steps)
}

func TestSteps_UnsafeStart(t *testing.T) {
	// the extra pairs' generators fry the lone sample chips on floor one
	s, err := day11.Parse(sample)
	require.NoError(t, err)
	ext, err := s.WithExtra(2)
	require.NoError(t, err)
	assert.False(t, ext.Safe())

	_, err = day11.Steps(ext)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestParse_Errors(t *testing.T) {
	_, err := day11.Parse("a\nb\nc\n")
	assert.ErrorIs(t, err, puzzle.ErrParse)

	_, err = day11.Parse("a tin generator\nb\nc\nd\n")
	assert.ErrorIs(t, err, puzzle.ErrParse)

	_, err = day11.Parse("a tin-compatible microchip\nb\nc\nd\n")
	assert.ErrorIs(t, err, puzzle.ErrParse)
}

func TestWithExtra_Overflow(t *testing.T) {
	s, err := day11.Parse(onePair)
	require.NoError(t, err)
	_, err = s.WithExtra(day11.MaxElements)
	assert.Error(t, err)
}
