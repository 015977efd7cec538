package day04_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day04"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

const sample = `aaaaa-bbb-z-y-x-123[abxyz]
a-b-c-d-e-f-g-h-987[abcde]
not-a-real-room-404[oarel]
totally-real-room-200[decoy]
`

func TestParseRoom(t *testing.T) {
	r, err := day04.ParseRoom("aaaaa-bbb-z-y-x-123[abxyz]")
	require.NoError(t, err)
	assert.Equal(t, day04.Room{Name: "aaaaa-bbb-z-y-x", Sector: 123, Checksum: "abxyz"}, r)

	for _, bad := range []string{"abc-1[abcde", "abc-1[ab]", "abc[abcde]", "abc-x[abcde]"} {
		_, err := day04.ParseRoom(bad)
		assert.Error(t, err, bad)
	}
}

func TestReal(t *testing.T) {
	want := []bool{true, true, true, false}
	rooms, err := day04.Parse(sample)
	require.NoError(t, err)
	for i, r := range rooms {
		assert.Equal(t, want[i], r.Real(), r.Name)
	}
	assert.Equal(t, "1514", puzzletest.Solve(t, day04.Puzzle, sample, 1))
}

func TestDecrypt(t *testing.T) {
	r := day04.Room{Name: "qzmt-zixmtkozy-ivhz", Sector: 343}
	assert.Equal(t, "very encrypted name", r.Decrypt())
}

func TestPart2(t *testing.T) {
	// "north" shifted back by 1
	assert.Equal(t, "1", puzzletest.Solve(t, day04.Puzzle, "mnqsg-onkd-1[ndgkm]\n", 2))

	err := puzzletest.SolveErr(t, day04.Puzzle, sample, 2)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
