package day25_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day12"
	"github.com/katalvlaran/advent2016/days/day25"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

// antenna transmits the bits of a+8, lowest first, over and over.
const antenna = `cpy a d
cpy 4 c
cpy 2 b
inc d
dec b
jnz b -2
dec c
jnz c -5
cpy d a
jnz 0 0
cpy a b
cpy 0 a
cpy 2 c
jnz b 2
jnz 1 6
dec b
dec c
jnz c -4
inc a
jnz 1 -7
cpy 2 b
jnz c 2
jnz 1 4
dec b
dec c
jnz 1 -4
jnz 0 0
out b
jnz a -19
jnz 1 -21
`

func TestIsClock(t *testing.T) {
	prog, err := day12.Parse(antenna)
	require.NoError(t, err)

	for seed, want := range map[int]bool{0: false, 1: false, 2: true, 3: false, 34: true} {
		got, err := day25.IsClock(prog, seed)
		require.NoError(t, err)
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

func TestSample(t *testing.T) {
	assert.Equal(t, "2", puzzletest.Solve(t, day25.Puzzle, antenna, 1))
	assert.Equal(t, "N/A", puzzletest.Solve(t, day25.Puzzle, antenna, 2))
}

func TestIsClock_NotClocks(t *testing.T) {
	cases := map[string]string{
		"halts":       "out 0\nout 1\n",
		"silent loop": "jnz 1 0\n",
		"odd cycle":   "out 0\nout 1\nout 0\njnz 1 -3\n",
		"stuck at 0":  "out 0\njnz 1 -1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			prog, err := day12.Parse(src)
			require.NoError(t, err)
			ok, err := day25.IsClock(prog, 0)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	prog, err := day12.Parse("out 0\nout 1\njnz 1 -2\n")
	require.NoError(t, err)
	ok, err := day25.IsClock(prog, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLowestSeed_None(t *testing.T) {
	prog, err := day12.Parse("out 1\n")
	require.NoError(t, err)
	_, err = day25.LowestSeed(prog, 10)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
