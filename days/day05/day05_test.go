package day05_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day05"
	"github.com/katalvlaran/advent2016/hashsearch"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

func TestFirstInterestingIndex(t *testing.T) {
	m, err := hashsearch.FirstMatch(context.Background(), "abc", 3231929, hashsearch.FiveZeros)
	require.NoError(t, err)
	assert.Equal(t, 3231929, m.N)
	assert.Equal(t, byte(1), m.Digest[2])
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := day05.Password(ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSample(t *testing.T) {
	if testing.Short() {
		t.Skip("brute-forces several million digests")
	}
	assert.Equal(t, "18f47a30", puzzletest.Solve(t, day05.Puzzle, "abc\n", 1))
	assert.Equal(t, "05ace8e3", puzzletest.Solve(t, day05.Puzzle, "abc\n", 2))
}
