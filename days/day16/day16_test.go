package day16_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day16"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

// expand is the literal a + "0" + reverse(!a) construction.
func expand(seed []bool, size int) []bool {
	a := append([]bool(nil), seed...)
	for len(a) < size {
		b := make([]bool, 0, 2*len(a)+1)
		b = append(b, a...)
		b = append(b, false)
		for i := len(a) - 1; i >= 0; i-- {
			b = append(b, !a[i])
		}
		a = b
	}

	return a[:size]
}

func naiveChecksum(seed []bool, size int) string {
	d := expand(seed, size)
	for len(d)%2 == 0 {
		next := make([]bool, len(d)/2)
		for i := range next {
			next[i] = d[2*i] == d[2*i+1]
		}
		d = next
	}
	var sb strings.Builder
	for _, b := range d {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func bitsOf(s string) []bool {
	out := make([]bool, len(s))
	for i, c := range s {
		out[i] = c == '1'
	}

	return out
}

func TestDragon_Prefix(t *testing.T) {
	var got strings.Builder
	for b := range day16.Dragon(bitsOf("111100001010")) {
		if got.Len() == 25 {
			break
		}
		if b {
			got.WriteByte('1')
		} else {
			got.WriteByte('0')
		}
	}
	assert.Equal(t, "1111000010100101011110000", got.String())
}

func TestChecksum_Sample(t *testing.T) {
	assert.Equal(t, "01100", day16.Checksum(bitsOf("10000"), 20))
	assert.Equal(t, "100", day16.Checksum(bitsOf("110010110100"), 12))
}

func TestChecksum_MatchesNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(16))
	for i := 0; i < 200; i++ {
		seed := make([]bool, 1+rnd.Intn(12))
		for j := range seed {
			seed[j] = rnd.Intn(2) == 1
		}
		size := 1 + rnd.Intn(400)
		require.Equal(t, naiveChecksum(seed, size), day16.Checksum(seed, size), "seed %v size %d", seed, size)
	}
}

func TestPuzzle(t *testing.T) {
	assert.Len(t, puzzletest.Solve(t, day16.Puzzle, "10000", 1), 17)

	_, err := day16.Parse("10201")
	assert.ErrorIs(t, err, puzzle.ErrParse)
}
