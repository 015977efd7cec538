package day07_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/days/day07"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/puzzle/puzzletest"
)

func TestTLS(t *testing.T) {
	cases := map[string]bool{
		"abba[mnop]qrst":       true,
		"abcd[bddb]xyyx":       false,
		"aaaa[qwer]tyui":       false,
		"ioxxoj[asdfgh]zxcvbn": true,
	}
	for in, want := range cases {
		a, err := day07.ParseAddress(in)
		require.NoError(t, err)
		assert.Equal(t, want, a.TLS(), in)
	}
	assert.Equal(t, "2", puzzletest.Solve(t, day07.Puzzle,
		"abba[mnop]qrst\nabcd[bddb]xyyx\naaaa[qwer]tyui\nioxxoj[asdfgh]zxcvbn\n", 1))
}

func TestSSL(t *testing.T) {
	cases := map[string]bool{
		"aba[bab]xyz":   true,
		"xyx[xyx]xyx":   false,
		"aaa[kek]eke":   true,
		"zazbz[bzb]cdb": true,
	}
	for in, want := range cases {
		a, err := day07.ParseAddress(in)
		require.NoError(t, err)
		assert.Equal(t, want, a.SSL(), in)
	}
	assert.Equal(t, "3", puzzletest.Solve(t, day07.Puzzle,
		"aba[bab]xyz\nxyx[xyx]xyx\naaa[kek]eke\nzazbz[bzb]cdb\n", 2))
}

func TestParseAddress(t *testing.T) {
	a, err := day07.ParseAddress("ab[cd]ef[gh]")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ef", ""}, a.Supernet)
	assert.Equal(t, []string{"cd", "gh"}, a.Hypernet)

	for _, bad := range []string{"a[b[c]]", "a]b", "a[b"} {
		_, err := day07.Parse(bad)
		assert.ErrorIs(t, err, puzzle.ErrParse, bad)
	}
}
