// Package day14 solves "One-Time Pad": find the index of the 64th key in a
// stream of (possibly stretched) MD5 hashes.
package day14

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent2016/hashsearch"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 14 solver.
var Puzzle = puzzle.Define(14, "One-Time Pad", puzzle.Trimmed, part1, part2)

const (
	// Window is how many following hashes may confirm a key.
	Window = 1000
	// Keys is the ordinal of the key whose index is wanted.
	Keys = 64
	// StretchRounds is the total hashing rounds of a stretched key.
	StretchRounds = 2017
)

// runs describes one hash: the first tripled hex digit (-1 if none) and
// the set of digits appearing five times in a row.
type runs struct {
	triple int
	fives  uint16
}

func hexValue(c byte) int {
	if c <= '9' {
		return int(c - '0')
	}

	return int(c-'a') + 10
}

func scan(h string) runs {
	r := runs{triple: -1}
	for i := 0; i+2 < len(h); i++ {
		if h[i] != h[i+1] || h[i] != h[i+2] {
			continue
		}
		if r.triple < 0 {
			r.triple = hexValue(h[i])
		}
		if i+4 < len(h) && h[i] == h[i+3] && h[i] == h[i+4] {
			r.fives |= 1 << hexValue(h[i])
		}
	}

	return r
}

// KeyIndex returns the index that produces the nth key for salt, hashing
// each candidate rounds times. A hash is a key when its first triple
// appears as a quintuple in one of the next Window hashes.
func KeyIndex(ctx context.Context, salt string, rounds, nth int, opts ...hashsearch.Option) (int, error) {
	var (
		ring  [Window + 1]runs
		count [16]int
		found int
	)
	for n, h := range hashsearch.Stream(ctx, salt, rounds, opts...) {
		r := scan(h)
		ring[n%len(ring)] = r
		for d := 0; d < 16; d++ {
			if r.fives&(1<<d) != 0 {
				count[d]++
			}
		}
		if n < Window {
			continue
		}

		// count now covers (k, n]; drop k's own quintuples first
		k := n - Window
		cand := ring[k%len(ring)]
		for d := 0; d < 16; d++ {
			if cand.fives&(1<<d) != 0 {
				count[d]--
			}
		}
		if cand.triple >= 0 && count[cand.triple] > 0 {
			if found++; found == nth {
				return k, nil
			}
		}
	}

	return 0, fmt.Errorf("day14: key stream interrupted: %w", ctx.Err())
}

func part1(salt string) (int, error) { return KeyIndex(context.Background(), salt, 1, Keys) }

func part2(salt string) (int, error) {
	return KeyIndex(context.Background(), salt, StretchRounds, Keys)
}
