// Package day06 solves "Signals and Noise": recover a message from
// per-column letter frequencies.
package day06

import (
	"fmt"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 6 solver.
var Puzzle = puzzle.Define(6, "Signals and Noise", Parse, part1, part2)

// Parse reads equally long lines of repeated transmissions.
func Parse(raw string) ([][]rune, error) {
	rows, err := puzzle.Rows(raw)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has length %d, want %d", puzzle.ErrParse, i+1, len(r), len(rows[0]))
		}
	}

	return rows, nil
}

// Decode picks, for every column, the letter whose count wins under
// better(count, best). Ties keep the smallest letter.
func Decode(rows [][]rune, better func(n, best int) bool) string {
	out := make([]rune, len(rows[0]))
	for col := range out {
		counts := make(map[rune]int)
		for _, r := range rows {
			counts[r[col]]++
		}
		first := true
		for c, n := range counts {
			if first || better(n, counts[out[col]]) || (n == counts[out[col]] && c < out[col]) {
				out[col], first = c, false
			}
		}
	}

	return string(out)
}

func part1(rows [][]rune) (string, error) {
	return Decode(rows, func(n, best int) bool { return n > best }), nil
}

func part2(rows [][]rune) (string, error) {
	return Decode(rows, func(n, best int) bool { return n < best }), nil
}
