// Package day18 solves "Like a Rogue": count safe tiles in a room whose
// trap rows follow a rule-90 automaton.
package day18

import (
	"fmt"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 18 solver.
var Puzzle = puzzle.Define(18, "Like a Rogue", Parse, part1, part2)

// Parse reads the first row: '.' is safe, '^' a trap.
func Parse(raw string) ([]bool, error) {
	s, err := puzzle.Trimmed(raw)
	if err != nil {
		return nil, err
	}
	row := make([]bool, len(s))
	for i, c := range s {
		switch c {
		case '^':
			row[i] = true
		case '.':
		default:
			return nil, fmt.Errorf("%w: unknown tile %q", puzzle.ErrParse, c)
		}
	}

	return row, nil
}

// SafeTiles counts safe tiles over rows rows, starting from first. A tile
// is a trap when exactly one of its upper-left and upper-right neighbours
// is; walls beyond the edges are safe.
func SafeTiles(first []bool, rows int) int {
	cur := append([]bool(nil), first...)
	next := make([]bool, len(cur))
	safe := 0
	for r := 0; r < rows; r++ {
		for i, trap := range cur {
			if !trap {
				safe++
			}
			left := i > 0 && cur[i-1]
			right := i+1 < len(cur) && cur[i+1]
			next[i] = left != right
		}
		cur, next = next, cur
	}

	return safe
}

func part1(row []bool) (int, error) { return SafeTiles(row, 40), nil }

func part2(row []bool) (int, error) { return SafeTiles(row, 400000), nil }
