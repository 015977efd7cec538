// Package day03 solves "Squares With Three Sides".
package day03

import (
	"fmt"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 3 solver.
var Puzzle = puzzle.Define(3, "Squares With Three Sides", Parse, part1, part2)

// Triangle holds three candidate side lengths.
type Triangle [3]int

// Possible reports whether every side is shorter than the other two combined.
func (t Triangle) Possible() bool {
	return t[0] < t[1]+t[2] && t[1] < t[0]+t[2] && t[2] < t[0]+t[1]
}

// Parse reads three whitespace-separated lengths per line.
var Parse = puzzle.LinesOf(func(line string) (Triangle, error) {
	n := puzzle.Ints[int](line)
	if len(n) != 3 {
		return Triangle{}, fmt.Errorf("want 3 sides, got %d", len(n))
	}

	return Triangle{n[0], n[1], n[2]}, nil
})

// Columns regroups triangles read down the columns of every block of three
// rows.
func Columns(rows []Triangle) ([]Triangle, error) {
	if len(rows)%3 != 0 {
		return nil, fmt.Errorf("%w: %d rows is not a multiple of 3", puzzle.ErrParse, len(rows))
	}
	out := make([]Triangle, 0, len(rows))
	for i := 0; i < len(rows); i += 3 {
		for c := 0; c < 3; c++ {
			out = append(out, Triangle{rows[i][c], rows[i+1][c], rows[i+2][c]})
		}
	}

	return out, nil
}

func countPossible(ts []Triangle) int {
	n := 0
	for _, t := range ts {
		if t.Possible() {
			n++
		}
	}

	return n
}

func part1(ts []Triangle) (int, error) { return countPossible(ts), nil }

func part2(ts []Triangle) (int, error) {
	cols, err := Columns(ts)
	if err != nil {
		return 0, err
	}

	return countPossible(cols), nil
}
