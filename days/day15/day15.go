// Package day15 solves "Timing is Everything": find the first button press
// that lets a capsule fall through every rotating disc.
package day15

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 15 solver.
var Puzzle = puzzle.Define(15, "Timing is Everything", Parse, part1, part2)

// Disc is the Depth-th disc below the button; it has Positions slots and
// sits at Start at time 0. The capsule passes when it reaches slot 0.
type Disc struct {
	Depth, Positions, Start int
}

// Parse reads lines like
// "Disc #1 has 5 positions; at time=0, it is at position 4."
var Parse = puzzle.LinesOf(func(line string) (Disc, error) {
	n := puzzle.Ints[int](line)
	if len(n) != 4 || n[2] != 0 {
		return Disc{}, errors.New("want disc, positions, time=0 and start")
	}
	if n[1] < 1 || n[3] < 0 || n[3] >= n[1] {
		return Disc{}, fmt.Errorf("bad positions %d or start %d", n[1], n[3])
	}

	return Disc{Depth: n[0], Positions: n[1], Start: n[3]}, nil
})

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// FirstDrop sieves disc by disc: once a time t works for a prefix of the
// discs, only t + k·lcm(prefix positions) can keep it working.
func FirstDrop(discs []Disc) (int, error) {
	t, step := 0, 1
	for _, d := range discs {
		tries := 0
		for (d.Start+d.Depth+t)%d.Positions != 0 {
			if tries++; tries > d.Positions {
				return 0, fmt.Errorf("%w: disc #%d never lines up", puzzle.ErrNoSolution, d.Depth)
			}
			t += step
		}
		step = step / gcd(step, d.Positions) * d.Positions
	}

	return t, nil
}

func part1(discs []Disc) (int, error) { return FirstDrop(discs) }

// part2 adds an 11-slot disc at position 0 below the others.
func part2(discs []Disc) (int, error) {
	extra := append(discs[:len(discs):len(discs)], Disc{Depth: len(discs) + 1, Positions: 11})

	return FirstDrop(extra)
}
