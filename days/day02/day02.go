// Package day02 solves "Bathroom Security": walk a finger over a keypad.
package day02

import (
	"fmt"

	"github.com/katalvlaran/advent2016/gridgraph"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 2 solver.
var Puzzle = puzzle.Define(2, "Bathroom Security", Parse, part1, part2)

// Layouts of the two keypads; a space is a hole the finger cannot enter.
const (
	SquareLayout  = "123\n456\n789"
	DiamondLayout = "  1  \n 234 \n56789\n ABC \n  D  "
)

var steps = map[rune]gridgraph.Point{
	'U': gridgraph.Up,
	'D': gridgraph.Down,
	'L': gridgraph.Left,
	'R': gridgraph.Right,
}

// Parse reads one line of U/D/L/R moves per button.
func Parse(raw string) ([][]gridgraph.Point, error) {
	rows, err := puzzle.Rows(raw)
	if err != nil {
		return nil, err
	}
	out := make([][]gridgraph.Point, len(rows))
	for i, row := range rows {
		for _, r := range row {
			d, ok := steps[r]
			if !ok {
				return nil, fmt.Errorf("%w: line %d: unknown move %q", puzzle.ErrParse, i+1, r)
			}
			out[i] = append(out[i], d)
		}
	}

	return out, nil
}

// Keypad is a layout plus the finger's position on it.
type Keypad struct {
	keys *gridgraph.Grid[rune]
	at   gridgraph.Point
}

// NewKeypad parses layout and puts the finger on start.
func NewKeypad(layout string, start rune) (*Keypad, error) {
	g, err := gridgraph.Parse(layout, func(r rune) (rune, error) { return r, nil }, gridgraph.DefaultOptions())
	if err != nil {
		return nil, err
	}
	at, ok := g.Find(func(r rune) bool { return r == start })
	if !ok {
		return nil, fmt.Errorf("day02: key %q not on keypad", start)
	}

	return &Keypad{keys: g, at: at}, nil
}

// Press moves along line, ignoring moves off the pad, and returns the key
// under the finger at the end.
func (k *Keypad) Press(line []gridgraph.Point) rune {
	for _, d := range line {
		next := k.at.Add(d)
		if k.keys.InBounds(next) && k.keys.At(next) != ' ' {
			k.at = next
		}
	}

	return k.keys.At(k.at)
}

// Code presses every line on layout, starting from the 5 key.
func Code(layout string, lines [][]gridgraph.Point) (string, error) {
	pad, err := NewKeypad(layout, '5')
	if err != nil {
		return "", err
	}
	code := make([]rune, 0, len(lines))
	for _, l := range lines {
		code = append(code, pad.Press(l))
	}

	return string(code), nil
}

func part1(lines [][]gridgraph.Point) (string, error) { return Code(SquareLayout, lines) }

func part2(lines [][]gridgraph.Point) (string, error) { return Code(DiamondLayout, lines) }
