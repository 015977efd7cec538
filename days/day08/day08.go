// Package day08 solves "Two-Factor Authentication": drive a small
// rotating pixel display.
package day08

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2016/gridgraph"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 8 solver.
var Puzzle = puzzle.Define(8, "Two-Factor Authentication", Parse, part1, part2)

// Screen size of the keypad display.
const (
	Width  = 50
	Height = 6
)

// Kind selects what a Command does.
type Kind uint8

const (
	Rect Kind = iota
	RotateRow
	RotateColumn
)

// Command is one display instruction. For Rect, A×B is the lit rectangle;
// for rotations A is the row or column and B the shift.
type Command struct {
	Kind Kind
	A, B int
}

// ParseCommand decodes "rect AxB", "rotate row y=A by B" or
// "rotate column x=A by B".
func ParseCommand(line string) (Command, error) {
	f := strings.Fields(line)
	n := puzzle.Ints[int](line)
	switch {
	case len(f) == 2 && f[0] == "rect" && len(n) == 2:
		return Command{Rect, n[0], n[1]}, nil
	case len(f) == 5 && f[0] == "rotate" && f[1] == "row" && strings.HasPrefix(f[2], "y=") && len(n) == 2:
		return Command{RotateRow, n[0], n[1]}, nil
	case len(f) == 5 && f[0] == "rotate" && f[1] == "column" && strings.HasPrefix(f[2], "x=") && len(n) == 2:
		return Command{RotateColumn, n[0], n[1]}, nil
	}

	return Command{}, errors.New("unknown command")
}

// Parse reads one command per line.
var Parse = puzzle.LinesOf(ParseCommand)

// Display is a grid of pixels, all off initially.
type Display struct {
	px *gridgraph.Grid[bool]
}

// NewDisplay returns a blank w×h display.
func NewDisplay(w, h int) (*Display, error) {
	g, err := gridgraph.Filled(w, h, false, gridgraph.DefaultOptions())
	if err != nil {
		return nil, err
	}

	return &Display{px: g}, nil
}

// Apply executes c. Coordinates outside the display are an error.
func (d *Display) Apply(c Command) error {
	w, h := d.px.Width, d.px.Height
	switch c.Kind {
	case Rect:
		if c.A > w || c.B > h || c.A < 0 || c.B < 0 {
			return fmt.Errorf("day08: rect %dx%d exceeds %dx%d display", c.A, c.B, w, h)
		}
		for y := 0; y < c.B; y++ {
			for x := 0; x < c.A; x++ {
				d.px.Set(gridgraph.Point{X: x, Y: y}, true)
			}
		}
	case RotateRow:
		if c.A < 0 || c.A >= h {
			return fmt.Errorf("day08: row %d out of range", c.A)
		}
		d.rotate(w, func(i int) gridgraph.Point { return gridgraph.Point{X: i, Y: c.A} }, c.B)
	case RotateColumn:
		if c.A < 0 || c.A >= w {
			return fmt.Errorf("day08: column %d out of range", c.A)
		}
		d.rotate(h, func(i int) gridgraph.Point { return gridgraph.Point{X: c.A, Y: i} }, c.B)
	}

	return nil
}

// rotate shifts the n cells addressed by at forward by k, wrapping around.
func (d *Display) rotate(n int, at func(i int) gridgraph.Point, k int) {
	line := make([]bool, n)
	for i := range line {
		line[i] = d.px.At(at(i))
	}
	for i, v := range line {
		d.px.Set(at(((i+k)%n+n)%n), v)
	}
}

// Lit counts pixels that are on.
func (d *Display) Lit() int {
	return d.px.Count(func(on bool) bool { return on })
}

// String draws lit pixels as '#' and the rest as '.'.
func (d *Display) String() string {
	return d.px.Render(func(on bool) rune {
		if on {
			return '#'
		}
		return '.'
	})
}

func run(cmds []Command) (*Display, error) {
	d, err := NewDisplay(Width, Height)
	if err != nil {
		return nil, err
	}
	for i, c := range cmds {
		if err := d.Apply(c); err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
	}

	return d, nil
}

func part1(cmds []Command) (int, error) {
	d, err := run(cmds)
	if err != nil {
		return 0, err
	}

	return d.Lit(), nil
}

// part2 answers with the rendered screen; the letters are read by eye.
func part2(cmds []Command) (string, error) {
	d, err := run(cmds)
	if err != nil {
		return "", err
	}

	return "\n" + d.String(), nil
}
