// Package day01 solves "No Time for a Taxicab": follow turn-and-walk
// instructions on a city grid.
package day01

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent2016/gridgraph"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 1 solver.
var Puzzle = puzzle.Define(1, "No Time for a Taxicab", Parse, part1, part2)

// Move turns left or right, then walks Blocks steps.
type Move struct {
	Left   bool
	Blocks int
}

// Parse reads a comma-separated list such as "R2, L3".
func Parse(raw string) ([]Move, error) {
	items, err := puzzle.CommaSeparated(raw)
	if err != nil {
		return nil, err
	}
	moves := make([]Move, len(items))
	for i, it := range items {
		if len(it) < 2 || (it[0] != 'L' && it[0] != 'R') {
			return nil, fmt.Errorf("%w: bad move %q", puzzle.ErrParse, it)
		}
		n, err := strconv.Atoi(it[1:])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad distance in %q", puzzle.ErrParse, it)
		}
		moves[i] = Move{Left: it[0] == 'L', Blocks: n}
	}

	return moves, nil
}

func turn(facing gridgraph.Point, left bool) gridgraph.Point {
	if left {
		return gridgraph.Point{X: facing.Y, Y: -facing.X}
	}

	return gridgraph.Point{X: -facing.Y, Y: facing.X}
}

// Walk follows moves from the origin, facing north, and passes every block
// entered to visit. It stops early when visit returns false and returns the
// last block reached.
func Walk(moves []Move, visit func(p gridgraph.Point) bool) gridgraph.Point {
	pos, facing := gridgraph.Point{}, gridgraph.Up
	for _, m := range moves {
		facing = turn(facing, m.Left)
		for i := 0; i < m.Blocks; i++ {
			pos = pos.Add(facing)
			if !visit(pos) {
				return pos
			}
		}
	}

	return pos
}

func part1(moves []Move) (int, error) {
	end := Walk(moves, func(gridgraph.Point) bool { return true })

	return end.Manhattan(gridgraph.Point{}), nil
}

func part2(moves []Move) (int, error) {
	seen := make(map[gridgraph.Point]bool)
	found := false
	p := Walk(moves, func(p gridgraph.Point) bool {
		if seen[p] {
			found = true
			return false
		}
		seen[p] = true
		return true
	})
	if !found {
		return 0, fmt.Errorf("%w: no block is visited twice", puzzle.ErrNoSolution)
	}

	return p.Manhattan(gridgraph.Point{}), nil
}
