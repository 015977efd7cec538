// Package day13 solves "A Maze of Twisty Little Cubicles".
package day13

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/katalvlaran/advent2016/bfs"
	"github.com/katalvlaran/advent2016/gridgraph"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 13 solver.
var Puzzle = puzzle.Define(13, "A Maze of Twisty Little Cubicles", puzzle.Integer[int], part1, part2)

// Start is where every walk through the office begins.
var Start = gridgraph.Point{X: 1, Y: 1}

// Maze is the office floor generated from the designer's favourite number.
type Maze struct {
	Magic int
	Goal  gridgraph.Point
}

// Wall reports whether p is a wall. Negative coordinates are outside the
// building and count as walls.
func (m Maze) Wall(p gridgraph.Point) bool {
	if p.X < 0 || p.Y < 0 {
		return true
	}
	x, y := p.X, p.Y

	return bits.OnesCount(uint(x*x+3*x+2*x*y+y+y*y+m.Magic))%2 == 1
}

// Transitions yields the open cells next to from.
func (m Maze) Transitions(from gridgraph.Point) iter.Seq[gridgraph.Point] {
	return func(yield func(gridgraph.Point) bool) {
		for _, d := range [...]gridgraph.Point{gridgraph.Right, gridgraph.Down, gridgraph.Left, gridgraph.Up} {
			if next := from.Add(d); !m.Wall(next) && !yield(next) {
				return
			}
		}
	}
}

// IsFinal reports whether p is the goal.
func (m Maze) IsFinal(p gridgraph.Point) bool { return p == m.Goal }

// Steps returns the fewest steps from Start to the goal.
func (m Maze) Steps() (int, error) {
	res, err := bfs.FindLowestCost[gridgraph.Point](m, Start)
	if err != nil {
		return 0, err
	}
	cost, ok := res.Cost()
	if !ok {
		return 0, fmt.Errorf("%w: %v is walled off", puzzle.ErrNoSolution, m.Goal)
	}

	return cost, nil
}

// Reachable counts the locations at most limit steps from Start.
func (m Maze) Reachable(limit int) (int, error) {
	sweep := bfs.DriverFuncs[gridgraph.Point]{TransitionsFn: m.Transitions}
	res, err := bfs.FindLowestCost[gridgraph.Point](sweep, Start, bfs.WithCeiling(limit))
	if err != nil {
		return 0, err
	}

	return len(res.Seen), nil
}

func part1(magic int) (int, error) {
	return Maze{Magic: magic, Goal: gridgraph.Point{X: 31, Y: 39}}.Steps()
}

func part2(magic int) (int, error) {
	return Maze{Magic: magic}.Reachable(50)
}
