// Package days gathers the solvers of every Advent of Code 2016 day.
package days

import (
	"github.com/katalvlaran/advent2016/days/day01"
	"github.com/katalvlaran/advent2016/days/day02"
	"github.com/katalvlaran/advent2016/days/day03"
	"github.com/katalvlaran/advent2016/days/day04"
	"github.com/katalvlaran/advent2016/days/day05"
	"github.com/katalvlaran/advent2016/days/day06"
	"github.com/katalvlaran/advent2016/days/day07"
	"github.com/katalvlaran/advent2016/days/day08"
	"github.com/katalvlaran/advent2016/days/day09"
	"github.com/katalvlaran/advent2016/days/day10"
	"github.com/katalvlaran/advent2016/days/day11"
	"github.com/katalvlaran/advent2016/days/day12"
	"github.com/katalvlaran/advent2016/days/day13"
	"github.com/katalvlaran/advent2016/days/day14"
	"github.com/katalvlaran/advent2016/days/day15"
	"github.com/katalvlaran/advent2016/days/day16"
	"github.com/katalvlaran/advent2016/days/day17"
	"github.com/katalvlaran/advent2016/days/day18"
	"github.com/katalvlaran/advent2016/days/day19"
	"github.com/katalvlaran/advent2016/days/day20"
	"github.com/katalvlaran/advent2016/days/day21"
	"github.com/katalvlaran/advent2016/days/day22"
	"github.com/katalvlaran/advent2016/days/day23"
	"github.com/katalvlaran/advent2016/days/day24"
	"github.com/katalvlaran/advent2016/days/day25"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Solvers lists every day in order.
var Solvers = []puzzle.Solver{
	day01.Puzzle, day02.Puzzle, day03.Puzzle, day04.Puzzle, day05.Puzzle,
	day06.Puzzle, day07.Puzzle, day08.Puzzle, day09.Puzzle, day10.Puzzle,
	day11.Puzzle, day12.Puzzle, day13.Puzzle, day14.Puzzle, day15.Puzzle,
	day16.Puzzle, day17.Puzzle, day18.Puzzle, day19.Puzzle, day20.Puzzle,
	day21.Puzzle, day22.Puzzle, day23.Puzzle, day24.Puzzle, day25.Puzzle,
}

// All returns a registry holding every day.
func All() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(Solvers...)
}
