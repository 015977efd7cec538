// Package day23 solves "Safe Cracking": assembunny with tgl, seeded with
// the number of eggs in register a.
package day23

import (
	"github.com/katalvlaran/advent2016/asm"
	"github.com/katalvlaran/advent2016/days/day12"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 23 solver.
var Puzzle = puzzle.Define(23, "Safe Cracking", day12.Parse, part1, part2)

// Eggs painted on the safe, then the real count.
const (
	FewEggs  = 7
	ManyEggs = 12
)

// Crack runs prog with a = eggs and returns the final value of a.
func Crack(prog asm.Program, eggs int) (int, error) {
	return day12.RegisterA(prog, asm.Registers{A: eggs})
}

func part1(p asm.Program) (int, error) { return Crack(p, FewEggs) }

func part2(p asm.Program) (int, error) { return Crack(p, ManyEggs) }
