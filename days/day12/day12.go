// Package day12 solves "Leonardo's Monorail": run the assembunny
// password program.
package day12

import (
	"github.com/katalvlaran/advent2016/asm"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 12 solver.
var Puzzle = puzzle.Define(12, "Leonardo's Monorail", Parse, part1, part2)

// Parse reads one assembunny instruction per line.
func Parse(raw string) (asm.Program, error) {
	lines, err := puzzle.Lines(raw)
	if err != nil {
		return nil, err
	}

	return asm.Parse(lines)
}

// RegisterA runs prog from regs to completion and returns register a.
func RegisterA(prog asm.Program, regs asm.Registers) (int, error) {
	m := asm.NewMachine(prog, regs)
	if _, err := m.Run(); err != nil {
		return 0, err
	}

	return m.Regs.A, nil
}

func part1(p asm.Program) (int, error) { return RegisterA(p, asm.Registers{}) }

// part2 starts with the ignition key turned: c = 1.
func part2(p asm.Program) (int, error) { return RegisterA(p, asm.Registers{C: 1}) }
