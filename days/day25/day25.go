// Package day25 solves "Clock Signal": find the lowest seed for register a
// that makes the antenna program transmit 0, 1, 0, 1, ... forever.
package day25

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent2016/asm"
	"github.com/katalvlaran/advent2016/days/day12"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 25 solver. The last day has no second part.
var Puzzle = puzzle.Define[asm.Program, int, string](25, "Clock Signal", day12.Parse, part1, nil)

// Search limits.
const (
	MaxSeed   = 1 << 16
	StepLimit = 1 << 22
)

type snapshot struct {
	pc   int
	regs asm.Registers
}

// IsClock runs prog with a = seed until the machine state repeats. The
// seed drives a clock when every output alternated starting at 0 and the
// repeating stretch emits a positive even number of values, so the pattern
// continues in phase forever. Programs that rewrite themselves with tgl are
// not supported: the state is the program counter and the registers.
func IsClock(prog asm.Program, seed int) (bool, error) {
	var (
		want    int
		emitted int
		clock   bool
		broken  bool
		seen    = make(map[snapshot]int)
	)
	m := asm.NewMachine(prog, asm.Registers{A: seed})
	_, err := m.Run(
		asm.WithOutput(func(v int) bool {
			if v != want {
				broken = true
				return false
			}
			want ^= 1
			emitted++
			return true
		}),
		asm.WithTrace(func(pc int, regs asm.Registers) bool {
			if broken {
				return false
			}
			s := snapshot{pc, regs}
			if before, ok := seen[s]; ok {
				n := emitted - before
				clock = n > 0 && n%2 == 0
				return false
			}
			seen[s] = emitted
			return true
		}),
		asm.WithStepLimit(StepLimit),
	)
	if errors.Is(err, asm.ErrStepLimit) {
		return false, nil
	}

	return clock, err
}

// LowestSeed tries a = 0, 1, 2, ... below limit and returns the first
// seed that drives a clock.
func LowestSeed(prog asm.Program, limit int) (int, error) {
	for seed := 0; seed < limit; seed++ {
		ok, err := IsClock(prog, seed)
		if err != nil {
			return 0, err
		}
		if ok {
			return seed, nil
		}
	}

	return 0, fmt.Errorf("%w: no seed below %d", puzzle.ErrNoSolution, limit)
}

func part1(p asm.Program) (int, error) { return LowestSeed(p, MaxSeed) }
