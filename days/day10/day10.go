// Package day10 solves "Balance Bots": chips flow through a network of
// comparing bots into output bins.
package day10

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 10 solver.
var Puzzle = puzzle.Define(10, "Balance Bots", Parse, part1, part2)

// Target is where a bot sends a chip.
type Target struct {
	Output bool
	ID     int
}

// Instruction is either an initial chip (Value ≥ 0, sent to Bot) or a rule
// for Bot (Value < 0).
type Instruction struct {
	Value     int
	Bot       int
	Low, High Target
}

func parseTarget(kind, id string) (Target, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return Target{}, err
	}
	switch kind {
	case "bot":
		return Target{ID: n}, nil
	case "output":
		return Target{Output: true, ID: n}, nil
	}

	return Target{}, fmt.Errorf("unknown target %q", kind)
}

// ParseInstruction decodes "value V goes to bot B" or
// "bot B gives low to K N and high to K N".
func ParseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	switch {
	case len(f) == 6 && f[0] == "value":
		v, err1 := strconv.Atoi(f[1])
		b, err2 := strconv.Atoi(f[5])
		if err := errors.Join(err1, err2); err != nil {
			return Instruction{}, err
		}
		if v < 0 {
			return Instruction{}, fmt.Errorf("negative chip %d", v)
		}
		return Instruction{Value: v, Bot: b}, nil
	case len(f) == 12 && f[0] == "bot":
		b, err := strconv.Atoi(f[1])
		if err != nil {
			return Instruction{}, err
		}
		lo, err1 := parseTarget(f[5], f[6])
		hi, err2 := parseTarget(f[10], f[11])
		if err := errors.Join(err1, err2); err != nil {
			return Instruction{}, err
		}
		return Instruction{Value: -1, Bot: b, Low: lo, High: hi}, nil
	}

	return Instruction{}, errors.New("unknown instruction")
}

// Parse reads one instruction per line.
var Parse = puzzle.LinesOf(ParseInstruction)

// Factory is the state of the bot network after every chip settled.
type Factory struct {
	// Compared maps each bot that held two chips to its (low, high) pair.
	Compared map[int][2]int
	Outputs  map[int]int
}

// Run distributes every chip until no bot holds two.
func Run(ins []Instruction) (*Factory, error) {
	rules := make(map[int]Instruction)
	hands := make(map[int][]int)
	for _, in := range ins {
		if in.Value >= 0 {
			hands[in.Bot] = append(hands[in.Bot], in.Value)
			continue
		}
		if _, dup := rules[in.Bot]; dup {
			return nil, fmt.Errorf("%w: bot %d has two rules", puzzle.ErrParse, in.Bot)
		}
		rules[in.Bot] = in
	}

	f := &Factory{Compared: make(map[int][2]int), Outputs: make(map[int]int)}
	var full []int
	for b, h := range hands {
		if len(h) > 2 {
			return nil, fmt.Errorf("day10: bot %d starts with %d chips", b, len(h))
		}
		if len(h) == 2 {
			full = append(full, b)
		}
	}

	for len(full) > 0 {
		b := full[len(full)-1]
		full = full[:len(full)-1]
		rule, ok := rules[b]
		if !ok {
			return nil, fmt.Errorf("day10: no rule for bot %d", b)
		}
		lo, hi := min(hands[b][0], hands[b][1]), max(hands[b][0], hands[b][1])
		f.Compared[b] = [2]int{lo, hi}
		hands[b] = nil

		for _, give := range []struct {
			to   Target
			chip int
		}{{rule.Low, lo}, {rule.High, hi}} {
			if give.to.Output {
				if _, taken := f.Outputs[give.to.ID]; taken {
					return nil, fmt.Errorf("day10: output %d receives a second chip", give.to.ID)
				}
				f.Outputs[give.to.ID] = give.chip
				continue
			}
			h := append(hands[give.to.ID], give.chip)
			if len(h) > 2 {
				return nil, fmt.Errorf("day10: bot %d would hold three chips", give.to.ID)
			}
			hands[give.to.ID] = h
			if len(h) == 2 {
				full = append(full, give.to.ID)
			}
		}
	}

	return f, nil
}

// Comparer returns the bot that compared chips lo and hi.
func (f *Factory) Comparer(lo, hi int) (int, bool) {
	for b, pair := range f.Compared {
		if pair == [2]int{lo, hi} {
			return b, true
		}
	}

	return 0, false
}

func part1(ins []Instruction) (int, error) {
	f, err := Run(ins)
	if err != nil {
		return 0, err
	}
	b, ok := f.Comparer(17, 61)
	if !ok {
		return 0, fmt.Errorf("%w: no bot compares 17 with 61", puzzle.ErrNoSolution)
	}

	return b, nil
}

func part2(ins []Instruction) (int, error) {
	f, err := Run(ins)
	if err != nil {
		return 0, err
	}
	product := 1
	for id := 0; id < 3; id++ {
		v, ok := f.Outputs[id]
		if !ok {
			return 0, fmt.Errorf("%w: output %d stays empty", puzzle.ErrNoSolution, id)
		}
		product *= v
	}

	return product, nil
}
