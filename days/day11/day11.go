// Package day11 solves "Radioisotope Thermoelectric Generators": carry
// chips and generators to the top floor without frying a chip.
package day11

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/advent2016/bfs"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 11 solver.
var Puzzle = puzzle.Define(11, "Radioisotope Thermoelectric Generators", Parse, part1, part2)

const (
	// Floors in the facility.
	Floors = 4
	// MaxElements bounds the distinct elements a building may hold.
	MaxElements = 8
)

// pair holds the floors of one element's generator and microchip.
type pair struct{ gen, chip int8 }

// State is a canonical building layout: elements are interchangeable, so
// only the sorted multiset of (generator, chip) floors matters.
type State struct {
	Elevator int8
	N        int8
	Pairs    [MaxElements]pair
}

func (s *State) normalize() {
	slices.SortFunc(s.Pairs[:s.N], func(a, b pair) int {
		if c := cmp.Compare(a.gen, b.gen); c != 0 {
			return c
		}
		return cmp.Compare(a.chip, b.chip)
	})
}

// Parse reads the four floor descriptions and returns the initial state.
// Element names are taken from the text: "a X generator" and
// "a X-compatible microchip".
func Parse(raw string) (State, error) {
	lines, err := puzzle.Lines(raw)
	if err != nil {
		return State{}, err
	}
	if len(lines) != Floors {
		return State{}, fmt.Errorf("%w: want %d floors, got %d", puzzle.ErrParse, Floors, len(lines))
	}

	gens, chips := map[string]int8{}, map[string]int8{}
	for floor, line := range lines {
		words := strings.Fields(line)
		for i := 1; i < len(words); i++ {
			w := strings.TrimRight(words[i], ",.")
			switch w {
			case "generator":
				gens[words[i-1]] = int8(floor)
			case "microchip":
				chips[strings.TrimSuffix(words[i-1], "-compatible")] = int8(floor)
			}
		}
	}

	var s State
	for el, g := range gens {
		c, ok := chips[el]
		if !ok {
			return State{}, fmt.Errorf("%w: %s generator has no microchip", puzzle.ErrParse, el)
		}
		if int(s.N) == MaxElements {
			return State{}, fmt.Errorf("%w: more than %d elements", puzzle.ErrParse, MaxElements)
		}
		s.Pairs[s.N] = pair{gen: g, chip: c}
		s.N++
	}
	if len(chips) != len(gens) {
		return State{}, fmt.Errorf("%w: unmatched microchip", puzzle.ErrParse)
	}
	s.normalize()

	return s, nil
}

// WithExtra returns s with n more generator/chip pairs on the first floor.
func (s State) WithExtra(n int) (State, error) {
	if int(s.N)+n > MaxElements {
		return State{}, fmt.Errorf("day11: %d elements exceed %d", int(s.N)+n, MaxElements)
	}
	for i := 0; i < n; i++ {
		s.Pairs[s.N] = pair{}
		s.N++
	}
	s.normalize()

	return s, nil
}

// Safe reports whether no chip shares a floor with a foreign generator
// while its own is elsewhere.
func (s *State) Safe() bool {
	var hasGen [Floors]bool
	for _, p := range s.Pairs[:s.N] {
		hasGen[p.gen] = true
	}
	for _, p := range s.Pairs[:s.N] {
		if p.chip != p.gen && hasGen[p.chip] {
			return false
		}
	}

	return true
}

// item addresses a generator (chip false) or microchip of pair idx.
type item struct {
	idx  int
	chip bool
}

func (s *State) move(it item, to int8) {
	if it.chip {
		s.Pairs[it.idx].chip = to
	} else {
		s.Pairs[it.idx].gen = to
	}
}

func (s State) emptyBelow() bool {
	for _, p := range s.Pairs[:s.N] {
		if p.gen < s.Elevator || p.chip < s.Elevator {
			return false
		}
	}

	return true
}

type driver struct{}

// Transitions moves one or two items one floor up or down. Going down is
// pointless once every lower floor is empty.
func (driver) Transitions(from State) iter.Seq[State] {
	return func(yield func(State) bool) {
		var here []item
		for i, p := range from.Pairs[:from.N] {
			if p.gen == from.Elevator {
				here = append(here, item{i, false})
			}
			if p.chip == from.Elevator {
				here = append(here, item{i, true})
			}
		}

		for _, d := range []int8{1, -1} {
			to := from.Elevator + d
			if to < 0 || to >= Floors || (d < 0 && from.emptyBelow()) {
				continue
			}
			for i := range here {
				for j := i; j < len(here); j++ {
					next := from
					next.Elevator = to
					next.move(here[i], to)
					next.move(here[j], to)
					if !next.Safe() {
						continue
					}
					next.normalize()
					if !yield(next) {
						return
					}
				}
			}
		}
	}
}

func (driver) IsFinal(s State) bool {
	for _, p := range s.Pairs[:s.N] {
		if p.gen != Floors-1 || p.chip != Floors-1 {
			return false
		}
	}

	return true
}

// Steps returns the fewest elevator trips that bring everything to the top.
func Steps(start State) (int, error) {
	if !start.Safe() {
		return 0, fmt.Errorf("%w: starting layout fries a chip", puzzle.ErrNoSolution)
	}
	res, err := bfs.FindLowestCost[State](driver{}, start)
	if err != nil {
		return 0, err
	}
	cost, ok := res.Cost()
	if !ok {
		return 0, fmt.Errorf("%w: top floor unreachable after %d states", puzzle.ErrNoSolution, len(res.Seen))
	}

	return cost, nil
}

func part1(s State) (int, error) { return Steps(s) }

// part2 adds the elerium and dilithium pairs found on the first floor.
func part2(s State) (int, error) {
	ext, err := s.WithExtra(2)
	if err != nil {
		return 0, err
	}

	return Steps(ext)
}
