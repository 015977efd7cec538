// Package day20 solves "Firewall Rules": find addresses left open by a
// blacklist of inclusive ranges.
package day20

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 20 solver.
var Puzzle = puzzle.Define(20, "Firewall Rules", Parse, part1, part2)

// Range is an inclusive blocked span.
type Range struct {
	Lo, Hi uint32
}

// Parse reads one "lo-hi" range per line.
var Parse = puzzle.LinesOf(func(line string) (Range, error) {
	n := puzzle.Ints[int64](line)
	if len(n) != 2 {
		return Range{}, errors.New("want lo-hi")
	}
	if n[0] < 0 || n[1] > math.MaxUint32 || n[0] > n[1] {
		return Range{}, fmt.Errorf("bad range %d-%d", n[0], n[1])
	}

	return Range{Lo: uint32(n[0]), Hi: uint32(n[1])}, nil
})

// Firewall is the set of blocked addresses in [0, Max].
type Firewall struct {
	Max     uint32
	blocked *roaring.Bitmap
}

// NewFirewall blocks every range. Ranges reaching past limit are an error.
func NewFirewall(limit uint32, rules []Range) (*Firewall, error) {
	bm := roaring.New()
	for _, r := range rules {
		if r.Hi > limit {
			return nil, fmt.Errorf("day20: range %d-%d exceeds %d", r.Lo, r.Hi, limit)
		}
		bm.AddRange(uint64(r.Lo), uint64(r.Hi)+1)
	}
	bm.RunOptimize()

	return &Firewall{Max: limit, blocked: bm}, nil
}

// Allowed returns the open addresses as a bitmap.
func (f *Firewall) Allowed() *roaring.Bitmap {
	return roaring.Flip(f.blocked, 0, uint64(f.Max)+1)
}

// Blocked reports whether addr is blacklisted.
func (f *Firewall) Blocked(addr uint32) bool { return f.blocked.Contains(addr) }

// Lowest returns the smallest open address.
func (f *Firewall) Lowest() (uint32, error) {
	open := f.Allowed()
	if open.IsEmpty() {
		return 0, fmt.Errorf("%w: every address is blocked", puzzle.ErrNoSolution)
	}

	return open.Minimum(), nil
}

// Count returns how many addresses are open.
func (f *Firewall) Count() uint64 {
	return uint64(f.Max) + 1 - f.blocked.GetCardinality()
}

func part1(rules []Range) (uint32, error) {
	f, err := NewFirewall(math.MaxUint32, rules)
	if err != nil {
		return 0, err
	}

	return f.Lowest()
}

func part2(rules []Range) (uint64, error) {
	f, err := NewFirewall(math.MaxUint32, rules)
	if err != nil {
		return 0, err
	}

	return f.Count(), nil
}
