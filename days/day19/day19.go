// Package day19 solves "An Elephant Named Joseph": two variants of the
// Josephus elimination game.
package day19

import (
	"fmt"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 19 solver.
var Puzzle = puzzle.Define(19, "An Elephant Named Joseph", Parse, part1, part2)

// Parse reads the number of elves.
func Parse(raw string) (int, error) {
	n, err := puzzle.Integer[int](raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: need at least one elf, got %d", puzzle.ErrParse, n)
	}

	return n, nil
}

// circle links elf i to elf next[i]; elves are 0-based internally.
func circle(n int) []int32 {
	next := make([]int32, n)
	for i := range next {
		next[i] = int32((i + 1) % n)
	}

	return next
}

// StealLeft returns the 1-based elf left holding every present when each
// elf in turn takes from the elf to its left.
func StealLeft(n int) int {
	next := circle(n)
	cur := int32(0)
	for left := n; left > 1; left-- {
		next[cur] = next[next[cur]]
		cur = next[cur]
	}

	return int(cur) + 1
}

// StealAcross returns the winner when each elf takes from the elf directly
// across the circle (the left one of two when the count is even). The
// victim's predecessor advances on every other removal.
func StealAcross(n int) int {
	if n == 1 {
		return 1
	}
	next := circle(n)
	pre := int32(n/2 - 1)
	for left := n; left > 1; left-- {
		next[pre] = next[next[pre]]
		if left%2 == 1 {
			pre = next[pre]
		}
	}

	return int(pre) + 1
}

func part1(n int) (int, error) { return StealLeft(n), nil }

func part2(n int) (int, error) { return StealAcross(n), nil }
