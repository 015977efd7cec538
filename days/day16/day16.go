// Package day16 solves "Dragon Checksum": fill a disk with a dragon curve
// and reduce it to a checksum without storing the data.
package day16

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 16 solver.
var Puzzle = puzzle.Define(16, "Dragon Checksum", Parse, part1, part2)

// Disk sizes of the two parts.
const (
	SmallDisk = 272
	LargeDisk = 35651584
)

// Parse reads the initial state as a string of 0s and 1s.
func Parse(raw string) ([]bool, error) {
	s, err := puzzle.Trimmed(raw)
	if err != nil {
		return nil, err
	}
	seed := make([]bool, len(s))
	for i, c := range s {
		if c != '0' && c != '1' {
			return nil, fmt.Errorf("%w: %q is not a bit", puzzle.ErrParse, c)
		}
		seed[i] = c == '1'
	}

	return seed, nil
}

// separator is bit k of the regular paper-folding sequence: the joints
// between successive copies of the seed.
func separator(k int) bool {
	n := uint(k + 1)
	n >>= bits.TrailingZeros(n)

	return n%4 == 3
}

// Dragon lazily yields the endless dragon curve grown from seed. The
// output is seed, joint, reversed complement of seed, joint, seed, and so
// on, so any bit can be computed without expanding the whole disk.
func Dragon(seed []bool) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		l := len(seed)
		for k := 0; ; k++ {
			for off := 0; off < l; off++ {
				b := seed[off]
				if k%2 == 1 {
					b = !seed[l-1-off]
				}
				if !yield(b) {
					return
				}
			}
			if !yield(separator(k)) {
				return
			}
		}
	}
}

// Checksum fills size bits and reduces pairs until the length is odd.
// Each output bit covers a chunk of 2^m bits, and repeated pair reduction
// makes it 1 exactly when the chunk holds an even number of ones.
func Checksum(seed []bool, size int) string {
	if size <= 0 || len(seed) == 0 {
		return ""
	}
	chunk := size & -size

	var sb strings.Builder
	sb.Grow(size / chunk)
	pos, ones := 0, 0
	for b := range Dragon(seed) {
		if b {
			ones++
		}
		pos++
		if pos%chunk != 0 {
			continue
		}
		bit := ones%2 == 1
		if chunk > 1 {
			bit = !bit
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		ones = 0
		if pos == size {
			break
		}
	}

	return sb.String()
}

func part1(seed []bool) (string, error) { return Checksum(seed, SmallDisk), nil }

func part2(seed []bool) (string, error) { return Checksum(seed, LargeDisk), nil }
