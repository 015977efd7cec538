// Package day05 solves "How About a Nice Game of Chess?": build door
// passwords from MD5 digests that start with five zeros.
package day05

import (
	"context"

	"github.com/katalvlaran/advent2016/hashsearch"
	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 5 solver.
var Puzzle = puzzle.Define(5, "How About a Nice Game of Chess?", puzzle.Trimmed, part1, part2)

const (
	hexDigits = "0123456789abcdef"
	length    = 8
)

// Password takes the sixth hex digit of the first eight interesting
// digests.
func Password(ctx context.Context, door string, opts ...hashsearch.Option) (string, error) {
	out := make([]byte, 0, length)
	n := 0
	for len(out) < length {
		m, err := hashsearch.FirstMatch(ctx, door, n, hashsearch.FiveZeros, opts...)
		if err != nil {
			return "", err
		}
		out = append(out, hexDigits[m.Digest[2]&0xf])
		n = m.N + 1
	}

	return string(out), nil
}

// PositionalPassword uses the sixth hex digit as a position and the seventh
// as the character; positions out of range or already filled are skipped.
func PositionalPassword(ctx context.Context, door string, opts ...hashsearch.Option) (string, error) {
	var out [length]byte
	missing := length
	n := 0
	for missing > 0 {
		m, err := hashsearch.FirstMatch(ctx, door, n, hashsearch.FiveZeros, opts...)
		if err != nil {
			return "", err
		}
		if pos := int(m.Digest[2]); pos < length && out[pos] == 0 {
			out[pos] = hexDigits[m.Digest[3]>>4]
			missing--
		}
		n = m.N + 1
	}

	return string(out[:]), nil
}

func part1(door string) (string, error) { return Password(context.Background(), door) }

func part2(door string) (string, error) { return PositionalPassword(context.Background(), door) }
