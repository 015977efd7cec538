// Package day09 solves "Explosives in Cyberspace": measure decompressed
// lengths without materialising the output.
package day09

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 9 solver.
var Puzzle = puzzle.Define(9, "Explosives in Cyberspace", Parse, part1, part2)

// Parse drops all whitespace from the compressed file.
func Parse(raw string) (string, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", puzzle.ErrParse)
	}

	return s, nil
}

// marker decodes "(AxB)" at the start of s and returns A, B and the marker
// length.
func marker(s string) (span, times, size int, err error) {
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return 0, 0, 0, fmt.Errorf("%w: unterminated marker %.10q", puzzle.ErrParse, s)
	}
	a, b, ok := strings.Cut(s[1:end], "x")
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: bad marker %q", puzzle.ErrParse, s[:end+1])
	}
	if span, err = strconv.Atoi(a); err == nil {
		times, err = strconv.Atoi(b)
	}
	if err != nil || span < 0 || times < 0 {
		return 0, 0, 0, fmt.Errorf("%w: bad marker %q", puzzle.ErrParse, s[:end+1])
	}

	return span, times, end + 1, nil
}

// Length returns the decompressed length of s. With recursive set, markers
// inside a repeated section are expanded too.
func Length(s string, recursive bool) (int, error) {
	n := 0
	for i := 0; i < len(s); {
		if s[i] != '(' {
			n++
			i++
			continue
		}
		span, times, size, err := marker(s[i:])
		if err != nil {
			return 0, err
		}
		i += size
		if i+span > len(s) {
			return 0, fmt.Errorf("%w: marker at %d runs past the end", puzzle.ErrParse, i-size)
		}
		inner := span
		if recursive {
			if inner, err = Length(s[i:i+span], true); err != nil {
				return 0, err
			}
		}
		n += inner * times
		i += span
	}

	return n, nil
}

func part1(s string) (int, error) { return Length(s, false) }

func part2(s string) (int, error) { return Length(s, true) }
