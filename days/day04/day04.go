// Package day04 solves "Security Through Obscurity": validate room
// checksums and decrypt their names.
package day04

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 4 solver.
var Puzzle = puzzle.Define(4, "Security Through Obscurity", Parse, part1, part2)

// Room is one encrypted entry such as "aaaaa-bbb-z-y-x-123[abxyz]".
type Room struct {
	Name     string
	Sector   int
	Checksum string
}

// ParseRoom decodes a single line.
func ParseRoom(line string) (Room, error) {
	body, ok := strings.CutSuffix(line, "]")
	if !ok {
		return Room{}, errors.New("missing closing bracket")
	}
	body, sum, ok := strings.Cut(body, "[")
	if !ok || len(sum) != 5 {
		return Room{}, errors.New("malformed checksum")
	}
	dash := strings.LastIndexByte(body, '-')
	if dash < 0 {
		return Room{}, errors.New("missing sector id")
	}
	sector, err := strconv.Atoi(body[dash+1:])
	if err != nil {
		return Room{}, fmt.Errorf("sector id: %w", err)
	}

	return Room{Name: body[:dash], Sector: sector, Checksum: sum}, nil
}

// Parse reads one room per line.
var Parse = puzzle.LinesOf(ParseRoom)

// ExpectedChecksum returns the five most common letters of the name, ties
// broken alphabetically.
func (r Room) ExpectedChecksum() string {
	var counts [26]int
	for _, c := range r.Name {
		if c >= 'a' && c <= 'z' {
			counts[c-'a']++
		}
	}
	letters := make([]byte, 0, 26)
	for i, n := range counts {
		if n > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	slices.SortStableFunc(letters, func(a, b byte) int {
		return counts[b-'a'] - counts[a-'a']
	})

	return string(letters[:min(5, len(letters))])
}

// Real reports whether the stored checksum matches.
func (r Room) Real() bool { return r.Checksum == r.ExpectedChecksum() }

// Decrypt shifts every letter forward by the sector id and turns dashes
// into spaces.
func (r Room) Decrypt() string {
	shift := r.Sector % 26
	out := []byte(r.Name)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = 'a' + (c-'a'+byte(shift))%26
		} else {
			out[i] = ' '
		}
	}

	return string(out)
}

func part1(rooms []Room) (int, error) {
	sum := 0
	for _, r := range rooms {
		if r.Real() {
			sum += r.Sector
		}
	}

	return sum, nil
}

func part2(rooms []Room) (int, error) {
	for _, r := range rooms {
		if r.Real() && strings.HasPrefix(r.Decrypt(), "north") {
			return r.Sector, nil
		}
	}

	return 0, fmt.Errorf("%w: no north pole storage room", puzzle.ErrNoSolution)
}
