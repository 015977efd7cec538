// Package day21 solves "Scrambled Letters and Hash": apply a password
// scrambling program forwards and backwards.
package day21

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 21 solver.
var Puzzle = puzzle.Define(21, "Scrambled Letters and Hash", Parse, part1, part2)

// Passwords of the two parts.
const (
	Plain     = "abcdefgh"
	Scrambled = "fbgdceah"
)

// Op names a scrambling operation.
type Op uint8

const (
	SwapPosition Op = iota
	SwapLetter
	RotateLeft
	RotateRight
	RotateLetter
	Reverse
	Move
)

// Step is one operation with its operands: positions or step counts in
// X and Y, letters in A and B.
type Step struct {
	Op   Op
	X, Y int
	A, B byte
}

func atoi2(a, b string) (int, int, error) {
	x, err1 := strconv.Atoi(a)
	y, err2 := strconv.Atoi(b)

	return x, y, errors.Join(err1, err2)
}

// ParseStep decodes one line of the scrambling program.
func ParseStep(line string) (Step, error) {
	f := strings.Fields(line)
	var (
		s   Step
		err error
	)
	switch {
	case len(f) == 6 && f[0] == "swap" && f[1] == "position":
		s.Op = SwapPosition
		s.X, s.Y, err = atoi2(f[2], f[5])
	case len(f) == 6 && f[0] == "swap" && f[1] == "letter" && len(f[2]) == 1 && len(f[5]) == 1:
		s = Step{Op: SwapLetter, A: f[2][0], B: f[5][0]}
	case len(f) == 4 && f[0] == "rotate" && (f[1] == "left" || f[1] == "right"):
		s.Op = RotateLeft
		if f[1] == "right" {
			s.Op = RotateRight
		}
		s.X, err = strconv.Atoi(f[2])
	case len(f) == 7 && f[0] == "rotate" && f[1] == "based" && len(f[6]) == 1:
		s = Step{Op: RotateLetter, A: f[6][0]}
	case len(f) == 5 && f[0] == "reverse":
		s.Op = Reverse
		s.X, s.Y, err = atoi2(f[2], f[4])
		if err == nil && s.X > s.Y {
			s.X, s.Y = s.Y, s.X
		}
	case len(f) == 6 && f[0] == "move":
		s.Op = Move
		s.X, s.Y, err = atoi2(f[2], f[5])
	default:
		return Step{}, errors.New("unknown operation")
	}
	if err != nil {
		return Step{}, err
	}

	return s, nil
}

// Parse reads one step per line.
var Parse = puzzle.LinesOf(ParseStep)

func rotateRight(pw []byte, n int) {
	n %= len(pw)
	if n < 0 {
		n += len(pw)
	}
	slices.Reverse(pw)
	slices.Reverse(pw[:n])
	slices.Reverse(pw[n:])
}

// letterRotation is the right rotation RotateLetter applies to a letter at
// index i.
func letterRotation(i int) int {
	if i >= 4 {
		return i + 2
	}

	return i + 1
}

func index(pw []byte, c byte) (int, error) {
	i := slices.Index(pw, c)
	if i < 0 {
		return 0, fmt.Errorf("day21: letter %q not in %q", c, pw)
	}

	return i, nil
}

func (s Step) inRange(n int) bool {
	switch s.Op {
	case SwapPosition, Reverse, Move:
		return s.X >= 0 && s.Y >= 0 && s.X < n && s.Y < n
	}

	return true
}

// apply runs s on pw in place; undo runs its inverse.
func (s Step) apply(pw []byte, undo bool) error {
	if !s.inRange(len(pw)) {
		return fmt.Errorf("day21: positions %d,%d outside %d letters", s.X, s.Y, len(pw))
	}
	switch s.Op {
	case SwapPosition:
		pw[s.X], pw[s.Y] = pw[s.Y], pw[s.X]
	case SwapLetter:
		i, err := index(pw, s.A)
		if err != nil {
			return err
		}
		j, err := index(pw, s.B)
		if err != nil {
			return err
		}
		pw[i], pw[j] = pw[j], pw[i]
	case RotateLeft, RotateRight:
		n := s.X
		if (s.Op == RotateLeft) != undo {
			n = -n
		}
		rotateRight(pw, n)
	case RotateLetter:
		cur, err := index(pw, s.A)
		if err != nil {
			return err
		}
		if !undo {
			rotateRight(pw, letterRotation(cur))
			return nil
		}
		// find the index the letter was rotated from
		for i := range pw {
			if (i+letterRotation(i))%len(pw) == cur {
				rotateRight(pw, -letterRotation(i))
				return nil
			}
		}
		return fmt.Errorf("day21: cannot undo rotation on letter %q", s.A)
	case Reverse:
		slices.Reverse(pw[s.X : s.Y+1])
	case Move:
		from, to := s.X, s.Y
		if undo {
			from, to = to, from
		}
		c := pw[from]
		copy(pw[from:], pw[from+1:])
		copy(pw[to+1:], pw[to:len(pw)-1])
		pw[to] = c
	}

	return nil
}

// Scramble runs steps over password.
func Scramble(password string, steps []Step) (string, error) {
	pw := []byte(password)
	for i, s := range steps {
		if err := s.apply(pw, false); err != nil {
			return "", fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return string(pw), nil
}

// Unscramble runs the inverse of steps, last to first. Letter-based
// rotations are only invertible for some lengths; the first candidate
// origin wins.
func Unscramble(scrambled string, steps []Step) (string, error) {
	pw := []byte(scrambled)
	for i := len(steps) - 1; i >= 0; i-- {
		if err := steps[i].apply(pw, true); err != nil {
			return "", fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return string(pw), nil
}

func part1(steps []Step) (string, error) { return Scramble(Plain, steps) }

func part2(steps []Step) (string, error) { return Unscramble(Scrambled, steps) }
