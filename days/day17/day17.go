// Package day17 solves "Two Steps Forward": a 4×4 vault whose doors
// open depending on the MD5 of the path taken so far.
package day17

import (
	"crypto/md5"
	"fmt"
	"iter"

	"github.com/katalvlaran/advent2016/gridgraph"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/walk"
)

// Puzzle is the day 17 solver.
var Puzzle = puzzle.Define(17, "Two Steps Forward", puzzle.Trimmed, part1, part2)

// Size is the side of the square vault.
const Size = 4

// State is a room plus the moves that led there. The path is part of the
// state: the same room reached by another path has other doors open.
type State struct {
	Room gridgraph.Point
	Path string
}

// Vault is the target room.
var Vault = gridgraph.Point{X: Size - 1, Y: Size - 1}

var doors = [4]struct {
	name  byte
	delta gridgraph.Point
}{
	{'U', gridgraph.Up},
	{'D', gridgraph.Down},
	{'L', gridgraph.Left},
	{'R', gridgraph.Right},
}

// Moves yields the states reachable through the doors open for passcode.
// The first four hex digits of md5(passcode+path) guard the U, D, L, R
// doors; b through f mean open.
func Moves(passcode string, s State) iter.Seq[State] {
	sum := md5.Sum([]byte(passcode + s.Path))
	nibbles := [4]byte{sum[0] >> 4, sum[0] & 0xf, sum[1] >> 4, sum[1] & 0xf}

	return func(yield func(State) bool) {
		for i, d := range doors {
			next := s.Room.Add(d.delta)
			if nibbles[i] < 0xb || next.X < 0 || next.Y < 0 || next.X >= Size || next.Y >= Size {
				continue
			}
			if !yield(State{Room: next, Path: s.Path + string(d.name)}) {
				return
			}
		}
	}
}

// ShortestPath returns the first path to reach the vault, breadth first.
func ShortestPath(passcode string) (string, error) {
	path, ok := walk.Broad[State, string](walk.VisitFunc[State, string](func(s State) walk.Decision[State, string] {
		if s.Room == Vault {
			return walk.Break[State](s.Path)
		}
		return walk.Next[string](Moves(passcode, s))
	}), State{})
	if !ok {
		return "", fmt.Errorf("%w: every path is locked", puzzle.ErrNoSolution)
	}

	return path, nil
}

// longest remembers the longest path that reached the vault. Reaching the
// vault ends a path.
type longest struct {
	passcode string
	best     int
	any      bool
}

func (l *longest) Visit(s State) walk.Decision[State, struct{}] {
	if s.Room == Vault {
		l.best, l.any = max(l.best, len(s.Path)), true
		return walk.Continue[State, struct{}]()
	}

	return walk.Next[struct{}](Moves(l.passcode, s))
}

// LongestPath returns the length of the longest path that reaches the
// vault. Every path eventually dead-ends, so a depth-first walk ends.
func LongestPath(passcode string) (int, error) {
	l := &longest{passcode: passcode}
	walk.Deep[State, struct{}](l, State{})
	if !l.any {
		return 0, fmt.Errorf("%w: every path is locked", puzzle.ErrNoSolution)
	}

	return l.best, nil
}

func part1(passcode string) (string, error) { return ShortestPath(passcode) }

func part2(passcode string) (int, error) { return LongestPath(passcode) }
