// Package day07 solves "Internet Protocol Version 7": detect TLS and SSL
// support in bracketed addresses.
package day07

import (
	"errors"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Puzzle is the day 7 solver.
var Puzzle = puzzle.Define(7, "Internet Protocol Version 7", Parse, part1, part2)

// Address splits an IPv7 address into its supernet and hypernet (bracketed)
// sequences.
type Address struct {
	Supernet []string
	Hypernet []string
}

// ParseAddress splits line on brackets. Nested or unbalanced brackets are
// rejected.
func ParseAddress(line string) (Address, error) {
	var a Address
	inside, start := false, 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '[':
			if inside {
				return Address{}, errors.New("nested '['")
			}
			a.Supernet = append(a.Supernet, line[start:i])
			inside, start = true, i+1
		case ']':
			if !inside {
				return Address{}, errors.New("unmatched ']'")
			}
			a.Hypernet = append(a.Hypernet, line[start:i])
			inside, start = false, i+1
		}
	}
	if inside {
		return Address{}, errors.New("unclosed '['")
	}
	a.Supernet = append(a.Supernet, line[start:])

	return a, nil
}

// Parse reads one address per line.
var Parse = puzzle.LinesOf(ParseAddress)

func hasABBA(s string) bool {
	for i := 0; i+3 < len(s); i++ {
		if s[i] == s[i+3] && s[i+1] == s[i+2] && s[i] != s[i+1] {
			return true
		}
	}

	return false
}

// abas yields every "aba" pattern of s as its (outer, inner) pair.
func abas(s string, yield func(outer, inner byte)) {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == s[i+2] && s[i] != s[i+1] {
			yield(s[i], s[i+1])
		}
	}
}

// TLS reports an ABBA outside brackets and none inside.
func (a Address) TLS() bool {
	for _, h := range a.Hypernet {
		if hasABBA(h) {
			return false
		}
	}
	for _, s := range a.Supernet {
		if hasABBA(s) {
			return true
		}
	}

	return false
}

// SSL reports an "aba" outside brackets whose "bab" appears inside.
func (a Address) SSL() bool {
	want := make(map[[2]byte]bool)
	for _, s := range a.Supernet {
		abas(s, func(o, i byte) { want[[2]byte{i, o}] = true })
	}
	found := false
	for _, h := range a.Hypernet {
		abas(h, func(o, i byte) { found = found || want[[2]byte{o, i}] })
	}

	return found
}

func count(addrs []Address, pred func(Address) bool) int {
	n := 0
	for _, a := range addrs {
		if pred(a) {
			n++
		}
	}

	return n
}

func part1(addrs []Address) (int, error) { return count(addrs, Address.TLS), nil }

func part2(addrs []Address) (int, error) { return count(addrs, Address.SSL), nil }
