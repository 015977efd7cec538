package puzzle

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared by all solvers.
var (
	// ErrParse wraps every input decoding failure.
	ErrParse = errors.New("puzzle: cannot parse input")

	// ErrNoSolution is returned when a search ends without an answer.
	ErrNoSolution = errors.New("puzzle: no solution")
)

// Parts selects which halves of a puzzle to run.
type Parts uint8

const (
	Part1 Parts = 1 << iota
	Part2

	BothParts = Part1 | Part2
)

// Has reports whether part n (1 or 2) is selected.
func (p Parts) Has(n int) bool {
	return n >= 1 && n <= 2 && p&(1<<(n-1)) != 0
}

// PartsFor returns the selection for part n, or BothParts for n == 0.
func PartsFor(n int) (Parts, error) {
	switch n {
	case 0:
		return BothParts, nil
	case 1:
		return Part1, nil
	case 2:
		return Part2, nil
	default:
		return 0, fmt.Errorf("puzzle: part must be 1 or 2, got %d", n)
	}
}

// Answer is the formatted result of one part.
type Answer struct {
	Part    int
	Value   string
	Elapsed time.Duration
}

// Answers collects the outcome of one Solve call.
type Answers struct {
	Parse time.Duration
	Parts []Answer
}

// Value returns the formatted answer of part n, if it was run.
func (a Answers) Value(n int) (string, bool) {
	for _, p := range a.Parts {
		if p.Part == n {
			return p.Value, true
		}
	}

	return "", false
}

// Solver is one day's puzzle.
type Solver interface {
	Day() int
	Title() string
	Solve(raw string, parts Parts) (Answers, error)
}

type definition[In, A1, A2 any] struct {
	day   int
	title string
	parse func(string) (In, error)
	part1 func(In) (A1, error)
	part2 func(In) (A2, error)
}

// Define builds a Solver from a parser and two typed parts. Answers are
// formatted with fmt.Sprint. A nil part2 marks a day without a second half;
// it answers "N/A".
func Define[In, A1, A2 any](
	day int,
	title string,
	parse func(string) (In, error),
	part1 func(In) (A1, error),
	part2 func(In) (A2, error),
) Solver {
	return &definition[In, A1, A2]{day: day, title: title, parse: parse, part1: part1, part2: part2}
}

func (d *definition[In, A1, A2]) Day() int      { return d.day }
func (d *definition[In, A1, A2]) Title() string { return d.title }

func (d *definition[In, A1, A2]) Solve(raw string, parts Parts) (Answers, error) {
	var out Answers

	start := time.Now()
	in, err := d.parse(raw)
	out.Parse = time.Since(start)
	if err != nil {
		if !errors.Is(err, ErrParse) {
			err = fmt.Errorf("%w: %w", ErrParse, err)
		}
		return out, fmt.Errorf("day %02d: %w", d.day, err)
	}

	if parts.Has(1) {
		a, err := timed(1, in, d.part1)
		if err != nil {
			return out, fmt.Errorf("day %02d part 1: %w", d.day, err)
		}
		out.Parts = append(out.Parts, a)
	}
	if parts.Has(2) {
		if d.part2 == nil {
			out.Parts = append(out.Parts, Answer{Part: 2, Value: "N/A"})
			return out, nil
		}
		a, err := timed(2, in, d.part2)
		if err != nil {
			return out, fmt.Errorf("day %02d part 2: %w", d.day, err)
		}
		out.Parts = append(out.Parts, a)
	}

	return out, nil
}

func timed[In, A any](n int, in In, fn func(In) (A, error)) (Answer, error) {
	start := time.Now()
	v, err := fn(in)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Part: n, Value: fmt.Sprint(v), Elapsed: time.Since(start)}, nil
}
