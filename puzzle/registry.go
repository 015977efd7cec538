package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

// Registry errors.
var (
	// ErrDuplicateDay is returned when two solvers claim the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")

	// ErrUnknownDay is returned by Lookup for an unregistered day.
	ErrUnknownDay = errors.New("puzzle: unknown day")
)

// Registry maps days to solvers. The zero value is ready to use.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry returns a registry holding solvers, or the first
// registration error.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s under s.Day().
func (r *Registry) Register(s Solver) error {
	if r.byDay == nil {
		r.byDay = make(map[int]Solver)
	}
	if prev, ok := r.byDay[s.Day()]; ok {
		return fmt.Errorf("%w: day %d (%q and %q)", ErrDuplicateDay, s.Day(), prev.Title(), s.Title())
	}
	r.byDay[s.Day()] = s

	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// All returns every solver sorted by day.
func (r *Registry) All() []Solver {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	slices.Sort(days)

	out := make([]Solver, len(days))
	for i, d := range days {
		out[i] = r.byDay[d]
	}

	return out
}
