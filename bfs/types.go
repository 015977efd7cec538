// Package bfs provides tunable options, driver contracts and error definitions
// for the lowest-cost search over implicit graphs.
package bfs

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for FindLowestCost.
var (
	// ErrNilDriver is returned if a nil Driver is passed.
	ErrNilDriver = errors.New("bfs: driver is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Driver supplies the puzzle-specific rules of a search.
// Transitions must be a pure function of its argument: the engine may call it
// at most once per state, and never for a state that is final.
type Driver[S comparable] interface {
	// Transitions lazily yields every successor of from.
	Transitions(from S) iter.Seq[S]

	// IsFinal reports whether s is a goal state.
	IsFinal(s S) bool
}

// DriverFuncs adapts two plain functions to the Driver interface.
// A nil IsFinalFn never reports a goal, which turns FindLowestCost into a
// plain reachability sweep.
type DriverFuncs[S comparable] struct {
	TransitionsFn func(from S) iter.Seq[S]
	IsFinalFn     func(s S) bool
}

// Transitions calls TransitionsFn.
func (d DriverFuncs[S]) Transitions(from S) iter.Seq[S] {
	if d.TransitionsFn == nil {
		return func(func(S) bool) {}
	}

	return d.TransitionsFn(from)
}

// IsFinal calls IsFinalFn.
func (d DriverFuncs[S]) IsFinal(s S) bool {
	if d.IsFinalFn == nil {
		return false
	}

	return d.IsFinalFn(s)
}

// Option configures FindLowestCost via functional arguments.
// If an Option is invalid (e.g. negative ceiling), it is recorded
// internally and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// StartCost is the cost attached to the start state. Normally 0.
	StartCost int

	// Ceiling, when HasCeiling is set, is the highest cost ever recorded.
	// Successors that would cost more are discarded.
	Ceiling    int
	HasCeiling bool

	// StepCost is the flat increment added per transition. Must be ≥ 1.
	StepCost int

	// OnEnqueue is called each time a successor is put into a bucket.
	// The same state may be reported several times.
	OnEnqueue func(cost int)

	// OnVisit is called when a state is popped for the first time, before
	// the goal test. Returning an error aborts the search.
	OnVisit func(cost int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - StartCost 0
//   - no ceiling
//   - StepCost 1
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		StartCost: 0,
		StepCost:  1,
		OnEnqueue: func(int) {},
		OnVisit:   func(int) error { return nil },
	}
}

// WithStartCost sets the cost of the start state (c ≥ 0).
func WithStartCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: StartCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.StartCost = c
	}
}

// WithCeiling bounds the search: no state is recorded above cost c.
//
//	c ≥ 0: limit recorded costs to c
//	c < 0: invalid option → ErrOptionViolation
//
// A ceiling below the start cost leaves the start state unvisited.
func WithCeiling(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: Ceiling cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.Ceiling = c
		o.HasCeiling = true
	}
}

// WithStepCost sets the flat per-transition increment (k ≥ 1).
func WithStepCost(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: StepCost must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.StepCost = k
	}
}

// WithOnEnqueue registers a callback to run whenever a successor is bucketed.
func WithOnEnqueue(fn func(cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on each first pop; returning an
// error from it stops the search.
func WithOnVisit(fn func(cost int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a FindLowestCost run:
//   - Found / FinalCost / Final: the cheapest goal, if one was reached.
//   - Seen: every visited state with the minimal cost it was reached at.
//   - Expanded: how many states had their transitions generated.
type Result[S comparable] struct {
	Found     bool
	FinalCost int
	Final     S
	Seen      map[S]int
	Expanded  int
}

// Cost returns the final cost and whether a goal was reached.
func (r *Result[S]) Cost() (int, bool) {
	return r.FinalCost, r.Found
}

// CountWithin returns how many visited states cost at most limit.
func (r *Result[S]) CountWithin(limit int) int {
	n := 0
	for _, c := range r.Seen {
		if c <= limit {
			n++
		}
	}

	return n
}
