package walk

import (
	"errors"
	"iter"
)

// ErrBadMaxDepth is the panic value of WithMaxDepth for a negative depth.
var ErrBadMaxDepth = errors.New("walk: MaxDepth must be non-negative")

// Walker decides, for each visited state, how the traversal proceeds.
type Walker[S, R any] interface {
	Visit(s S) Decision[S, R]
}

// VisitFunc adapts a plain function to the Walker interface.
type VisitFunc[S, R any] func(s S) Decision[S, R]

// Visit calls f(s).
func (f VisitFunc[S, R]) Visit(s S) Decision[S, R] { return f(s) }

// Decision is the outcome of a single visit. Build one with Break, Continue
// or Next. A nil Decision is treated as Continue.
type Decision[S, R any] interface {
	dispatch(h handler[S, R])
}

// handler receives exactly one call per Decision. Every Decision type
// must implement dispatch against all three methods.
type handler[S, R any] interface {
	onBreak(r R)
	onContinue()
	onNext(seq iter.Seq[S])
}

type breakDecision[S, R any] struct{ result R }

func (d breakDecision[S, R]) dispatch(h handler[S, R]) { h.onBreak(d.result) }

type continueDecision[S, R any] struct{}

func (continueDecision[S, R]) dispatch(h handler[S, R]) { h.onContinue() }

type nextDecision[S, R any] struct{ seq iter.Seq[S] }

func (d nextDecision[S, R]) dispatch(h handler[S, R]) { h.onNext(d.seq) }

// Break stops the traversal; r becomes its result.
func Break[S, R any](r R) Decision[S, R] { return breakDecision[S, R]{result: r} }

// Continue leaves the visited state unexpanded.
func Continue[S, R any]() Decision[S, R] { return continueDecision[S, R]{} }

// Next expands the visited state with every state seq yields.
// A nil seq behaves like Continue.
func Next[R, S any](seq iter.Seq[S]) Decision[S, R] { return nextDecision[S, R]{seq: seq} }

// Option configures Broad and Deep.
type Option func(*Options)

// Options holds the traversal bounds and hooks.
type Options struct {
	// MaxDepth, if non-negative, stops successors deeper than it from being
	// visited. The start state has depth 0. Default -1 (no limit).
	MaxDepth int

	// OnVisit is called with the depth of each state before Visit.
	OnVisit func(depth int)
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: -1,
		OnVisit:  func(int) {},
	}
}

// WithMaxDepth limits traversal depth to d. Panics if d < 0.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadMaxDepth.Error())
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs a hook observing the depth of every visit.
func WithOnVisit(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
