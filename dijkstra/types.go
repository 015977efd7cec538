package dijkstra

import (
	"errors"
	"iter"
	"math"
)

// Sentinel errors returned by FindLowestCost.
var (
	// ErrNilDriver indicates that a nil Driver was passed.
	ErrNilDriver = errors.New("dijkstra: driver is nil")

	// ErrNegativeWeight indicates that the driver yielded a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would wall off every edge.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Driver supplies the rules of a weighted search.
type Driver[S comparable] interface {
	// Transitions yields each successor of from with the weight of the edge.
	Transitions(from S) iter.Seq2[S, int64]

	// IsFinal reports whether s is a goal.
	IsFinal(s S) bool
}

// DriverFuncs adapts plain functions to Driver. A nil IsFinalFn never
// reports a goal, so the search settles everything reachable.
type DriverFuncs[S comparable] struct {
	TransitionsFn func(from S) iter.Seq2[S, int64]
	IsFinalFn     func(s S) bool
}

// Transitions calls TransitionsFn.
func (d DriverFuncs[S]) Transitions(from S) iter.Seq2[S, int64] {
	if d.TransitionsFn == nil {
		return func(func(S, int64) bool) {}
	}

	return d.TransitionsFn(from)
}

// IsFinal calls IsFinalFn.
func (d DriverFuncs[S]) IsFinal(s S) bool {
	return d.IsFinalFn != nil && d.IsFinalFn(s)
}

// Options configures FindLowestCost.
//
// ReturnPath       – record predecessors so Result.PathTo works.
// MaxDistance      – states whose distance would exceed it are not settled.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is math.MaxInt64.
type Options struct {
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring FindLowestCost.
type Option func(*Options)

// WithReturnPath enables predecessor tracking.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the explored distance. Panics with ErrBadMaxDistance
// for a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics with ErrBadInfThreshold for threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no path tracking, no distance cap
// and no impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is the outcome of FindLowestCost.
//
// Dist holds every settled state with its final distance. States that were
// reached but never settled (because a goal was popped first) are absent.
// Prev is nil unless ReturnPath was requested.
type Result[S comparable] struct {
	Found     bool
	FinalCost int64
	Final     S
	Dist      map[S]int64
	Prev      map[S]S

	start S
}

// PathTo rebuilds the cheapest path from the start to target, both ends
// included. It reports false if target was not settled or paths were not
// recorded.
func (r *Result[S]) PathTo(target S) ([]S, bool) {
	if r.Prev == nil {
		return nil, false
	}
	if _, ok := r.Dist[target]; !ok {
		return nil, false
	}

	path := []S{target}
	for cur := target; cur != r.start; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
