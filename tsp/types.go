package tsp

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrEmptyMatrix is returned for a matrix with no rows.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrBadDiagonal is returned when dist[i][i] is not zero.
	ErrBadDiagonal = errors.New("tsp: self-distance must be 0")

	// ErrBadStart is returned when the start index is out of range.
	ErrBadStart = errors.New("tsp: start vertex out of range")

	// ErrIncomplete is returned when no route visits every vertex
	// (some required edge is missing).
	ErrIncomplete = errors.New("tsp: incomplete distance matrix")
)

// NoEdge marks a missing edge in a distance matrix. Any negative value does.
const NoEdge = -1

// Options configures Solve.
type Options struct {
	// Start is the vertex the route begins at. Default 0.
	Start int

	// ReturnToStart closes the route into a cycle back to Start.
	ReturnToStart bool
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns an open path starting at vertex 0.
func DefaultOptions() Options {
	return Options{Start: 0, ReturnToStart: false}
}

// WithStart makes the route begin at vertex s. Out-of-range values surface
// as ErrBadStart from Solve.
func WithStart(s int) Option {
	return func(o *Options) {
		o.Start = s
	}
}

// WithReturnToStart asks for a closed tour.
func WithReturnToStart() Option {
	return func(o *Options) {
		o.ReturnToStart = true
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Tour is the sequence of vertex indices starting at Start. It has n
	// entries for an open path and n+1 (ending at Start again) for a tour.
	Tour []int

	// Cost is the total distance along Tour.
	Cost int
}
