// Package walk implements a traversal skeleton over implicit state spaces,
// driven by a per-state visit callback.
//
// What
//
//   - The caller supplies a Walker whose Visit(state) returns a Decision:
//   - Break(r):   stop the whole traversal and return r
//   - Continue(): dead end, do not expand this state
//   - Next(seq):  expand this state with the successors lazily yielded by seq
//   - Broad visits the frontier as a FIFO queue (discovery order).
//   - Deep visits it as a LIFO stack (most recently discovered first).
//
// Why
//
//	walk is not a graph-search algorithm: it never de-duplicates states.
//	Callers whose spaces contain cycles either bound path length inside the
//	state, keep their own visited table inside the Walker, or cap depth with
//	WithMaxDepth. The same interface serves early-exit search (first path
//	found) and exhaustive enumeration (longest path, accumulated in the
//	Walker itself).
//
// Decision is a closed set: its only implementations live in this package
// and dispatch through an unexported handler interface, so a traversal
// cannot receive an unknown case.
//
// Complexity (V = visits, E = successors yielded)
//
//   - Time:   O(V + E) plus the cost of Visit
//   - Memory: O(frontier); Deep keeps O(depth × branching), Broad O(width)
//
// Options
//
//   - WithMaxDepth(d)   states deeper than d are never visited (d ≥ 0; panics otherwise).
//   - WithOnVisit(fn)   called with the depth of every visited state.
//
// Results
//
//	Both Broad and Deep return (r, true) on Break and (zero, false) when the
//	frontier is exhausted. For Deep the second form is the normal ending of an
//	enumeration: whatever the Walker accumulated is the answer.
package walk
