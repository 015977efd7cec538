// Package bfs provides a lowest-cost search over implicit graphs whose edges
// all carry the same positive integer cost.
//
// What
//
//   - The caller supplies a Driver: Transitions(state) lazily yields
//     successors, IsFinal(state) recognises goals. States are any comparable
//     value and double as map keys.
//   - FindLowestCost explores states in non-decreasing cost from the start
//     and returns a Result containing:
//   - Found / FinalCost / Final: the cheapest goal reached, if any
//   - Seen: every visited state with its minimal cost
//   - Expanded: how many states were expanded
//   - Supports an optional cost ceiling (WithCeiling), a start cost
//     (WithStartCost), a flat step cost (WithStepCost) and observation hooks.
//
// Frontier
//
//	The frontier is a bucket queue (Dial's algorithm): bucket i holds states
//	pushed at cost StartCost+i. Buckets are drained in order. A state may be
//	pushed into several buckets; only its first pop is authoritative, later
//	pops are filtered out. Because every transition costs the same, the first
//	goal popped is globally optimal. Drivers with variable edge weights must
//	use package dijkstra instead.
//
// Ties
//
//	States of equal cost are popped in discovery order, but no ordering
//	guarantee is part of the contract: any of several equal-cost goals may be
//	reported. The reported cost never depends on tie order.
//
// Complexity (V = states visited, E = transitions generated)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (pending duplicates live in their buckets until popped)
//
// Usage
//
//	res, err := bfs.FindLowestCost[Point](maze, Point{1, 1}, bfs.WithCeiling(50))
//	if err != nil {
//	    // ErrNilDriver, ErrOptionViolation or a hook error
//	}
//	if cost, ok := res.Cost(); ok {
//	    fmt.Println("goal at", cost)
//	}
//	fmt.Println("reachable within 50:", len(res.Seen))
//
// Errors
//
//   - ErrNilDriver        if the driver is nil.
//   - ErrOptionViolation  for a negative start cost or ceiling, or a step cost < 1.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
