// Package dijkstra finds lowest-cost paths in implicit graphs whose
// transitions carry non-negative integer weights.
//
// Overview:
//
//   - FindLowestCost expands states in increasing distance from the start
//     using a min-heap, and stops at the first goal popped.
//   - The graph is never materialized: a Driver yields each state's
//     successors together with the weight of the edge leading to them.
//   - It is the weighted counterpart of package bfs. On unit weights both
//     report the same cost; bfs is cheaper because its frontier is a bucket
//     queue instead of a heap.
//   - No day uses it yet: every puzzle graph has unit weights. It is kept
//     for drivers whose moves cost different amounts.
//
// Key features:
//
//   - ReturnPath: records a predecessor per state so PathTo can rebuild the
//     cheapest route to any settled state.
//   - MaxDistance: states farther than the cap are never settled.
//   - InfEdgeThreshold: edges with weight ≥ threshold are treated as walls.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each state is settled at most once; each successful relaxation pushes
//     one heap entry (lazy decrease-key, stale entries are skipped on pop).
//   - Space: O(V + E)
//
// Error handling:
//
//   - ErrNilDriver:       the driver is nil.
//   - ErrNegativeWeight:  the driver yielded a negative weight (detected on relaxation).
//   - ErrBadMaxDistance:  panic value of WithMaxDistance for negative caps.
//   - ErrBadInfThreshold: panic value of WithInfEdgeThreshold for non-positive thresholds.
//
// Example:
//
//	res, err := dijkstra.FindLowestCost[Node](net, "A", dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    path, _ := res.PathTo(res.Final)
//	    fmt.Println(res.FinalCost, path)
//	}
package dijkstra
