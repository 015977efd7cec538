// Package tsp finds exact shortest routes through every point of a small
// integer distance matrix.
//
//   - Solve: the Held–Karp dynamic-programming algorithm.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ)
//
//   - Open paths (start anywhere fixed, end anywhere) and closed tours
//     (WithReturnToStart) share one table.
//
// The matrix may be asymmetric. A negative entry signals "no direct edge".
// If no route visits every point, Solve returns ErrIncomplete.
//
// Use this package on small instances (n≲16); memory doubles with each point.
package tsp
