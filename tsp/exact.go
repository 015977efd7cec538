package tsp

import (
	"math"
)

// Solve finds the cheapest route through every vertex of dist exactly once,
// using the Held–Karp dynamic-programming algorithm.
//
// dist[i][j] is the cost to go from i to j; a negative value means there is
// no edge. The diagonal must be zero.
//
// dp[mask][j] = minimum cost to start at Start, visit exactly the vertices
// in mask, and end at j. An open path takes the best dp[all][j]; a closed
// tour adds dist[j][Start] first.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func Solve(dist [][]int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// --- 1. Validate input matrix ---
	n, err := validate(dist, cfg)
	if err != nil {
		return Result{}, err
	}
	s := cfg.Start
	if n == 1 {
		if cfg.ReturnToStart {
			return Result{Tour: []int{s, s}}, nil
		}
		return Result{Tour: []int{s}}, nil
	}

	allMask := (1 << n) - 1
	startMask := 1 << s

	// --- 2. Allocate DP and parent tables ---
	dp := make([][]int, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := range dp {
		if mask&startMask == 0 {
			continue
		}
		dp[mask] = make([]int, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = math.MaxInt
			parent[mask][j] = -1
		}
	}
	dp[startMask][s] = 0

	// --- 3. Fill DP in increasing mask order ---
	for mask := startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if j == s || mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || dp[prevMask][k] == math.MaxInt {
					continue
				}
				c := dist[k][j]
				if c < 0 {
					continue // no edge k→j
				}
				if cand := dp[prevMask][k] + c; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// --- 4. Pick the best end vertex ---
	bestCost := math.MaxInt
	last := -1
	for j := 0; j < n; j++ {
		if j == s || dp[allMask][j] == math.MaxInt {
			continue
		}
		total := dp[allMask][j]
		if cfg.ReturnToStart {
			back := dist[j][s]
			if back < 0 {
				continue
			}
			total += back
		}
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 {
		return Result{}, ErrIncomplete
	}

	// --- 5. Reconstruct route from parent table ---
	size := n
	if cfg.ReturnToStart {
		size++
	}
	tour := make([]int, size)
	if cfg.ReturnToStart {
		tour[n] = s
	}
	mask, j := allMask, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	tour[0] = s

	return Result{Tour: tour, Cost: bestCost}, nil
}
