package tsp

import "fmt"

// validate checks shape and diagonal of dist and the start vertex.
// It returns n = len(dist).
func validate(dist [][]int, opts Options) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	for i, row := range dist {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d length %d, want %d", ErrNonSquare, i, len(row), n)
		}
		if row[i] != 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%d", ErrBadDiagonal, i, i, row[i])
		}
	}
	if opts.Start < 0 || opts.Start >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrBadStart, opts.Start, n)
	}

	return n, nil
}
