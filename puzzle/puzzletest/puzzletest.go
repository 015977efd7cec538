// Package puzzletest holds helpers for testing puzzle.Solver values.
package puzzletest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/puzzle"
)

// Solve runs only part n of s on raw and returns its formatted answer,
// failing t on any error.
func Solve(t testing.TB, s puzzle.Solver, raw string, n int) string {
	t.Helper()
	parts, err := puzzle.PartsFor(n)
	require.NoError(t, err)

	ans, err := s.Solve(raw, parts)
	require.NoError(t, err)
	v, ok := ans.Value(n)
	require.True(t, ok, "part %d produced no answer", n)

	return v
}

// SolveErr runs part n of s on raw and returns the error it fails with.
func SolveErr(t testing.TB, s puzzle.Solver, raw string, n int) error {
	t.Helper()
	parts, err := puzzle.PartsFor(n)
	require.NoError(t, err)

	_, err = s.Solve(raw, parts)
	require.Error(t, err)

	return err
}
