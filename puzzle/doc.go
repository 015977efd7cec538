// Package puzzle is the harness shared by every daily solver: it defines
// the Solver contract, input parsers, a day registry and a Runner that loads
// inputs from disk and reports answers.
//
// A day is usually built with Define from three plain functions:
//
//	var Puzzle = puzzle.Define(13, "A Maze of Twisty Little Cubicles",
//	    puzzle.Integer[int], part1, part2)
//
// Parsing happens once per Solve; both parts receive the same parsed value
// and must not mutate it.
//
// Errors
//
//   - ErrParse       the raw input could not be decoded.
//   - ErrNoSolution  a part exhausted its search without an answer.
//   - ErrDuplicateDay / ErrUnknownDay from Registry.
package puzzle
