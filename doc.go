// Package advent2016 holds Advent of Code 2016 solutions built on two
// small search engines and a handful of puzzle-shaped libraries.
//
// What is in here?
//
//	Engines:
//		• bfs:       lowest-cost search over implicit unit-cost graphs (bucket queue)
//		• walk:      visitor-driven traversal, breadth or depth first,
//		             steered by Break / Continue / Next decisions
//		• dijkstra:  the weighted counterpart of bfs
//
//	Libraries:
//		• gridgraph:  rectangular grids, neighbours, components, rendering
//		• tsp:        Held–Karp routes through every vertex
//		• asm:        the four-register assembunny machine (cpy inc dec jnz tgl out)
//		• hashsearch: parallel MD5 brute force and stretched hashing
//
//	Harness:
//		• puzzle:          Solver contract, input parsers, registry, Runner
//		• days/dayNN:      one package per day, each exporting Puzzle
//		• cmd/advent2016:  the solve / list command line
//
// Running
//
//	$ export AOC2016_INPUTS=$HOME/aoc/2016
//	$ go run ./cmd/advent2016 solve -day 11
//	Day 11: Radioisotope Thermoelectric Generators
//	  part 1: ...
//	  part 2: ...
package advent2016
