// Package day24 solves "Air Duct Spelunking": visit every numbered
// location of a duct map, starting from 0, in the fewest steps.
package day24

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/advent2016/bfs"
	"github.com/katalvlaran/advent2016/gridgraph"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/tsp"
)

// Puzzle is the day 24 solver.
var Puzzle = puzzle.Define(24, "Air Duct Spelunking", Parse, part1, part2)

// Cell is a duct map cell: a location number 0-9, Wall or Open.
type Cell int8

const (
	Wall Cell = -1
	Open Cell = -2
)

func decode(r rune) (Cell, error) {
	switch {
	case r == '#':
		return Wall, nil
	case r == '.':
		return Open, nil
	case r >= '0' && r <= '9':
		return Cell(r - '0'), nil
	}

	return 0, errors.New("want '#', '.' or a digit")
}

// Ducts is a parsed map with its numbered locations in ascending order.
type Ducts struct {
	grid      *gridgraph.Grid[Cell]
	Locations []gridgraph.Point
	Labels    []int
}

// Parse reads the map. Location 0 must exist, no number may repeat and
// every location must be reachable from every other.
func Parse(raw string) (*Ducts, error) {
	g, err := gridgraph.Parse(raw, decode, gridgraph.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}

	var at [10]*gridgraph.Point
	for p, c := range g.All() {
		if c < 0 {
			continue
		}
		if at[c] != nil {
			return nil, fmt.Errorf("%w: location %d at %v and %v", puzzle.ErrParse, c, *at[c], p)
		}
		at[c] = &p
	}
	if at[0] == nil {
		return nil, fmt.Errorf("%w: no location 0", puzzle.ErrParse)
	}

	d := &Ducts{grid: g}
	for label, p := range at {
		if p != nil {
			d.Locations = append(d.Locations, *p)
			d.Labels = append(d.Labels, label)
		}
	}
	if !g.Connected(func(c Cell) bool { return c != Wall }, d.Locations...) {
		return nil, fmt.Errorf("%w: some location is walled off", puzzle.ErrNoSolution)
	}

	return d, nil
}

func (d *Ducts) moves(p gridgraph.Point) iter.Seq[gridgraph.Point] {
	return func(yield func(gridgraph.Point) bool) {
		for q := range d.grid.Neighbors(p) {
			if d.grid.At(q) != Wall && !yield(q) {
				return
			}
		}
	}
}

// Distances returns the step counts between every pair of locations,
// indexed like Locations. One reachability sweep per location fills a row.
func (d *Ducts) Distances() ([][]int, error) {
	sweep := bfs.DriverFuncs[gridgraph.Point]{TransitionsFn: d.moves}
	dist := make([][]int, len(d.Locations))
	for i, from := range d.Locations {
		res, err := bfs.FindLowestCost[gridgraph.Point](sweep, from)
		if err != nil {
			return nil, err
		}
		dist[i] = make([]int, len(d.Locations))
		for j, to := range d.Locations {
			c, ok := res.Seen[to]
			if !ok {
				c = tsp.NoEdge
			}
			dist[i][j] = c
		}
	}

	return dist, nil
}

// Route returns the fewest steps to visit every location starting at 0,
// optionally coming back to 0, and the order the locations are visited in.
func (d *Ducts) Route(back bool) (int, []int, error) {
	dist, err := d.Distances()
	if err != nil {
		return 0, nil, err
	}
	opts := []tsp.Option{tsp.WithStart(slices.Index(d.Labels, 0))}
	if back {
		opts = append(opts, tsp.WithReturnToStart())
	}
	res, err := tsp.Solve(dist, opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", puzzle.ErrNoSolution, err)
	}
	order := make([]int, len(res.Tour))
	for i, v := range res.Tour {
		order[i] = d.Labels[v]
	}

	return res.Cost, order, nil
}

func part1(d *Ducts) (int, error) {
	steps, _, err := d.Route(false)
	return steps, err
}

func part2(d *Ducts) (int, error) {
	steps, _, err := d.Route(true)
	return steps, err
}
