package gridgraph

import (
	"fmt"
	"iter"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](rows [][]T, opts Options) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], rows[y])
	}

	return &Grid[T]{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets(opts.Conn),
	}, nil
}

// Filled returns a w×h grid with every cell set to v.
func Filled[T any](w, h int, v T, opts Options) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]T, h)
	for y := range rows {
		rows[y] = make([]T, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}

	return New(rows, opts)
}

// Parse builds a grid from text, one line per row. Blank lines are
// skipped. cell decodes one rune; its errors are wrapped with ErrBadCell and
// the offending position.
func Parse[T any](text string, cell func(r rune) (T, error), opts Options) (*Grid[T], error) {
	var rows [][]T
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("%w %q at (%d,%d): %v", ErrBadCell, r, x, len(rows), err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return New(rows, opts)
}

func offsets(c Connectivity) []Point {
	if c == Conn8 {
		return []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return []Point{Up, Right, Down, Left}
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the value at p. p must be in bounds.
func (g *Grid[T]) At(p Point) T { return g.Cells[p.Y][p.X] }

// Set stores v at p. p must be in bounds.
func (g *Grid[T]) Set(p Point, v T) { g.Cells[p.Y][p.X] = v }

// Neighbors lazily yields the in-bounds neighbours of p according to Conn.
func (g *Grid[T]) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range g.neighborOffsets {
			q := p.Add(d)
			if !g.InBounds(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// All yields every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for y, row := range g.Cells {
			for x, v := range row {
				if !yield(Point{x, y}, v) {
					return
				}
			}
		}
	}
}

// Find returns the first cell, in row-major order, whose value satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Point, bool) {
	for p, v := range g.All() {
		if pred(v) {
			return p, true
		}
	}

	return Point{}, false
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.All() {
		if pred(v) {
			n++
		}
	}

	return n
}

// Render formats the grid one line per row using cell to draw each value.
func (g *Grid[T]) Render(cell func(T) rune) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y, row := range g.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			sb.WriteRune(cell(v))
		}
	}

	return sb.String()
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid[T]) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}
