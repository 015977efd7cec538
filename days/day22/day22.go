// Package day22 solves "Grid Computing": count viable node pairs, then
// shuffle the goal data to the top-left node through the one empty node.
package day22

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/advent2016/gridgraph"
	"github.com/katalvlaran/advent2016/puzzle"
	"github.com/katalvlaran/advent2016/walk"
)

// Puzzle is the day 22 solver.
var Puzzle = puzzle.Define(22, "Grid Computing", Parse, part1, part2)

// Node is one line of the df listing.
type Node struct {
	At                    gridgraph.Point
	Size, Used, Available int
}

// Parse reads "/dev/grid/node-xX-yY SIZET USEDT AVAILT USE%" lines; the
// command echo and the header are skipped.
func Parse(raw string) ([]Node, error) {
	lines, err := puzzle.Lines(raw)
	if err != nil {
		return nil, err
	}
	var nodes []Node
	for i, l := range lines {
		if !strings.HasPrefix(l, "/dev/grid/") {
			continue
		}
		n := puzzle.Ints[int](l)
		if len(n) != 6 || n[0] < 0 || n[1] < 0 {
			return nil, fmt.Errorf("%w: line %d %q", puzzle.ErrParse, i+1, l)
		}
		nodes = append(nodes, Node{At: gridgraph.Point{X: n[0], Y: n[1]}, Size: n[2], Used: n[3], Available: n[4]})
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", puzzle.ErrParse)
	}

	return nodes, nil
}

// ViablePairs counts ordered pairs (A, B), A ≠ B, where A is not empty and
// its data fits in B.
func ViablePairs(nodes []Node) int {
	n := 0
	for _, a := range nodes {
		if a.Used == 0 {
			continue
		}
		for _, b := range nodes {
			if a.At != b.At && a.Used <= b.Available {
				n++
			}
		}
	}

	return n
}

// Kind classifies a node for moving data around.
type Kind uint8

const (
	Full  Kind = iota // data that fits any normal node
	Empty             // the hole data moves into
	Stuck             // too big to move anywhere
)

func classify(n Node) Kind {
	switch {
	case n.Used == 0:
		return Empty
	case n.Used*100 > n.Size*90:
		return Stuck
	default:
		return Full
	}
}

// Cluster is the node map reduced to kinds. Only the hole and the goal data
// move, so a state is their two positions.
type Cluster struct {
	kinds *gridgraph.Grid[Kind]
}

// State locates the goal data and the empty node.
type State struct {
	Goal, Hole gridgraph.Point
}

// NewCluster lays nodes out on a grid; nodes missing from the listing
// count as Full. It returns the start state: goal data in the top-right
// node and the first empty node in row-major order.
func NewCluster(nodes []Node) (*Cluster, State, error) {
	w, h := 0, 0
	for _, n := range nodes {
		w, h = max(w, n.At.X+1), max(h, n.At.Y+1)
	}
	g, err := gridgraph.Filled(w, h, Full, gridgraph.DefaultOptions())
	if err != nil {
		return nil, State{}, err
	}
	for _, n := range nodes {
		g.Set(n.At, classify(n))
	}
	hole, ok := g.Find(func(k Kind) bool { return k == Empty })
	if !ok {
		return nil, State{}, errors.New("day22: no empty node")
	}

	return &Cluster{kinds: g}, State{Goal: gridgraph.Point{X: w - 1}, Hole: hole}, nil
}

// Moves slides a neighbouring node's data into the hole. The goal data
// moves when it is that neighbour.
func (c *Cluster) Moves(s State) iter.Seq[State] {
	return func(yield func(State) bool) {
		for from := range c.kinds.Neighbors(s.Hole) {
			if c.kinds.At(from) == Stuck {
				continue
			}
			next := State{Goal: s.Goal, Hole: from}
			if s.Goal == from {
				next.Goal = s.Hole
			}
			if !yield(next) {
				return
			}
		}
	}
}

// step is a state with the number of moves that reached it.
type step struct {
	State
	cost int
}

// router keeps the cheapest cost each state was reached at.
type router struct {
	c       *Cluster
	visited map[State]int
}

func (r *router) Visit(s step) walk.Decision[step, int] {
	if s.Goal == (gridgraph.Point{}) {
		return walk.Break[step](s.cost)
	}
	if best, ok := r.visited[s.State]; ok && best <= s.cost {
		return walk.Continue[step, int]()
	}
	r.visited[s.State] = s.cost

	return walk.Next[int](func(yield func(step) bool) {
		for n := range r.c.Moves(s.State) {
			if !yield(step{n, s.cost + 1}) {
				return
			}
		}
	})
}

// FewestMoves returns the fewest moves to bring the goal data to (0, 0).
func (c *Cluster) FewestMoves(start State) (int, error) {
	cost, ok := walk.Broad[step, int](&router{c: c, visited: make(map[State]int)}, step{State: start})
	if !ok {
		return 0, fmt.Errorf("%w: goal data cannot reach the origin", puzzle.ErrNoSolution)
	}

	return cost, nil
}

func part1(nodes []Node) (int, error) { return ViablePairs(nodes), nil }

func part2(nodes []Node) (int, error) {
	c, start, err := NewCluster(nodes)
	if err != nil {
		return 0, err
	}

	return c.FewestMoves(start)
}
