package bfs_test

import (
	"errors"
	"iter"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/bfs"
)

// point is a cell of the office maze used across these tests.
type point struct{ X, Y int }

// maze is the cubicle maze: (x,y) is a wall iff the popcount of
// x²+3x+2xy+y+y²+magic is odd. Negative coordinates are walls.
type maze struct {
	magic int
	goal  point
}

func (m maze) wall(p point) bool {
	if p.X < 0 || p.Y < 0 {
		return true
	}
	v := p.X*p.X + 3*p.X + 2*p.X*p.Y + p.Y + p.Y*p.Y + m.magic

	return bits.OnesCount(uint(v))%2 == 1
}

func (m maze) Transitions(from point) iter.Seq[point] {
	return func(yield func(point) bool) {
		for _, d := range [4]point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
			next := point{from.X + d.X, from.Y + d.Y}
			if m.wall(next) {
				continue
			}
			if !yield(next) {
				return
			}
		}
	}
}

func (m maze) IsFinal(p point) bool { return p == m.goal }

// graph is an explicit adjacency list adapted to bfs.Driver.
type graph struct {
	adj  map[int][]int
	goal int // -1 for none
}

func (g graph) Transitions(from int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, n := range g.adj[from] {
			if !yield(n) {
				return
			}
		}
	}
}

func (g graph) IsFinal(v int) bool { return v == g.goal }

// chain builds 0→1→…→n-1.
func chain(n, goal int) graph {
	g := graph{adj: make(map[int][]int, n), goal: goal}
	for i := 0; i < n-1; i++ {
		g.adj[i] = []int{i + 1}
	}

	return g
}

// referenceDistances is a plain queue BFS used to cross-check Seen.
func referenceDistances(g graph, start int) map[int]int {
	dist := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range g.adj[v] {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[v] + 1
				queue = append(queue, n)
			}
		}
	}

	return dist
}

// randomGraph builds an undirected random graph on n vertices.
func randomGraph(n, edges int, seed int64) graph {
	rnd := rand.New(rand.NewSource(seed))
	g := graph{adj: make(map[int][]int, n), goal: -1}
	for k := 0; k < edges; k++ {
		u, v := rnd.Intn(n), rnd.Intn(n)
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}

	return g
}

func TestFindLowestCost_Errors(t *testing.T) {
	_, err := bfs.FindLowestCost[int](nil, 0)
	assert.ErrorIs(t, err, bfs.ErrNilDriver)

	g := chain(3, 2)
	_, err = bfs.FindLowestCost[int](g, 0, bfs.WithCeiling(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.FindLowestCost[int](g, 0, bfs.WithStartCost(-3))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.FindLowestCost[int](g, 0, bfs.WithStepCost(0))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestFindLowestCost_MazeFixture(t *testing.T) {
	res, err := bfs.FindLowestCost[point](maze{magic: 10, goal: point{7, 4}}, point{1, 1})
	require.NoError(t, err)

	cost, ok := res.Cost()
	require.True(t, ok)
	assert.Equal(t, 11, cost)
	assert.Equal(t, point{7, 4}, res.Final)
	assert.Equal(t, 11, res.Seen[point{7, 4}])
}

func TestFindLowestCost_MazeReachableWithinCeiling(t *testing.T) {
	sweep := bfs.DriverFuncs[point]{TransitionsFn: maze{magic: 10}.Transitions}

	res, err := bfs.FindLowestCost[point](sweep, point{1, 1}, bfs.WithCeiling(50))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Len(t, res.Seen, 151)

	// a looser ceiling still labels the same cells at cost ≤ 50
	res, err = bfs.FindLowestCost[point](sweep, point{1, 1}, bfs.WithCeiling(53))
	require.NoError(t, err)
	assert.Equal(t, 151, res.CountWithin(50))
	assert.Len(t, res.Seen, 157)
}

func TestFindLowestCost_NoSolution(t *testing.T) {
	// 0→1→2→3→0 cycle plus a dead-end branch 2→4; goal 9 does not exist.
	g := graph{
		adj:  map[int][]int{0: {1}, 1: {2}, 2: {3, 4}, 3: {0}},
		goal: 9,
	}
	res, err := bfs.FindLowestCost[int](g, 0)
	require.NoError(t, err)

	_, ok := res.Cost()
	assert.False(t, ok)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 3}, res.Seen)
}

func TestFindLowestCost_CeilingTruncation(t *testing.T) {
	g := chain(10, 9)
	res, err := bfs.FindLowestCost[int](g, 0, bfs.WithCeiling(5))
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Len(t, res.Seen, 6)
	for v, c := range res.Seen {
		assert.LessOrEqual(t, c, 5, "state %d", v)
	}

	// a ceiling exactly at the distance still finds it
	res, err = bfs.FindLowestCost[int](g, 0, bfs.WithCeiling(9))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 9, res.FinalCost)
}

func TestFindLowestCost_CeilingBelowStartCost(t *testing.T) {
	res, err := bfs.FindLowestCost[int](chain(3, 2), 0, bfs.WithStartCost(4), bfs.WithCeiling(3))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Seen)
}

func TestFindLowestCost_StartIsFinal(t *testing.T) {
	res, err := bfs.FindLowestCost[int](chain(3, 0), 0, bfs.WithStartCost(7))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 7, res.FinalCost)
	assert.Zero(t, res.Expanded)
}

func TestFindLowestCost_StartAndStepCost(t *testing.T) {
	res, err := bfs.FindLowestCost[int](chain(5, 4), 0, bfs.WithStartCost(3), bfs.WithStepCost(2))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 3+4*2, res.FinalCost)
	assert.Equal(t, map[int]int{0: 3, 1: 5, 2: 7, 3: 9, 4: 11}, res.Seen)
}

func TestFindLowestCost_DiamondDuplicates(t *testing.T) {
	// 0 reaches 3 both directly through 1 and 2, and through a longer route.
	g := graph{
		adj:  map[int][]int{0: {1, 2, 5}, 1: {3}, 2: {3}, 5: {6}, 6: {3}, 3: {4}},
		goal: 4,
	}
	var enqueued int
	res, err := bfs.FindLowestCost[int](g, 0, bfs.WithOnEnqueue(func(int) { enqueued++ }))
	require.NoError(t, err)
	assert.Equal(t, 3, res.FinalCost)
	assert.Equal(t, 2, res.Seen[3])
	// 3 is pushed twice into bucket 2 but visited once
	assert.GreaterOrEqual(t, enqueued, len(res.Seen))
}

func TestFindLowestCost_SeenMatchesGraphDistance(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(200, 300, seed)
		want := referenceDistances(g, 0)

		res, err := bfs.FindLowestCost[int](g, 0)
		require.NoError(t, err)
		assert.Equal(t, want, res.Seen, "seed %d", seed)
	}
}

func TestFindLowestCost_OrderIndependence(t *testing.T) {
	base := randomGraph(150, 260, 42)
	base.goal = 77
	want, err := bfs.FindLowestCost[int](base, 0)
	require.NoError(t, err)

	for seed := int64(0); seed < 5; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		shuffled := graph{adj: make(map[int][]int, len(base.adj)), goal: base.goal}
		for v, ns := range base.adj {
			cp := append([]int(nil), ns...)
			rnd.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
			shuffled.adj[v] = cp
		}
		got, err := bfs.FindLowestCost[int](shuffled, 0)
		require.NoError(t, err)
		assert.Equal(t, want.Found, got.Found)
		assert.Equal(t, want.FinalCost, got.FinalCost, "seed %d", seed)
	}
}

func TestFindLowestCost_Idempotent(t *testing.T) {
	m := maze{magic: 10, goal: point{7, 4}}
	first, err := bfs.FindLowestCost[point](m, point{1, 1}, bfs.WithCeiling(100))
	require.NoError(t, err)
	second, err := bfs.FindLowestCost[point](m, point{1, 1}, bfs.WithCeiling(100))
	require.NoError(t, err)

	assert.Equal(t, first.Found, second.Found)
	assert.Equal(t, first.FinalCost, second.FinalCost)
	assert.Equal(t, first.Seen, second.Seen)
}

func TestFindLowestCost_HookAbort(t *testing.T) {
	stop := errors.New("enough")
	visits := 0
	_, err := bfs.FindLowestCost[int](chain(10, 9), 0, bfs.WithOnVisit(func(cost int) error {
		visits++
		if cost == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, visits)
}

func TestDriverFuncs_Defaults(t *testing.T) {
	var d bfs.DriverFuncs[int]
	assert.False(t, d.IsFinal(0))

	res, err := bfs.FindLowestCost[int](d, 0)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0}, res.Seen)
}
