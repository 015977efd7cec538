package dijkstra_test

import (
	"iter"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/bfs"
	"github.com/katalvlaran/advent2016/dijkstra"
)

type edge struct {
	to string
	w  int64
}

// network is a small explicit weighted graph adapted to dijkstra.Driver.
type network struct {
	adj  map[string][]edge
	goal string
}

func (n network) Transitions(from string) iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, e := range n.adj[from] {
			if !yield(e.to, e.w) {
				return
			}
		}
	}
}

func (n network) IsFinal(s string) bool { return s == n.goal }

// house is the directed graph A→B(4) A→C(1) C→B(2) B→D(1) C→D(5) D→E(3).
func house(goal string) network {
	return network{
		adj: map[string][]edge{
			"A": {{"B", 4}, {"C", 1}},
			"C": {{"B", 2}, {"D", 5}},
			"B": {{"D", 1}},
			"D": {{"E", 3}},
		},
		goal: goal,
	}
}

func TestFindLowestCost_NilDriver(t *testing.T) {
	res, err := dijkstra.FindLowestCost[string](nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrNilDriver)
}

func TestFindLowestCost_NegativeWeight(t *testing.T) {
	g := network{adj: map[string][]edge{"A": {{"B", -1}}}}
	_, err := dijkstra.FindLowestCost[string](g, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestFindLowestCost_GoalAndPath(t *testing.T) {
	res, err := dijkstra.FindLowestCost[string](house("E"), "A", dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, int64(7), res.FinalCost)

	path, ok := res.PathTo("E")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "B", "D", "E"}, path)

	path, ok = res.PathTo("A")
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, path)
}

func TestFindLowestCost_SettlesEverythingWithoutGoal(t *testing.T) {
	res, err := dijkstra.FindLowestCost[string](house(""), "A")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, map[string]int64{"A": 0, "C": 1, "B": 3, "D": 4, "E": 7}, res.Dist)

	_, ok := res.PathTo("E")
	assert.False(t, ok, "paths are only kept with WithReturnPath")
}

func TestFindLowestCost_MaxDistance(t *testing.T) {
	res, err := dijkstra.FindLowestCost[string](house("E"), "A", dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, map[string]int64{"A": 0, "C": 1, "B": 3, "D": 4}, res.Dist)

	res, err = dijkstra.FindLowestCost[string](house(""), "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0}, res.Dist)
}

func TestFindLowestCost_InfEdgeThreshold(t *testing.T) {
	// weights ≥ 2 are walls, leaving only A→C
	res, err := dijkstra.FindLowestCost[string](house(""), "A", dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "C": 1}, res.Dist)

	res, err = dijkstra.FindLowestCost[string](house(""), "A", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "C": 1, "B": 3, "D": 4, "E": 7}, res.Dist)
}

func TestOptions_Panics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

func TestFindLowestCost_ZeroWeightSelfLoop(t *testing.T) {
	g := network{adj: map[string][]edge{"A": {{"A", 0}, {"B", 2}}}, goal: "B"}
	res, err := dijkstra.FindLowestCost[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.FinalCost)
}

// TestFindLowestCost_AgreesWithBucketQueue checks that on unit weights the
// heap search and the bucket queue report identical distances.
func TestFindLowestCost_AgreesWithBucketQueue(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		adj := make(map[int][]int)
		for k := 0; k < 400; k++ {
			u, v := rnd.Intn(250), rnd.Intn(250)
			adj[u] = append(adj[u], v)
		}

		unit := bfs.DriverFuncs[int]{TransitionsFn: func(from int) iter.Seq[int] {
			return func(yield func(int) bool) {
				for _, v := range adj[from] {
					if !yield(v) {
						return
					}
				}
			}
		}}
		weighted := dijkstra.DriverFuncs[int]{TransitionsFn: func(from int) iter.Seq2[int, int64] {
			return func(yield func(int, int64) bool) {
				for _, v := range adj[from] {
					if !yield(v, 1) {
						return
					}
				}
			}
		}}

		want, err := bfs.FindLowestCost[int](unit, 0)
		require.NoError(t, err)
		got, err := dijkstra.FindLowestCost[int](weighted, 0)
		require.NoError(t, err)

		require.Len(t, got.Dist, len(want.Seen), "seed %d", seed)
		for s, c := range want.Seen {
			assert.Equal(t, int64(c), got.Dist[s], "seed %d state %d", seed, s)
		}
	}
}
