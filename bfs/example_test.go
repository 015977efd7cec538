package bfs_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/advent2016/bfs"
)

// ExampleFindLowestCost_maze walks the cubicle maze with designer number 10
// from (1,1) to (7,4).
func ExampleFindLowestCost_maze() {
	res, err := bfs.FindLowestCost[point](maze{magic: 10, goal: point{7, 4}}, point{1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cost, ok := res.Cost()
	fmt.Println(cost, ok)
	// Output:
	// 11 true
}

// ExampleFindLowestCost_reachable uses a nil goal test and a ceiling to
// count the cells reachable in at most 50 steps.
func ExampleFindLowestCost_reachable() {
	sweep := bfs.DriverFuncs[point]{TransitionsFn: maze{magic: 10}.Transitions}

	res, err := bfs.FindLowestCost[point](sweep, point{1, 1}, bfs.WithCeiling(50))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Found, len(res.Seen))
	// Output:
	// false 151
}

// ExampleDriverFuncs reaches 10 from 1 using "+1" and "×2" moves.
func ExampleDriverFuncs() {
	d := bfs.DriverFuncs[int]{
		TransitionsFn: func(n int) iter.Seq[int] {
			return func(yield func(int) bool) {
				_ = yield(n+1) && yield(n*2)
			}
		},
		IsFinalFn: func(n int) bool { return n == 10 },
	}

	res, _ := bfs.FindLowestCost[int](d, 1, bfs.WithCeiling(20))
	fmt.Println(res.FinalCost)
	// Output:
	// 4
}
