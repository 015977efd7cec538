package dijkstra

import (
	"container/heap"
	"fmt"
)

// FindLowestCost runs Dijkstra's algorithm from start until a goal is
// settled or every reachable state within MaxDistance has been settled.
//
// Returns:
//
//   - a Result whose Found/FinalCost/Final describe the cheapest goal and
//     whose Dist maps every settled state to its distance;
//   - ErrNilDriver for a nil driver;
//   - a wrapped ErrNegativeWeight if the driver yields a negative weight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindLowestCost[S comparable](d Driver[S], start S, opts ...Option) (*Result[S], error) {
	// 1) Validate the driver
	if d == nil {
		return nil, ErrNilDriver
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Prepare the runner
	r := &runner[S]{
		driver:  d,
		options: cfg,
		best:    map[S]int64{start: 0},
		res: &Result[S]{
			Dist:  make(map[S]int64),
			start: start,
		},
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[S]S)
	}
	heap.Push(&r.pq, &nodeItem[S]{id: start, dist: 0})

	// 4) Run the main loop
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner[S comparable] struct {
	driver  Driver[S]
	options Options
	best    map[S]int64 // tentative distances, including unsettled states
	res     *Result[S]
	pq      nodePQ[S]
}

// process pops states in increasing distance. Stale heap entries (already
// settled) are skipped; the first settled goal ends the search.
func (r *runner[S]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		u, du := item.id, item.dist

		if _, settled := r.res.Dist[u]; settled {
			continue
		}
		if du > r.options.MaxDistance {
			break
		}
		r.res.Dist[u] = du

		if r.driver.IsFinal(u) {
			r.res.Found = true
			r.res.FinalCost = du
			r.res.Final = u
			return nil
		}

		if err := r.relax(u, du); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every successor of u a path through u.
func (r *runner[S]) relax(u S, du int64) error {
	for v, w := range r.driver.Transitions(u) {
		if w < 0 {
			return fmt.Errorf("%w: weight=%d", ErrNegativeWeight, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if _, settled := r.res.Dist[v]; settled {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.best[v]; ok && nd >= cur {
			continue
		}
		r.best[v] = nd
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem[S]{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a state and a tentative distance.
type nodeItem[S comparable] struct {
	id   S
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ[S comparable] []*nodeItem[S]

func (pq nodePQ[S]) Len() int           { return len(pq) }
func (pq nodePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
