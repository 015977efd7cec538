package walk

import "iter"

// item is a frontier entry.
type item[S any] struct {
	state S
	depth int
}

// frontier is the pending-state container; its pop order is the only
// difference between Broad and Deep.
type frontier[S any] interface {
	push(it item[S])
	pop() (item[S], bool)
}

// queue is a FIFO frontier.
type queue[S any] struct {
	items []item[S]
	head  int
}

func (q *queue[S]) push(it item[S]) { q.items = append(q.items, it) }

func (q *queue[S]) pop() (item[S], bool) {
	if q.head == len(q.items) {
		return item[S]{}, false
	}
	it := q.items[q.head]
	q.items[q.head] = item[S]{}
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return it, true
}

// stack is a LIFO frontier.
type stack[S any] struct {
	items []item[S]
}

func (s *stack[S]) push(it item[S]) { s.items = append(s.items, it) }

func (s *stack[S]) pop() (item[S], bool) {
	n := len(s.items)
	if n == 0 {
		return item[S]{}, false
	}
	it := s.items[n-1]
	s.items[n-1] = item[S]{}
	s.items = s.items[:n-1]

	return it, true
}

// walker drives one traversal and implements handler for the decisions it
// receives.
type walker[S, R any] struct {
	w     Walker[S, R]
	opts  Options
	front frontier[S]

	depth  int // depth of the state being visited
	done   bool
	result R
}

// Broad visits states breadth-first starting at start.
// It returns the payload of the first Break, or (zero, false) once every
// reachable state has been visited.
func Broad[S, R any](w Walker[S, R], start S, opts ...Option) (R, bool) {
	return run(w, start, &queue[S]{}, opts)
}

// Deep visits states depth-first starting at start.
// Without a Break it runs to exhaustion and returns (zero, false).
func Deep[S, R any](w Walker[S, R], start S, opts ...Option) (R, bool) {
	return run(w, start, &stack[S]{}, opts)
}

func run[S, R any](w Walker[S, R], start S, f frontier[S], opts []Option) (R, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	wk := &walker[S, R]{w: w, opts: o, front: f}
	wk.front.push(item[S]{state: start})
	for !wk.done {
		it, ok := wk.front.pop()
		if !ok {
			break
		}
		wk.depth = it.depth
		wk.opts.OnVisit(it.depth)
		if d := wk.w.Visit(it.state); d != nil {
			d.dispatch(wk)
		}
	}

	return wk.result, wk.done
}

func (wk *walker[S, R]) onBreak(r R) {
	wk.result = r
	wk.done = true
}

func (wk *walker[S, R]) onContinue() {}

func (wk *walker[S, R]) onNext(seq iter.Seq[S]) {
	if seq == nil {
		return
	}
	child := wk.depth + 1
	if wk.opts.MaxDepth >= 0 && child > wk.opts.MaxDepth {
		return
	}
	for s := range seq {
		wk.front.push(item[S]{state: s, depth: child})
	}
}
