package bfs

import (
	"fmt"
)

// searcher encapsulates mutable search state.
type searcher[S comparable] struct {
	driver  Driver[S]
	opts    Options
	buckets [][]S // buckets[i] holds states pushed at cost StartCost+i
	res     *Result[S]
}

// FindLowestCost runs the search from start, applying any number of
// functional Options.
// Returns ErrNilDriver or ErrOptionViolation for invalid input, or any
// user-supplied hook error. Failing to reach a goal is not an error:
// the returned Result has Found == false and Seen holds every state reachable
// within the ceiling.
func FindLowestCost[S comparable](d Driver[S], start S, opts ...Option) (*Result[S], error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &searcher[S]{
		driver: d,
		opts:   o,
		res: &Result[S]{
			Seen: make(map[S]int),
		},
	}
	if o.HasCeiling && o.StartCost > o.Ceiling {
		return s.res, nil
	}

	s.push(start, o.StartCost)

	return s.res, s.loop()
}

// push appends st to the bucket for cost, growing the bucket slice as needed.
func (s *searcher[S]) push(st S, cost int) {
	idx := cost - s.opts.StartCost
	for len(s.buckets) <= idx {
		s.buckets = append(s.buckets, nil)
	}
	s.buckets[idx] = append(s.buckets[idx], st)
}

// loop drains buckets in increasing cost order until a goal is popped or
// every bucket is empty.
func (s *searcher[S]) loop() error {
	for idx := 0; idx < len(s.buckets); idx++ {
		cost := s.opts.StartCost + idx
		for i := 0; i < len(s.buckets[idx]); i++ {
			st := s.buckets[idx][i]
			done, err := s.visit(st, cost)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		// release the drained bucket
		s.buckets[idx] = nil
	}

	return nil
}

// visit handles one pop. It reports true once a goal is reached.
func (s *searcher[S]) visit(st S, cost int) (bool, error) {
	// only the first pop of a state is authoritative
	if prev, seen := s.res.Seen[st]; seen && prev <= cost {
		return false, nil
	}
	s.res.Seen[st] = cost
	if err := s.opts.OnVisit(cost); err != nil {
		return false, fmt.Errorf("bfs: OnVisit error at cost %d: %w", cost, err)
	}

	if s.driver.IsFinal(st) {
		s.res.Found = true
		s.res.FinalCost = cost
		s.res.Final = st
		return true, nil
	}

	s.expand(st, cost)

	return false, nil
}

// expand buckets every successor of st at cost+StepCost, unless that would
// cross the ceiling.
func (s *searcher[S]) expand(st S, cost int) {
	next := cost + s.opts.StepCost
	if s.opts.HasCeiling && next > s.opts.Ceiling {
		return
	}
	s.res.Expanded++
	for succ := range s.driver.Transitions(st) {
		// already popped, hence cheaper; pending duplicates are filtered on pop
		if prev, seen := s.res.Seen[succ]; seen && prev <= next {
			continue
		}
		s.opts.OnEnqueue(next)
		s.push(succ, next)
	}
}
