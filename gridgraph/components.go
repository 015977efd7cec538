package gridgraph

// Components finds all contiguous regions of cells accepted by passable,
// according to g.Conn. Components are listed in row-major order of their
// first cell; each lists its cells in discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Components(passable func(T) bool) [][]Point {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Point

	for p, v := range g.All() {
		if !passable(v) || seen[g.index(p)] {
			continue
		}
		// BFS to collect component
		queue := []Point{p}
		seen[g.index(p)] = true
		for qi := 0; qi < len(queue); qi++ {
			for q := range g.Neighbors(queue[qi]) {
				if seen[g.index(q)] || !passable(g.At(q)) {
					continue
				}
				seen[g.index(q)] = true
				queue = append(queue, q)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether every point in pts lies in the same component
// of passable cells. An empty or single-point set is trivially connected.
func (g *Grid[T]) Connected(passable func(T) bool, pts ...Point) bool {
	if len(pts) < 2 {
		return true
	}
	label := make(map[Point]int)
	for i, comp := range g.Components(passable) {
		for _, p := range comp {
			label[p] = i
		}
	}
	first, ok := label[pts[0]]
	if !ok {
		return false
	}
	for _, p := range pts[1:] {
		if l, ok := label[p]; !ok || l != first {
			return false
		}
	}

	return true
}
