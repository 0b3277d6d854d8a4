package grid

// Region returns every passable cell 8-connected to from, from included,
// in breadth-first discovery order. It returns nil when from is off the
// board or an obstacle.
//
// Time:   O(N²·8).
// Memory: O(N²) for the seen flags and the queue.
func (g *Grid) Region(from Coord) []Coord {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	seen[g.Index(from)] = true
	queue := []Coord{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Offsets {
			v := u.Add(d)
			if !g.Passable(v) || seen[g.Index(v)] {
				continue
			}
			seen[g.Index(v)] = true
			queue = append(queue, v)
		}
	}

	return queue
}

// Regions partitions the passable cells into 8-connected components.
// Components are ordered by their first cell in row-major order.
func (g *Grid) Regions() [][]Coord {
	label := make([]int, len(g.cells))
	var comps [][]Coord
	for i, s := range g.cells {
		if s == Obstacle || label[i] != 0 {
			continue
		}
		comp := g.Region(g.Coordinate(i))
		for _, c := range comp {
			label[g.Index(c)] = len(comps) + 1
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a path of passable cells joins a and b.
// Any complete search succeeds exactly when Connected is true.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Passable(b) {
		return false
	}
	for _, c := range g.Region(a) {
		if c == b {
			return true
		}
	}

	return false
}
