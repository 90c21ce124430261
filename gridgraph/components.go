package gridgraph

// Components finds all 8-connected regions of free cells.
// Returns a slice of components; each component lists its cells in BFS
// discovery order, and components are ordered by their first cell in
// row-major order.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and output.
func (g *Grid) Components() [][]Cell {
	labels, count := g.labelFree()
	comps := make([][]Cell, count)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], g.CellAt(i))
		}
	}

	return comps
}

// ComponentOf returns the component label of c as numbered by Components,
// or -1 if c is blocked or out of bounds.
func (g *Grid) ComponentOf(c Cell) int {
	if g.Blocked(c) {
		return -1
	}
	labels, _ := g.labelFree()

	return labels[g.Index(c)]
}

// Connected reports whether a free path of unit moves joins a and b.
// It stops as soon as b is discovered.
// Time: O(W·H·8) worst case.
func (g *Grid) Connected(a, b Cell) bool {
	if g.Blocked(a) || g.Blocked(b) {
		return false
	}
	if a == b {
		return true
	}

	seen := make([]bool, g.Size())
	seen[g.Index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n == b {
				return true
			}
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}

// labelFree assigns a component label to every free cell (blocked cells get -1)
// and returns the labels with the number of components.
func (g *Grid) labelFree() ([]int, int) {
	labels := make([]int, g.Size())
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			start := Cell{Row: r, Col: c}
			i0 := g.Index(start)
			if g.values[r][c] != 0 || labels[i0] >= 0 {
				continue
			}
			// BFS to flood the component
			labels[i0] = count
			queue := []Cell{start}
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi]) {
					ni := g.Index(n)
					if labels[ni] < 0 {
						labels[ni] = count
						queue = append(queue, n)
					}
				}
			}
			count++
		}
	}

	return labels, count
}
