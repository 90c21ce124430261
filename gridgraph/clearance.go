package gridgraph

import (
	"container/list"
	"fmt"
)

// Clearance finds a route from one cell to another that passes through the
// fewest obstacles, treating every blocked cell as removable at cost 1.
// Returns the route (including both endpoints) and the blocked cells on it,
// which is the minimum set of obstacles to clear so that a free path exists.
// A blocked endpoint is counted as an obstacle like any other cell.
//
// Behavior:
//  1. Validate both endpoints are in bounds (ErrOutOfBounds otherwise).
//  2. 0–1 BFS from `from` over all 8 unit moves:
//     • Entering a free cell    → cost 0
//     • Entering a blocked cell → cost 1
//  3. Stop when `to` is dequeued.
//  4. Reconstruct the route via the predecessor slice.
//
// Since every in-bounds cell is reachable when obstacles are removable,
// an in-bounds query always succeeds.
//
// Complexity: O(W·H·8) time, O(W·H) memory.
func (g *Grid) Clearance(from, to Cell) (route []Cell, removals []Cell, err error) {
	if !g.InBounds(from) {
		return nil, nil, fmt.Errorf("%w: from %v", ErrOutOfBounds, from)
	}
	if !g.InBounds(to) {
		return nil, nil, fmt.Errorf("%w: to %v", ErrOutOfBounds, to)
	}

	n := g.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src := g.Index(from)
	dist[src] = g.cost(from)

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	target := g.Index(to)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == target {
			break
		}
		uc := g.CellAt(u)
		for _, d := range Offsets {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			step := g.cost(vc)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := target; at >= 0; at = prev[at] {
		route = append(route, g.CellAt(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	for _, c := range route {
		if g.Blocked(c) {
			removals = append(removals, c)
		}
	}

	return route, removals, nil
}

// cost is the price of entering c during Clearance.
func (g *Grid) cost(c Cell) int {
	if g.values[c.Row][c.Col] != 0 {
		return 1
	}

	return 0
}
