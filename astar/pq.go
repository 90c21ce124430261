package astar

// openSet is a min-heap of arena indices ordered by f, then by creation order.
// Arena indices are assigned in creation order, so the index doubles as the
// tie-breaker: among equal f, the node queued first is expanded first.
type openSet struct {
	nodes *[]node
	items []int
}

func (q openSet) Len() int { return len(q.items) }

func (q openSet) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	fa, fb := (*q.nodes)[a].f, (*q.nodes)[b].f
	if fa != fb {
		return fa < fb
	}

	return a < b
}

func (q openSet) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *openSet) Push(x any) { q.items = append(q.items, x.(int)) }

func (q *openSet) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]

	return item
}
