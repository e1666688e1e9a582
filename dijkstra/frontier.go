package dijkstra

// entry is one (tentative distance, vertex) candidate of the frontier.
type entry struct {
	id   string
	dist float64
}

// frontier is a binary min-heap of entries ordered by dist, then id.
// It implements container/heap.Interface. Stale entries stay in the heap
// until popped; see runner.process.
type frontier []entry

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
