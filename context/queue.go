package context

import "container/heap"

// entry pairs a Context with the sequence number it was pushed at, giving
// deterministic FIFO tie-breaking among equal priorities, the same
// lazy-decrease-key-adjacent bookkeeping dijkstra's nodePQ uses for its
// heap entries.
type entry struct {
	ctx *Context
	seq uint64
}

// entryPQ is a max-heap of entry ordered by Prio descending, ties broken
// by seq ascending (earlier insertion wins).
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].ctx.prio != pq[j].ctx.prio {
		return pq[i].ctx.prio > pq[j].ctx.prio
	}
	return pq[i].seq < pq[j].seq
}
func (pq entryPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Frontier is the best-first priority queue of contexts shared by the
// mpt and bestparse engines. It is exclusively owned by a single search
// call and assigns each pushed context a monotonic sequence number for
// FIFO tie-breaking.
type Frontier struct {
	pq      entryPQ
	nextSeq uint64
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push inserts ctx into the frontier and returns the 1-based push count
// so far (the engine's "insertions" diagnostic).
func (f *Frontier) Push(ctx *Context) uint64 {
	heap.Push(&f.pq, entry{ctx: ctx, seq: f.nextSeq})
	f.nextSeq++

	return f.nextSeq
}

// Len returns the number of contexts currently queued.
func (f *Frontier) Len() int { return f.pq.Len() }

// Pop removes and returns the highest-priority context, ties broken by
// insertion order.
func (f *Frontier) Pop() *Context {
	e := heap.Pop(&f.pq).(entry)
	return e.ctx
}

// PeekPrio returns the priority of the next context Pop would return,
// without removing it. Callers must check Len() > 0 first.
func (f *Frontier) PeekPrio() float64 {
	return f.pq[0].ctx.prio
}
