package inside

import (
	"container/heap"

	"github.com/katalvlaran/mpt/automaton"
)

// Solve computes R[·] and B[·] for every state of p via Knuth's best-first
// relaxation. It never returns an error; an automaton with no accepting
// tree simply yields all-zero bounds (checked by callers via
// Bounds.AnyAccepting, per NoAcceptingTree in the search engines).
//
// Complexity: O((V + E) log(V + E)) where V is the number of states and E
// the number of transitions, dominated by heap operations — one push per
// transition (when its last dependency finalizes, or immediately for
// 0-ary symbols) and one pop per push.
func Solve(p *automaton.PTA) *Bounds {
	r := &runner{
		states: p.States(),
	}
	r.init(p)
	r.process()

	return r.bounds()
}

// runner holds the mutable state for a single Knuth relaxation, mirroring
// the dijkstra package's runner: a read-only input, output maps, a
// finalized set, and a lazy-decrease-key max-heap.
type runner struct {
	states []automaton.State

	trans     []automaton.Transition
	remaining []int     // remaining un-finalized children per transition
	partial   []float64 // running product of finalized children's R values

	// depOn[q] lists, once per occurrence, every transition index that has
	// q as one of its children.
	depOn map[automaton.State][]int

	finalized map[automaton.State]bool
	value     map[automaton.State]float64

	pq candidatePQ
}

func (r *runner) init(p *automaton.PTA) {
	r.depOn = make(map[automaton.State][]int)
	r.finalized = make(map[automaton.State]bool, len(r.states))
	r.value = make(map[automaton.State]float64, len(r.states))
	r.pq = make(candidatePQ, 0, len(r.states))

	for _, q := range r.states {
		r.trans = append(r.trans, p.TransitionsTo(q)...)
	}
	r.remaining = make([]int, len(r.trans))
	r.partial = make([]float64, len(r.trans))

	for i, t := range r.trans {
		r.remaining[i] = len(t.Children)
		r.partial[i] = 1.0
		if len(t.Children) == 0 {
			heap.Push(&r.pq, &candidate{state: t.To, value: t.Prob, transIdx: i})
			continue
		}
		for _, c := range t.Children {
			r.depOn[c] = append(r.depOn[c], i)
		}
	}
}

// process repeatedly finalizes the state with the highest remaining
// candidate value, exactly as Dijkstra finalizes the closest vertex.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		c := heap.Pop(&r.pq).(*candidate)
		if r.finalized[c.state] {
			continue // stale entry, per the lazy-decrease-key pattern
		}
		r.finalized[c.state] = true
		r.value[c.state] = c.value

		for _, ti := range r.depOn[c.state] {
			r.partial[ti] *= c.value
			r.remaining[ti]--
			if r.remaining[ti] == 0 {
				t := r.trans[ti]
				heap.Push(&r.pq, &candidate{state: t.To, value: t.Prob * r.partial[ti], transIdx: ti})
			}
		}
	}
}

func (r *runner) bounds() *Bounds {
	rr := make(map[automaton.State]float64, len(r.states))
	bb := make(map[automaton.State]float64, len(r.states))
	for _, q := range r.states {
		v := r.value[q] // zero value if never finalized: unreachable state
		rr[q] = v
		bb[q] = v
	}

	return &Bounds{R: rr, B: bb}
}

// candidate is a pending (state, value) relaxation result, keyed by the
// transition that produced it.
type candidate struct {
	state    automaton.State
	value    float64
	transIdx int
}

// candidatePQ is a max-heap of *candidate ordered by value descending, the
// mirror image of dijkstra's min-heap nodePQ.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int            { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool  { return pq[i].value > pq[j].value }
func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
