package inside

import "github.com/katalvlaran/mpt/automaton"

// Tolerance is the absolute tolerance within which two probabilities are
// considered equal, used by callers comparing search
// results against expected values and by the search engines when
// deciding whether a popped priority merely ties the current best.
const Tolerance = 1e-12

// Bounds holds the frozen per-state fixpoints produced by Solve.
//
// R[q] is the best-run value; B[q] is the best-tree bound used as the
// priority multiplier for a hole typed q. Missing states implicitly have
// value 0 (no tree is accepted from them).
type Bounds struct {
	R map[automaton.State]float64
	B map[automaton.State]float64
}

// RunValue returns R[q], or 0 if q has no accepting run.
func (b *Bounds) RunValue(q automaton.State) float64 {
	return b.R[q]
}

// TreeBound returns B[q], or 0 if q has no accepting tree.
func (b *Bounds) TreeBound(q automaton.State) float64 {
	return b.B[q]
}

// AnyAccepting reports whether at least one state has a positive best-run
// value, i.e. whether any tree is accepted from some state. Root weights
// are not considered.
func (b *Bounds) AnyAccepting() bool {
	for _, v := range b.R {
		if v > 0 {
			return true
		}
	}
	return false
}
