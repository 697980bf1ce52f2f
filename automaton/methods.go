package automaton

import "sort"

// States returns every state mentioned by a transition, root weight, or
// transition child, in sorted order for deterministic iteration.
//
// Complexity: O(n log n) in the number of distinct states.
func (p *PTA) States() []State {
	out := make([]State, 0, len(p.states))
	for q := range p.states {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Symbols returns the ranked alphabet as a symbol-to-arity mapping.
func (p *PTA) Symbols() map[Symbol]int {
	out := make(map[Symbol]int, len(p.symbols))
	for f, a := range p.symbols {
		out[f] = a
	}

	return out
}

// RootWeight returns the root weight of q, or 0 if q has none.
func (p *PTA) RootWeight(q State) float64 {
	return p.root[q]
}

// HasRoot reports whether any state has a positive root weight.
func (p *PTA) HasRoot() bool {
	return len(p.root) > 0
}

// Roots returns the states with positive root weight, sorted.
func (p *PTA) Roots() []State {
	out := make([]State, 0, len(p.root))
	for q := range p.root {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// TransitionsTo returns every transition producing state q, i.e. every
// (f, children, p) such that (q, f, children, p) was added to the PTA.
//
// Complexity: O(1) lookup, O(k) to copy the k matching transitions.
func (p *PTA) TransitionsTo(q State) []Transition {
	return append([]Transition(nil), p.byState[q]...)
}

// TransitionsToSorted returns the same transitions as TransitionsTo, but
// in a canonical order (by symbol, then arity, then children
// lexicographically). Search engines expand holes in this order so that
// runs are reproducible across executions.
func (p *PTA) TransitionsToSorted(q State) []Transition {
	out := p.TransitionsTo(q)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		if len(a.Children) != len(b.Children) {
			return len(a.Children) < len(b.Children)
		}
		for k := range a.Children {
			if a.Children[k] != b.Children[k] {
				return a.Children[k] < b.Children[k]
			}
		}
		return false
	})

	return out
}

// TransitionsFromSymbol returns every transition labelled f, across all
// producing states. The search engines do not call it; they expand holes
// through TransitionsToSorted.
func (p *PTA) TransitionsFromSymbol(f Symbol) []Transition {
	return append([]Transition(nil), p.bySymbol[f]...)
}

// TransitionsFor returns every transition producing state q via symbol f.
func (p *PTA) TransitionsFor(q State, f Symbol) []Transition {
	return append([]Transition(nil), p.byStateSymbol[q][f]...)
}

// Arity returns the arity of symbol f and whether f appears in the
// alphabet at all.
func (p *PTA) Arity(f Symbol) (int, bool) {
	a, ok := p.symbols[f]
	return a, ok
}
