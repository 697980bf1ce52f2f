package automaton

import (
	"errors"
	"strings"
)

// Sentinel errors for automaton construction and validation.
var (
	// ErrEmptyIdentifier indicates a state or symbol identifier was empty.
	ErrEmptyIdentifier = errors.New("automaton: identifier is empty")

	// ErrReservedChar indicates an identifier contains a character reserved
	// by the PTA text format (see ptafile).
	ErrReservedChar = errors.New("automaton: identifier contains a reserved character")

	// ErrArityMismatch indicates the same symbol was used with two
	// different arities.
	ErrArityMismatch = errors.New("automaton: symbol used with inconsistent arity")

	// ErrBadWeight indicates a weight was not finite or fell outside (0,1].
	ErrBadWeight = errors.New("automaton: weight must be finite and in (0,1]")

	// ErrDuplicateTransition indicates two transitions share the same
	// (state, symbol, children) key.
	ErrDuplicateTransition = errors.New("automaton: duplicate transition for (state, symbol, children)")
)

// ReservedChars lists the characters forbidden in state and symbol
// identifiers, since the text format uses them for syntax.
const ReservedChars = `" ->→,;()[]%`

// ContainsReservedChar reports whether id contains any character the PTA
// text format reserves for syntax.
func ContainsReservedChar(id string) bool {
	return strings.ContainsAny(id, ReservedChars)
}

// State is an opaque identifier drawn from Q.
type State string

// Symbol is an opaque identifier drawn from the ranked alphabet Sigma.
type Symbol string

// Transition is a tuple (q, f, (q1,...,qk), p): from state q, symbol f
// applied to children in states Children yields probability Prob.
type Transition struct {
	To       State
	Symbol   Symbol
	Children []State
	Prob     float64
}

// Arity returns the number of children this transition's symbol expects.
func (t Transition) Arity() int { return len(t.Children) }

// transitionKey identifies a transition by its (state, symbol, children)
// triple: at most one transition may exist per key.
type transitionKey struct {
	to     State
	symbol Symbol
	kids   string // children joined with a separator outside ReservedChars' range
}

func keyOf(to State, symbol Symbol, children []State) transitionKey {
	var b strings.Builder
	for i, c := range children {
		if i > 0 {
			b.WriteByte('\x00')
		}
		b.WriteString(string(c))
	}
	return transitionKey{to: to, symbol: symbol, kids: b.String()}
}

// PTA is an immutable, validated Probabilistic Tree Automaton.
//
// Construct one with NewBuilder, add transitions and root weights, then
// call Build. A *PTA is read-only after construction and safe for
// concurrent use.
type PTA struct {
	symbols map[Symbol]int // symbol -> arity
	root    map[State]float64

	// byState indexes transitions producing a given state.
	byState map[State][]Transition
	// bySymbol indexes transitions labelled with a given symbol.
	bySymbol map[Symbol][]Transition
	// byStateSymbol indexes transitions producing (state, symbol).
	byStateSymbol map[State]map[Symbol][]Transition

	states map[State]struct{}
}
