package automaton

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Builder accumulates states, transitions, and root weights for a PTA.
// It is not safe for concurrent use; build a PTA from a single goroutine,
// then share the resulting *PTA freely.
//
// Complexity: AddTransition and SetRoot are O(1) amortized.
type Builder struct {
	symbols map[Symbol]int
	root    map[State]float64
	trans   []Transition
	seen    map[transitionKey]struct{}
	states  map[State]struct{}

	errs *multierror.Error
}

// NewBuilder returns an empty Builder ready to accept transitions and root
// weights.
func NewBuilder() *Builder {
	return &Builder{
		symbols: make(map[Symbol]int),
		root:    make(map[State]float64),
		seen:    make(map[transitionKey]struct{}),
		states:  make(map[State]struct{}),
	}
}

// SetRoot records a root weight for state q. Weights must lie in (0,1]
// and be finite; invalid weights are recorded and surfaced by Build,
// allowing a caller to keep feeding the builder (e.g. while parsing a
// file) and see every problem at once.
func (b *Builder) SetRoot(q State, weight float64) *Builder {
	if err := b.validateIdentifier("state", string(q)); err != nil {
		b.errs = multierror.Append(b.errs, err)
		return b
	}
	if err := validateWeight(weight); err != nil {
		b.errs = multierror.Append(b.errs, errors.Wrapf(err, "root weight for state %q", q))
		return b
	}
	b.states[q] = struct{}{}
	b.root[q] = weight

	return b
}

// AddTransition records a transition (q, f, children, p). Arity
// consistency, weight validity, reserved characters, and duplicate keys
// are all checked; every violation found is accumulated and returned
// together by Build.
func (b *Builder) AddTransition(q State, f Symbol, children []State, weight float64) *Builder {
	if err := b.validateIdentifier("state", string(q)); err != nil {
		b.errs = multierror.Append(b.errs, err)
	}
	if err := b.validateIdentifier("symbol", string(f)); err != nil {
		b.errs = multierror.Append(b.errs, err)
	}
	for _, c := range children {
		if err := b.validateIdentifier("state", string(c)); err != nil {
			b.errs = multierror.Append(b.errs, err)
		}
	}
	if err := validateWeight(weight); err != nil {
		b.errs = multierror.Append(b.errs, errors.Wrapf(err, "transition %s -> %s(...)", q, f))
	}

	arity := len(children)
	if prev, ok := b.symbols[f]; ok && prev != arity {
		b.errs = multierror.Append(b.errs, errors.Wrapf(ErrArityMismatch,
			"symbol %q previously seen with arity %d, now %d", f, prev, arity))
	} else {
		b.symbols[f] = arity
	}

	key := keyOf(q, f, children)
	if _, dup := b.seen[key]; dup {
		b.errs = multierror.Append(b.errs, errors.Wrapf(ErrDuplicateTransition,
			"state %q, symbol %q, children %v", q, f, children))
	} else {
		b.seen[key] = struct{}{}
	}

	b.states[q] = struct{}{}
	for _, c := range children {
		b.states[c] = struct{}{}
	}
	b.trans = append(b.trans, Transition{To: q, Symbol: f, Children: append([]State(nil), children...), Prob: weight})

	return b
}

func (b *Builder) validateIdentifier(kind, id string) error {
	if id == "" {
		return errors.Wrapf(ErrEmptyIdentifier, "%s", kind)
	}
	if ContainsReservedChar(id) {
		return errors.Wrapf(ErrReservedChar, "%s %q", kind, id)
	}
	return nil
}

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return errors.Wrapf(ErrBadWeight, "got %v", w)
	}
	if w <= 0 || w > 1 {
		return errors.Wrapf(ErrBadWeight, "got %v", w)
	}
	return nil
}

// Build validates the accumulated state and, if everything checks out,
// returns an immutable *PTA. On any validation failure it returns
// InvalidAutomaton, a single error aggregating every problem found across
// all calls to SetRoot and AddTransition.
func (b *Builder) Build() (*PTA, error) {
	if b.errs != nil && b.errs.Len() > 0 {
		return nil, &InvalidAutomaton{Cause: b.errs.ErrorOrNil()}
	}

	p := &PTA{
		symbols:       make(map[Symbol]int, len(b.symbols)),
		root:          make(map[State]float64, len(b.root)),
		byState:       make(map[State][]Transition),
		bySymbol:      make(map[Symbol][]Transition),
		byStateSymbol: make(map[State]map[Symbol][]Transition),
		states:        make(map[State]struct{}, len(b.states)),
	}
	for f, arity := range b.symbols {
		p.symbols[f] = arity
	}
	for q, w := range b.root {
		p.root[q] = w
	}
	for q := range b.states {
		p.states[q] = struct{}{}
	}
	for _, t := range b.trans {
		p.byState[t.To] = append(p.byState[t.To], t)
		p.bySymbol[t.Symbol] = append(p.bySymbol[t.Symbol], t)
		if p.byStateSymbol[t.To] == nil {
			p.byStateSymbol[t.To] = make(map[Symbol][]Transition)
		}
		p.byStateSymbol[t.To][t.Symbol] = append(p.byStateSymbol[t.To][t.Symbol], t)
	}

	return p, nil
}

// InvalidAutomaton is returned by Build when validation fails. Cause
// aggregates every individual problem (bad weight, arity mismatch,
// reserved character, duplicate transition) found during construction.
type InvalidAutomaton struct {
	Cause error
}

func (e *InvalidAutomaton) Error() string {
	return "automaton: invalid automaton: " + e.Cause.Error()
}

func (e *InvalidAutomaton) Unwrap() error { return e.Cause }
