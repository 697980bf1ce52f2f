package context

import "github.com/katalvlaran/mpt/automaton"

// Bound is a per-state admissible upper bound, supplied by the caller:
// the MPT engine passes the best-tree bound B[·], the best-parse engine
// passes the best-run value R[·].
type Bound func(automaton.State) float64

// hole records a pending position (child-index path from the root) and
// the state it must be filled from.
type hole struct {
	path  []int
	state automaton.State
}

// Context is a tree with a finite, possibly-empty set of typed holes, a
// base probability (the product of committed transition weights, times
// the root weight of the tree's root state), and a priority — an
// admissible upper bound on the probability of any single-run completion.
//
// Contexts are immutable; Expand returns a new Context.
type Context struct {
	shape *node
	holes []hole
	baseW float64
	prio  float64
}

// NewInitialContexts returns one single-hole context per state with a
// positive root weight: shape is "hole typed q", BaseW = root(q), Prio =
// root(q) * bound(q).
func NewInitialContexts(p *automaton.PTA, bound Bound) []*Context {
	roots := p.Roots()
	out := make([]*Context, 0, len(roots))
	for _, q := range roots {
		w := p.RootWeight(q)
		out = append(out, &Context{
			shape: &node{hole: true, state: q},
			holes: []hole{{path: nil, state: q}},
			baseW: w,
			prio:  w * bound(q),
		})
	}

	return out
}

// Completed reports whether ctx has no remaining holes.
func (ctx *Context) Completed() bool { return len(ctx.holes) == 0 }

// BaseW returns the context's committed probability.
func (ctx *Context) BaseW() float64 { return ctx.baseW }

// Prio returns the context's priority, the frontier's ordering key.
func (ctx *Context) Prio() float64 { return ctx.prio }

// NextHoleState returns the state of the lexicographically-smallest
// remaining hole, i.e. the one Expand will fill. Panics if Completed.
func (ctx *Context) NextHoleState() automaton.State {
	return ctx.holes[0].state
}

// Tree converts a completed context into a public Tree. Panics if the
// context still has holes; callers must check Completed first.
func (ctx *Context) Tree() *Tree {
	return ctx.shape.toTree()
}

// Expand replaces the lexicographically-smallest remaining hole with a
// node labelled f over the given children, each a fresh hole typed by
// the corresponding state, per the transition (q, f, children, prob)
// where q == ctx.NextHoleState(). The new BaseW is ctx.BaseW()*prob; the
// new priority is BaseW times the product of bound over every remaining
// hole.
//
// Because holes are always filled in lexicographic order and a hole's
// children are lexicographically smaller than every other pending hole
// (they cannot yet exist as holes themselves), prepending the new child
// holes ahead of the rest of ctx.holes keeps the list correctly ordered.
func (ctx *Context) Expand(f automaton.Symbol, children []automaton.State, prob float64, bound Bound) *Context {
	h := ctx.holes[0]

	newNode := &node{sym: f, children: make([]*node, len(children))}
	for i, c := range children {
		newNode.children[i] = &node{hole: true, state: c}
	}
	newShape := replaceAt(ctx.shape, h.path, newNode)

	newHoles := make([]hole, 0, len(children)+len(ctx.holes)-1)
	for i, c := range children {
		path := make([]int, len(h.path)+1)
		copy(path, h.path)
		path[len(h.path)] = i
		newHoles = append(newHoles, hole{path: path, state: c})
	}
	newHoles = append(newHoles, ctx.holes[1:]...)

	newBaseW := ctx.baseW * prob
	prio := newBaseW
	for _, hh := range newHoles {
		prio *= bound(hh.state)
	}

	return &Context{shape: newShape, holes: newHoles, baseW: newBaseW, prio: prio}
}
