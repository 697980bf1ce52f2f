package bestparse

import (
	"time"

	"github.com/katalvlaran/mpt/automaton"
	"github.com/katalvlaran/mpt/context"
	"github.com/katalvlaran/mpt/inside"
	"github.com/katalvlaran/mpt/result"
)

// Search runs the best-parse engine over p, returning the tree whose
// single best run has maximal probability, or ErrNoAcceptingTree if p
// accepts nothing.
func Search(p *automaton.PTA, bounds *inside.Bounds) (result.Result, error) {
	if !p.HasRoot() || !bounds.AnyAccepting() {
		return result.Result{}, ErrNoAcceptingTree
	}

	start := time.Now()
	w := &walker{pta: p, bounds: bounds, frontier: context.NewFrontier()}
	w.init()
	tree, prob, found := w.loop()
	elapsed := time.Since(start)

	if !found {
		return result.Result{}, ErrNoAcceptingTree
	}

	return result.Result{
		Tree:        tree,
		Probability: prob,
		Insertions:  w.insertions,
		Elapsed:     elapsed,
	}, nil
}

// walker mirrors mpt's walker but needs no seen-completions table: the
// priority queue alone dominates every unseen run, so the first
// completion popped is the optimum.
type walker struct {
	pta      *automaton.PTA
	bounds   *inside.Bounds
	frontier *context.Frontier

	insertions int64
}

func (w *walker) bound(q automaton.State) float64 { return w.bounds.RunValue(q) }

func (w *walker) init() {
	for _, ctx := range context.NewInitialContexts(w.pta, w.bound) {
		w.insertions = int64(w.frontier.Push(ctx))
	}
}

func (w *walker) loop() (*context.Tree, float64, bool) {
	for w.frontier.Len() > 0 {
		ctx := w.frontier.Pop()
		if ctx.Completed() {
			return ctx.Tree(), ctx.BaseW(), true
		}
		if ctx.Prio() == 0 {
			// R[q] = 0 for some hole q means no run can ever fill it;
			// discard rather than expand forever.
			continue
		}
		w.expand(ctx)
	}

	return nil, 0, false
}

func (w *walker) expand(ctx *context.Context) {
	q := ctx.NextHoleState()
	for _, t := range w.pta.TransitionsToSorted(q) {
		child := ctx.Expand(t.Symbol, t.Children, t.Prob, w.bound)
		w.insertions = int64(w.frontier.Push(child))
	}
}
