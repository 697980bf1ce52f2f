package mpt

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mpt/automaton"
	"github.com/katalvlaran/mpt/context"
	"github.com/katalvlaran/mpt/inside"
	"github.com/katalvlaran/mpt/result"
)

// Search runs the MPT engine over p using the bounds already computed by
// inside.Solve, and returns the tree maximising P(t) = sum over runs, or
// ErrNoAcceptingTree if p accepts nothing.
func Search(p *automaton.PTA, bounds *inside.Bounds, opts ...Option) (result.Result, error) {
	if !p.HasRoot() || !bounds.AnyAccepting() {
		return result.Result{}, ErrNoAcceptingTree
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	start := time.Now()
	w := &walker{
		pta:      p,
		bounds:   bounds,
		tol:      cfg.tolerance,
		frontier: context.NewFrontier(),
		seen:     make(map[string]float64),
	}
	w.init()
	w.loop()
	elapsed := time.Since(start)

	if w.bestTree == nil {
		return result.Result{}, ErrNoAcceptingTree
	}

	return result.Result{
		Tree:        w.bestTree,
		Probability: w.bestProb,
		Insertions:  w.insertions,
		Elapsed:     elapsed,
	}, nil
}

// walker holds the mutable state for a single MPT search, mirroring the
// algorithms package's BFS walker and dijkstra's runner.
type walker struct {
	pta    *automaton.PTA
	bounds *inside.Bounds
	tol    float64

	frontier *context.Frontier
	seen     map[string]float64 // fingerprint key -> accumulated probability

	bestTree   *context.Tree
	bestProb   float64
	insertions int64
}

func (w *walker) bound(q automaton.State) float64 { return w.bounds.TreeBound(q) }

// init seeds the frontier with one context per positive-weight root.
func (w *walker) init() {
	for _, ctx := range context.NewInitialContexts(w.pta, w.bound) {
		w.insertions = int64(w.frontier.Push(ctx))
	}
}

// loop drains the frontier until it empties or the stop rule fires.
func (w *walker) loop() {
	for w.frontier.Len() > 0 {
		if w.shouldStop() {
			return
		}
		ctx := w.frontier.Pop()
		if ctx.Completed() {
			w.complete(ctx)
			continue
		}
		if ctx.Prio() == 0 {
			// No hole in ctx can ever be filled (R[q] =
			// 0 iff no tree is accepted from q), so ctx can never reach a
			// completion. Discarding it here is what keeps recursive
			// dead states (e.g. a state whose only transition refers to
			// itself with no base case) from looping forever.
			continue
		}
		w.expand(ctx)
	}
}

// shouldStop halts the search once the best remaining priority is
// strictly below the current best probability,
// beyond tolerance. Ties at or above the current best are drained so
// every run of best_tree is absorbed into seen-completions before the
// search concludes.
func (w *walker) shouldStop() bool {
	top := w.frontier.PeekPrio()
	if top > w.bestProb {
		return false
	}
	if floats.EqualWithinAbs(top, w.bestProb, w.tol) {
		return false
	}

	return true
}

func (w *walker) complete(ctx *context.Context) {
	tree := ctx.Tree()
	key := context.FingerprintKey(tree)
	w.seen[key] += ctx.BaseW()
	if w.seen[key] > w.bestProb {
		w.bestProb = w.seen[key]
		w.bestTree = tree
	}
}

func (w *walker) expand(ctx *context.Context) {
	q := ctx.NextHoleState()
	for _, t := range w.pta.TransitionsToSorted(q) {
		child := ctx.Expand(t.Symbol, t.Children, t.Prob, w.bound)
		w.insertions = int64(w.frontier.Push(child))
	}
}
