package bestparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpt/automaton"
	"github.com/katalvlaran/mpt/bestparse"
	"github.com/katalvlaran/mpt/inside"
)

// TestSearch_S2Thesis covers best-parse on the thesis automaton: the
// returned probability is 0.0675. Several trees tie at that value (for
// example sigma( gamma( beta ), beta )), so only the probability is
// asserted.
func TestSearch_S2Thesis(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q0", 0.9)
	b.SetRoot("q1", 0.1)
	b.AddTransition("q1", "alpha", nil, 0.1)
	b.AddTransition("q2", "alpha", nil, 0.5)
	b.AddTransition("q2", "beta", nil, 0.5)
	b.AddTransition("q1", "gamma", []automaton.State{"q1"}, 0.5)
	b.AddTransition("q1", "gamma", []automaton.State{"q2"}, 0.3)
	b.AddTransition("q1", "sigma", []automaton.State{"q1", "q2"}, 0.1)
	b.AddTransition("q0", "sigma", []automaton.State{"q1", "q2"}, 1.0)
	p, err := b.Build()
	require.NoError(t, err)
	bounds := inside.Solve(p)

	res, err := bestparse.Search(p, bounds)
	require.NoError(t, err)
	assert.InDelta(t, 0.0675, res.Probability, 1e-12)
}

// TestSearch_S3Trivial covers a single-leaf automaton.
func TestSearch_S3Trivial(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q", 1.0)
	b.AddTransition("q", "a", nil, 1.0)
	p, err := b.Build()
	require.NoError(t, err)
	bounds := inside.Solve(p)

	res, err := bestparse.Search(p, bounds)
	require.NoError(t, err)
	assert.Equal(t, "a", res.Tree.String())
	assert.InDelta(t, 1.0, res.Probability, 1e-12)
}

// TestSearch_S4NoAcceptingTree covers an automaton with a root but no transitions.
func TestSearch_S4NoAcceptingTree(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q", 1.0)
	p, err := b.Build()
	require.NoError(t, err)
	bounds := inside.Solve(p)

	_, err = bestparse.Search(p, bounds)
	assert.ErrorIs(t, err, bestparse.ErrNoAcceptingTree)
}

// TestSearch_S5AmbiguitySum covers best-parse on a tree with two runs
// (leaf a from root state q1 or from root state q2): it takes the single
// best run (0.4), not the sum.
func TestSearch_S5AmbiguitySum(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q1", 1.0)
	b.SetRoot("q2", 1.0)
	b.AddTransition("q1", "a", nil, 0.3)
	b.AddTransition("q2", "a", nil, 0.4)
	p, err := b.Build()
	require.NoError(t, err)
	bounds := inside.Solve(p)

	res, err := bestparse.Search(p, bounds)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, res.Probability, 1e-12)
}

// TestSearch_S6BoundedSearch covers an automaton with an unbounded recursive option alongside a better-scoring leaf.
func TestSearch_S6BoundedSearch(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q", 1.0)
	b.AddTransition("q", "f", []automaton.State{"q"}, 0.5)
	b.AddTransition("q", "a", nil, 0.5)
	p, err := b.Build()
	require.NoError(t, err)
	bounds := inside.Solve(p)

	res, err := bestparse.Search(p, bounds)
	require.NoError(t, err)
	assert.Equal(t, "a", res.Tree.String())
	assert.InDelta(t, 0.5, res.Probability, 1e-12)
}
