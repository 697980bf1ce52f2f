package inside_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mpt/automaton"
	"github.com/katalvlaran/mpt/inside"
)

func TestSolve_Trivial(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q", 1.0)
	b.AddTransition("q", "a", nil, 1.0)
	p, err := b.Build()
	require.NoError(t, err)

	bounds := inside.Solve(p)
	require.True(t, floats.EqualWithinAbs(1.0, bounds.RunValue("q"), inside.Tolerance))
	require.True(t, floats.EqualWithinAbs(1.0, bounds.TreeBound("q"), inside.Tolerance))
}

func TestSolve_NoAcceptingTree(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q", 1.0)
	p, err := b.Build()
	require.NoError(t, err)

	bounds := inside.Solve(p)
	require.False(t, bounds.AnyAccepting())
	require.Equal(t, 0.0, bounds.RunValue("q"))
}

// TestSolve_Thesis covers the thesis automaton and checks the
// best-run values used to prune the best-parse engine.
func TestSolve_Thesis(t *testing.T) {
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

	// R[q2] = max(0.5, 0.5) = 0.5 (alpha or beta leaf)
	require.True(t, floats.EqualWithinAbs(0.5, bounds.RunValue("q2"), inside.Tolerance))
	// R[q1] = max(0.1, 0.5*R[q1], 0.3*R[q2], 0.1*R[q1]*R[q2])
	//       = max(0.1, 0.5*0.15, 0.3*0.5, ...) ; solved fixpoint = 0.15
	require.True(t, floats.EqualWithinAbs(0.15, bounds.RunValue("q1"), inside.Tolerance))
}

func TestSolve_Recursive_NoInfiniteLoop(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q", 1.0)
	b.AddTransition("q", "f", []automaton.State{"q"}, 0.5)
	b.AddTransition("q", "a", nil, 0.5)
	p, err := b.Build()
	require.NoError(t, err)

	bounds := inside.Solve(p)
	require.True(t, floats.EqualWithinAbs(0.5, bounds.RunValue("q"), inside.Tolerance))
}
