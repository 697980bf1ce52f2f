package automaton_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpt/automaton"
)

func TestBuilder_SimpleValid(t *testing.T) {
	b := automaton.NewBuilder()
	b.SetRoot("q", 1.0)
	b.AddTransition("q", "a", nil, 1.0)

	p, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []automaton.State{"q"}, p.States())
	assert.Equal(t, 1.0, p.RootWeight("q"))
	assert.Equal(t, 0.0, p.RootWeight("missing"))

	trs := p.TransitionsTo("q")
	require.Len(t, trs, 1)
	assert.Equal(t, automaton.Symbol("a"), trs[0].Symbol)
	assert.Equal(t, 0, trs[0].Arity())
}

func TestBuilder_ArityMismatch(t *testing.T) {
	b := automaton.NewBuilder()
	b.AddTransition("q1", "f", []automaton.State{"q2"}, 0.5)
	b.AddTransition("q1", "f", []automaton.State{"q2", "q3"}, 0.5)

	_, err := b.Build()
	require.Error(t, err)
	var invalid *automaton.InvalidAutomaton
	require.True(t, errors.As(err, &invalid))
	assert.ErrorIs(t, err, automaton.ErrArityMismatch)
}

func TestBuilder_DuplicateTransitionKey(t *testing.T) {
	b := automaton.NewBuilder()
	b.AddTransition("q", "a", []automaton.State{"p"}, 0.3)
	b.AddTransition("q", "a", []automaton.State{"p"}, 0.4)

	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, automaton.ErrDuplicateTransition)
}

func TestBuilder_BadWeight(t *testing.T) {
	for _, w := range []float64{0, -0.1, 1.1, math.NaN(), math.Inf(1)} {
		b := automaton.NewBuilder()
		b.AddTransition("q", "a", nil, w)
		_, err := b.Build()
		require.Error(t, err, "weight %v should be rejected", w)
		assert.ErrorIs(t, err, automaton.ErrBadWeight)
	}
}

func TestBuilder_ReservedChar(t *testing.T) {
	b := automaton.NewBuilder()
	b.AddTransition("q 1", "a", nil, 1.0)
	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, automaton.ErrReservedChar)
}

func TestBuilder_EmptyIdentifier(t *testing.T) {
	b := automaton.NewBuilder()
	b.AddTransition("", "a", nil, 1.0)
	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, automaton.ErrEmptyIdentifier)
}

func TestPTA_TransitionsFromSymbolAndFor(t *testing.T) {
	b := automaton.NewBuilder()
	b.AddTransition("q1", "a", nil, 0.5)
	b.AddTransition("q2", "a", nil, 0.25)
	p, err := b.Build()
	require.NoError(t, err)

	assert.Len(t, p.TransitionsFromSymbol("a"), 2)
	assert.Len(t, p.TransitionsFor("q1", "a"), 1)
	assert.Len(t, p.TransitionsFor("q2", "b"), 0)

	arity, ok := p.Arity("a")
	assert.True(t, ok)
	assert.Equal(t, 0, arity)
	_, ok = p.Arity("nope")
	assert.False(t, ok)
}
