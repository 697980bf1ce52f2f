// Package automaton defines the Probabilistic Tree Automaton (PTA) model:
// states, a ranked alphabet, transitions indexed for lookup, and root
// weights.
//
// A PTA is built with a Builder, validated once, and becomes an immutable
// *PTA. Transitions and root weights are frozen at that point; all reader
// methods (States, Symbols, TransitionsTo, TransitionsFromSymbol,
// TransitionsFor, RootWeight) are safe for concurrent use without locking,
// since nothing mutates a *PTA after Build succeeds.
//
// Semantics:
//
//   - A transition (q, f, (q1,...,qk), p) means: a run may assign state q
//     to a node labelled f whose children were assigned q1,...,qk,
//     contributing factor p.
//   - Root weights assign an acceptance weight to a subset of states;
//     states absent from the mapping have root weight 0.
//   - All weights lie in (0,1]; zero-probability transitions are never
//     stored.
//
// See ptafile for the on-disk text format this package's Builder is
// typically populated from.
package automaton
