package mpt

import "errors"

// ErrNoAcceptingTree is returned when the automaton has no root state
// with positive weight, or every reachable state has a best-run value of
// 0 — i.e. no tree is accepted at all.
var ErrNoAcceptingTree = errors.New("mpt: automaton accepts no tree")
