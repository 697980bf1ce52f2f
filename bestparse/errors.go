package bestparse

import "errors"

// ErrNoAcceptingTree is returned when the automaton has no root state
// with positive weight, or every reachable state has a best-run value of
// 0.
var ErrNoAcceptingTree = errors.New("bestparse: automaton accepts no tree")
