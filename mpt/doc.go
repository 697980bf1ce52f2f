// Package mpt implements the MPT (most probable tree) search engine: a
// best-first enumeration of partial trees over a PTA that finds the tree
// maximising
// P(t), the sum over all of its runs' probabilities.
//
// The engine is a single-threaded walker over a context.Frontier, in the
// shape of algorithms.BFS's walker struct: an init step seeds the
// frontier, a loop step drains it, and each iteration either completes a
// tree (folding its probability into a seen-completions table so that
// multiple runs of the same tree sum together) or expands the
// lexicographically-first remaining hole over every transition
// producing its state.
package mpt
