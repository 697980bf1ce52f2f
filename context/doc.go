// Package context implements partial trees ("contexts") with typed holes,
// the search currency shared by the mpt and bestparse engines.
//
// A context pairs a tree shape — complete nodes plus a set of typed holes
// awaiting a subtree — with a base probability (the product of
// transition weights already committed) and a priority (base probability
// times the product of a caller-supplied bound over each remaining
// hole's state). Contexts are immutable: Expand always returns a fresh
// context, sharing the unaffected branches of the parent's shape
// (structural sharing, per the design notes' persistent-node approach)
// and cloning only the path from the root down to the expanded hole.
//
// Holes are always expanded in lexicographic order of their tree
// position. Because a position can only become a hole after its parent
// has already been filled, the first (smallest) remaining hole is always
// at the front of Context's internal hole list, and expanding it produces
// child holes that are lexicographically smaller than every other
// pending hole — so a simple "replace the front, prepend its children"
// discipline keeps the list correctly ordered with no explicit sort.
package context
