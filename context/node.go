package context

import "github.com/katalvlaran/mpt/automaton"

// node is the persistent shape of a context: either an unfilled hole
// typed by a state, or a committed symbol with fully-formed children
// (each of which may itself contain holes further down).
type node struct {
	hole  bool
	state automaton.State // valid iff hole

	sym      automaton.Symbol // valid iff !hole
	children []*node          // valid iff !hole
}

// replaceAt returns a copy of root with the node at path replaced by
// replacement, sharing every branch not on the path (structural sharing,
// per the design notes).
func replaceAt(root *node, path []int, replacement *node) *node {
	if len(path) == 0 {
		return replacement
	}
	i, rest := path[0], path[1:]
	newChildren := make([]*node, len(root.children))
	copy(newChildren, root.children)
	newChildren[i] = replaceAt(root.children[i], rest, replacement)

	return &node{sym: root.sym, children: newChildren}
}

// toTree converts a hole-free shape into a public Tree. It panics if any
// hole remains; callers must check Context.Completed first.
func (n *node) toTree() *Tree {
	if n.hole {
		panic("context: toTree called on a shape with a remaining hole")
	}
	children := make([]*Tree, len(n.children))
	for i, c := range n.children {
		children[i] = c.toTree()
	}

	return &Tree{Symbol: n.sym, Children: children}
}
