package context

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/katalvlaran/mpt/automaton"
)

// Tree is a finite ranked tree: a leaf is a 0-ary symbol, an internal node
// pairs a symbol of arity k with k ordered children. Equality and hashing
// are structural (see Fingerprint).
type Tree struct {
	Symbol   automaton.Symbol
	Children []*Tree

	fp      uint64
	fpValid bool
}

// NewLeaf returns a 0-ary tree node.
func NewLeaf(sym automaton.Symbol) *Tree {
	return &Tree{Symbol: sym}
}

// NewNode returns an internal tree node with the given children.
func NewNode(sym automaton.Symbol, children ...*Tree) *Tree {
	return &Tree{Symbol: sym, Children: children}
}

// Arity returns the number of children.
func (t *Tree) Arity() int { return len(t.Children) }

// String pretty-prints t as "f( c1, c2, ... )" for arity >= 1, or just "f"
// for arity 0.
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	b.WriteString(string(t.Symbol))
	if len(t.Children) == 0 {
		return
	}
	b.WriteString("( ")
	for i, c := range t.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.write(b)
	}
	b.WriteString(" )")
}

// leafPrefix and nodePrefix domain-separate the two hash shapes below,
// the same way a Merkle tree hashes a leaf as SHA-256(0x00 || d) and an
// internal node as SHA-256(0x01 || left || right): without a prefix and
// a length tag on the symbol, two structurally different trees could
// serialize to the same byte stream and collide.
const (
	leafPrefix = byte(0)
	nodePrefix = byte(1)
)

// Fingerprint returns a structural hash of t, computed Merkle-style (the
// hash of a node is a function of its symbol and the hashes of its
// children, with the symbol length-prefixed so that no two distinct
// symbol/child-hash splits can collide) and memoized on first
// computation, so repeated lookups in search's seen-completions map
// never re-traverse the tree.
func (t *Tree) Fingerprint() uint64 {
	if t.fpValid {
		return t.fp
	}
	h := fnv.New64a()
	if len(t.Children) == 0 {
		h.Write([]byte{leafPrefix})
	} else {
		h.Write([]byte{nodePrefix})
	}
	var lenBuf [8]byte
	putUint64(lenBuf[:], uint64(len(t.Symbol)))
	h.Write(lenBuf[:])
	h.Write([]byte(t.Symbol))
	for _, c := range t.Children {
		var buf [8]byte
		putUint64(buf[:], c.Fingerprint())
		h.Write(buf[:])
	}
	t.fp = h.Sum64()
	t.fpValid = true

	return t.fp
}

func putUint64(buf []byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}

// FingerprintKey renders Fingerprint as a map key string, for use as the
// seen-completions key in the MPT engine.
func FingerprintKey(t *Tree) string {
	return strconv.FormatUint(t.Fingerprint(), 16)
}
