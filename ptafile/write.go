package ptafile

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mpt/automaton"
)

// Write serializes p back to the text format Parse reads, in a
// deterministic order (roots then transitions, both sorted by state)
// so that two structurally-equal automata always produce byte-identical
// output.
func Write(w io.Writer, p *automaton.PTA) error {
	var b strings.Builder

	for _, q := range p.Roots() {
		b.WriteString("root: ")
		b.WriteString(string(q))
		b.WriteString(" # ")
		b.WriteString(formatWeight(p.RootWeight(q)))
		b.WriteByte('\n')
	}

	for _, q := range p.States() {
		for _, t := range p.TransitionsToSorted(q) {
			b.WriteString("transition: ")
			b.WriteString(string(q))
			b.WriteString(" -> ")
			b.WriteString(string(t.Symbol))
			b.WriteByte('(')
			for i, c := range t.Children {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(string(c))
			}
			b.WriteString(") # ")
			b.WriteString(formatWeight(t.Prob))
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'g', -1, 64)
}
