package ptafile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/mpt/automaton"
)

// Parse reads the line-oriented PTA text format from r and returns the
// resulting *automaton.PTA. Every syntactic problem found (malformed
// line, unknown directive, unparseable weight, reserved character,
// cross-line arity mismatch) is collected and returned together, each
// tagged with its source line number; if no syntactic problem is found,
// the accumulated states, roots, and transitions are handed to
// automaton.Builder, whose own semantic validation (weight range,
// duplicate transitions) is the final check.
func Parse(r io.Reader) (*automaton.PTA, error) {
	b := automaton.NewBuilder()
	arity := make(map[automaton.Symbol]int)
	var errs *multierror.Error

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "root:"):
			if err := parseRoot(b, trimmed[len("root:"):]); err != nil {
				errs = multierror.Append(errs, &LineError{Line: lineNo, Text: raw, Err: err})
			}
		case strings.HasPrefix(trimmed, "transition:"):
			if err := parseTransition(b, arity, trimmed[len("transition:"):]); err != nil {
				errs = multierror.Append(errs, &LineError{Line: lineNo, Text: raw, Err: err})
			}
		default:
			errs = multierror.Append(errs, &LineError{Line: lineNo, Text: raw, Err: ErrUnknownDirective})
		}
	}
	if err := sc.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs != nil {
		if err := errs.ErrorOrNil(); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// parseRoot handles the text following "root:": "<state> # <weight>".
func parseRoot(b *automaton.Builder, rest string) error {
	state, weightStr, ok := splitHash(rest)
	if !ok {
		return ErrMalformedLine
	}
	if state == "" {
		return ErrMalformedLine
	}
	if automaton.ContainsReservedChar(state) {
		return ErrReservedChar
	}
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return ErrBadWeight
	}
	b.SetRoot(automaton.State(state), weight)

	return nil
}

// parseTransition handles the text following "transition:":
// "<q> -> <f>(<q1>, <q2>, ...) # <weight>".
func parseTransition(b *automaton.Builder, arity map[automaton.Symbol]int, rest string) error {
	content, weightStr, ok := splitHash(rest)
	if !ok {
		return ErrMalformedLine
	}

	q, f, childrenStr, ok := splitArrow(content)
	if !ok {
		return ErrMalformedLine
	}
	if automaton.ContainsReservedChar(q) {
		return ErrReservedChar
	}
	if automaton.ContainsReservedChar(f) {
		return ErrReservedChar
	}

	children, ok := splitChildren(childrenStr)
	if !ok {
		return ErrMalformedLine
	}
	for _, c := range children {
		if automaton.ContainsReservedChar(c) {
			return ErrReservedChar
		}
	}

	if prev, seen := arity[automaton.Symbol(f)]; seen && prev != len(children) {
		return ErrArityMismatch
	}
	arity[automaton.Symbol(f)] = len(children)

	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return ErrBadWeight
	}

	states := make([]automaton.State, len(children))
	for i, c := range children {
		states[i] = automaton.State(c)
	}
	b.AddTransition(automaton.State(q), automaton.Symbol(f), states, weight)

	return nil
}

// splitHash splits "<content> # <weight>" into its trimmed halves. The
// separating "#" is taken to be the last one on the line: a weight never
// contains "#", so any earlier "#" belongs to the content.
func splitHash(s string) (content, weight string, ok bool) {
	i := strings.LastIndex(s, "#")
	if i < 0 {
		return "", "", false
	}
	content = strings.TrimSpace(s[:i])
	weight = strings.TrimSpace(s[i+1:])
	if content == "" || weight == "" {
		return "", "", false
	}

	return content, weight, true
}

// splitArrow splits "<q> -> <f>(<children>)" (arrow "->" or "→") into
// its parts.
func splitArrow(s string) (state, symbol, children string, ok bool) {
	arrow := "->"
	i := strings.Index(s, arrow)
	if i < 0 {
		arrow = "→"
		i = strings.Index(s, arrow)
	}
	if i < 0 {
		return "", "", "", false
	}
	state = strings.TrimSpace(s[:i])
	rhs := strings.TrimSpace(s[i+len(arrow):])

	open := strings.Index(rhs, "(")
	if open < 0 || !strings.HasSuffix(rhs, ")") {
		return "", "", "", false
	}
	symbol = strings.TrimSpace(rhs[:open])
	children = rhs[open+1 : len(rhs)-1]
	if state == "" || symbol == "" {
		return "", "", "", false
	}

	return state, symbol, children, true
}

// splitChildren splits a comma-separated child list, returning an empty
// (non-nil-distinct) slice for a blank argument list, i.e. a leaf.
func splitChildren(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, false
		}
		out = append(out, p)
	}

	return out, true
}
