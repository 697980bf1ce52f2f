// Package ptafile reads and writes the line-oriented PTA text format:
//
//	root: <state> # <weight>
//	transition: <q> -> <f>(<q1>, <q2>, ..., <qk>) # <weight>
//
// Arrows may be "->" or "→"; the child list is empty for leaves
// ("f()"); blank lines and lines whose first non-whitespace character is
// "#" are ignored. Parse reports MalformedLine, UnknownDirective,
// BadWeight (unparseable weight), ReservedChar, or ArityMismatch, each
// carrying the offending line number, before calling automaton.Builder's
// Build (whose own validation catches what line-level checks do not,
// e.g. duplicate transitions spanning lines or a weight outside (0,1]).
//
// Write serializes a PTA back to the same text format, so that the
// parse -> serialize -> parse round trip is a testable property of the
// module itself.
package ptafile
