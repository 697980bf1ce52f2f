// Package bestparse implements the best-parse (best single run) search
// engine: the same best-first skeleton as mpt, but a context's priority
// is built from the best-run value R[·] instead of the best-tree bound
// B[·], and there is no seen-completions accumulation — because a
// completed context's BaseW already is a specific run's probability,
// the first one popped is provably optimal and the search returns
// immediately.
package bestparse
