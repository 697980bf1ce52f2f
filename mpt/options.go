package mpt

import "github.com/katalvlaran/mpt/inside"

// Option configures Search, following the functional-options pattern
// dijkstra.Option uses.
type Option func(*config)

type config struct {
	tolerance float64
}

func defaultConfig() config {
	return config{tolerance: inside.Tolerance}
}

// WithTolerance overrides the absolute tolerance used to decide whether a
// popped priority merely ties the current best (and so must still be
// drained before stopping) rather than falling strictly below it.
// Default is inside.Tolerance (1e-12).
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}
