package result

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mpt/context"
)

// Result is the record a search engine returns on success.
type Result struct {
	// Tree is the winning tree (an MPT, or a best-parse tree).
	Tree *context.Tree

	// Probability is P(Tree) for the MPT engine, or the single winning
	// run's probability for the best-parse engine.
	Probability float64

	// Insertions counts frontier pushes, populated for both engines since
	// it costs nothing extra and is equally useful for both.
	Insertions int64

	// Elapsed is the search loop's wall-clock duration, excluding parsing
	// and bound computation.
	Elapsed time.Duration
}

// String renders the result as "<tree> (p=<probability>, n=<insertions>,
// t=<elapsed>)", handy for CLI/log output.
func (r Result) String() string {
	return fmt.Sprintf("%s (p=%g, n=%d, t=%s)", r.Tree.String(), r.Probability, r.Insertions, r.Elapsed)
}
