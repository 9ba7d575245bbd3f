// Public domain.

package nemodel

import (
	"github.com/soniakeys/coord"
)

// Null is a stand-in model returning all-zero results.  It exists for
// build and documentation environments lacking the compiled NE2001
// programs and must never be used for science results.
type Null struct{}

func (Null) Solve(l, b float64, ndir int, dm, dist float32) (SolveResult, error) {
	return SolveResult{Limit: ' '}, nil
}

func (Null) Density(p coord.Cart) (DensityResult, error) {
	return DensityResult{}, nil
}
