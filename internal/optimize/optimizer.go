// Package optimize implements the exhaustive grid search over the
// four-dimensional reactor parameter space.
//
// Exhaustiveness is the contract: every point in the Cartesian product of
// the four axes is evaluated, with no pruning, no early termination and no
// parallelism. Range sizes are tens of points per dimension, so the full
// product stays in the low thousands of evaluations and completes well
// under a second. The fixed nesting order (n, then T, then E, then tau)
// combined with a strict greater-than comparison makes tie-breaks
// deterministic: the lexicographically-first maximizing combination wins.
package optimize

import (
	"errors"
	"math"

	"github.com/fusionlab/fusion-core/internal/physics"
)

// ErrNoFiniteOutput indicates that no grid point produced a finite
// objective value, so there is no best point to report.
var ErrNoFiniteOutput = errors.New("optimize: no grid point produced a finite output")

// Result is the outcome of a grid search: the maximizing point, its net
// energy output, and how many points were evaluated. It is created fresh
// per call and holds no references back to the input grid.
type Result struct {
	Best        physics.ParameterPoint `json:"best"`
	Output      float64                `json:"output"`
	Evaluations int                    `json:"evaluations"`
}

// Search exhaustively evaluates the objective at every point of the grid
// and returns the point with the maximal finite output.
//
// Points that fail the domain check (a zero tau sample) or evaluate to a
// non-finite value are skipped; they never win the comparison. An empty
// axis or a grid with no finite output yields an error, never a fabricated
// best point.
func Search(grid Grid) (Result, error) {
	if err := grid.Validate(); err != nil {
		return Result{}, err
	}

	best := Result{Output: math.Inf(-1)}
	found := false

	for _, n := range grid.N {
		for _, temp := range grid.T {
			for _, e := range grid.E {
				for _, tau := range grid.Tau {
					best.Evaluations++

					point := physics.ParameterPoint{N: n, T: temp, E: e, Tau: tau}
					output, err := physics.Evaluate(point)
					if err != nil || math.IsNaN(output) || math.IsInf(output, 0) {
						continue
					}

					// Strict > keeps the first point seen among ties.
					// Any finite output beats the -Inf seed.
					if output > best.Output {
						best.Best = point
						best.Output = output
						found = true
					}
				}
			}
		}
	}

	if !found {
		return Result{}, ErrNoFiniteOutput
	}
	return best, nil
}
