package optimize

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyRange indicates a grid axis with no sample values.
	ErrEmptyRange = errors.New("optimize: empty parameter range")

	// ErrInvalidSteps indicates a linspace request with fewer than one step.
	ErrInvalidSteps = errors.New("optimize: steps must be >= 1")

	// ErrInvalidBounds indicates a linspace request with max < min.
	ErrInvalidBounds = errors.New("optimize: max must be >= min")
)

// Grid is the Cartesian product of four discretized parameter ranges.
// Each axis is an ordered finite sequence of sample values supplied by the
// caller; the optimizer evaluates every combination.
type Grid struct {
	N   []float64
	T   []float64
	E   []float64
	Tau []float64
}

// Size returns the number of points in the grid.
func (g Grid) Size() int {
	return len(g.N) * len(g.T) * len(g.E) * len(g.Tau)
}

// Validate checks that every axis is non-empty.
func (g Grid) Validate() error {
	axes := []struct {
		name    string
		samples []float64
	}{
		{"n", g.N},
		{"T", g.T},
		{"E", g.E},
		{"tau", g.Tau},
	}
	for _, axis := range axes {
		if len(axis.samples) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyRange, axis.name)
		}
	}
	return nil
}

// Linspace returns steps equally spaced samples over [min, max] inclusive,
// the discretization the presentation layer applies to slider bounds.
// A single step collapses to [min].
func Linspace(min, max float64, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	if max < min {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, min, max)
	}
	if steps == 1 {
		return []float64{min}, nil
	}
	return floats.Span(make([]float64, steps), min, max), nil
}
