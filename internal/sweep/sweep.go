// Package sweep produces the plot data behind the parameter impact charts:
// one parameter is scaled by a multiplier over a fixed normalized range
// while the other three stay at their current values.
package sweep

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/fusionlab/fusion-core/internal/physics"
)

// The normalized multiplier domain. 100 samples over [0.1, 2.0] matches
// the chart resolution the presentation layer renders; the 0.1 lower bound
// also keeps a scaled tau away from zero for any valid base point.
const (
	MultiplierMin = 0.1
	MultiplierMax = 2.0
	Points        = 100
)

// Point is one sample of a sweep: the multiplier applied to the selected
// parameter and the resulting net energy output.
type Point struct {
	Multiplier float64 `json:"multiplier"`
	Output     float64 `json:"output"`
}

// Result is the eagerly materialized sweep, ordered by ascending
// multiplier. Downstream rendering needs the whole sequence at once, so
// there is no lazy variant.
type Result struct {
	Parameter Parameter
	Base      physics.ParameterPoint
	Points    []Point
}

// Run evaluates the objective at exactly Points multipliers equally spaced
// over [MultiplierMin, MultiplierMax], scaling the selected parameter of
// base by each multiplier and holding the rest fixed.
//
// The base point must itself be valid; the same tau != 0 policy applies to
// every scaled point, so a failed evaluation mid-sweep is reported rather
// than silently embedded as a NaN.
func Run(param Parameter, base physics.ParameterPoint) (Result, error) {
	if _, err := ParseParameter(string(param)); err != nil {
		return Result{}, err
	}
	if err := base.Validate(); err != nil {
		return Result{}, fmt.Errorf("sweep: invalid base point: %w", err)
	}

	multipliers := floats.Span(make([]float64, Points), MultiplierMin, MultiplierMax)

	result := Result{
		Parameter: param,
		Base:      base,
		Points:    make([]Point, 0, Points),
	}

	for _, m := range multipliers {
		output, err := physics.Evaluate(scale(param, base, m))
		if err != nil {
			return Result{}, fmt.Errorf("sweep: at multiplier %g: %w", m, err)
		}
		result.Points = append(result.Points, Point{Multiplier: m, Output: output})
	}

	return result, nil
}

// scale returns base with the selected parameter multiplied by m.
func scale(param Parameter, base physics.ParameterPoint, m float64) physics.ParameterPoint {
	switch param {
	case ParticleDensity:
		base.N *= m
	case Temperature:
		base.T *= m
	case EnergyRelease:
		base.E *= m
	case ConfinementTime:
		base.Tau *= m
	}
	return base
}
