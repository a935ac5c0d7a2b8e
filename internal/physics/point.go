package physics

import (
	"errors"
	"fmt"
)

// Domain errors for objective evaluation.
var (
	// ErrInvalidConfinementTime indicates tau == 0 (division by zero) or tau < 0.
	ErrInvalidConfinementTime = errors.New("physics: invalid confinement time")

	// ErrNegativeParameter indicates a parameter below its physical lower bound.
	ErrNegativeParameter = errors.New("physics: parameter cannot be negative")
)

// ParameterPoint is the 4-tuple of reactor parameters at which the net
// energy output is evaluated. Units are the caller's responsibility; in
// particular the particle density is expected pre-scaled (e.g. 1e20).
type ParameterPoint struct {
	// N is the particle density.
	N float64 `json:"n"`
	// T is the plasma temperature.
	T float64 `json:"t"`
	// E is the energy release per reaction.
	E float64 `json:"e"`
	// Tau is the energy confinement time. It is a divisor and must be nonzero.
	Tau float64 `json:"tau"`
}

// Validate checks the point against the model's domain: n, T, E >= 0 and
// tau > 0. A zero tau is rejected here so that division by zero can never
// reach the objective formula.
func (p ParameterPoint) Validate() error {
	if p.N < 0 {
		return fmt.Errorf("%w: n = %g", ErrNegativeParameter, p.N)
	}
	if p.T < 0 {
		return fmt.Errorf("%w: T = %g", ErrNegativeParameter, p.T)
	}
	if p.E < 0 {
		return fmt.Errorf("%w: E = %g", ErrNegativeParameter, p.E)
	}
	if p.Tau <= 0 {
		return fmt.Errorf("%w: tau = %g (must be > 0)", ErrInvalidConfinementTime, p.Tau)
	}
	return nil
}

func (p ParameterPoint) String() string {
	return fmt.Sprintf("{n=%g T=%g E=%g tau=%g}", p.N, p.T, p.E, p.Tau)
}
