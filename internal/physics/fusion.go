// Package physics holds the net-energy-output model shared by the grid
// search optimizer and the parametric sweep generator.
//
// The model is the single-formula Lawson-style balance
//
//	net = n*T*E - n*T/tau
//
// where n*T is the reactivity, n*T*E the reaction rate and n*T/tau the
// confinement loss. Evaluation is pure and O(1); the only domain
// restriction is tau != 0, which is rejected up front rather than allowed
// to propagate an infinity into downstream comparisons.
package physics

// Breakdown carries the intermediate terms of an evaluation alongside the
// net output, for callers that display them individually.
type Breakdown struct {
	Reactivity   float64 `json:"reactivity"`
	ReactionRate float64 `json:"reaction_rate"`
	EnergyLoss   float64 `json:"energy_loss"`
	NetOutput    float64 `json:"net_energy_output"`
}

// Evaluate computes the net energy output at p.
// It returns a domain error if p fails Validate; it never returns NaN or
// an infinity for an invalid tau.
func Evaluate(p ParameterPoint) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return evaluate(p), nil
}

// EvaluateBreakdown is Evaluate with the intermediate terms retained.
func EvaluateBreakdown(p ParameterPoint) (Breakdown, error) {
	if err := p.Validate(); err != nil {
		return Breakdown{}, err
	}

	reactivity := p.N * p.T
	reactionRate := reactivity * p.E
	energyLoss := reactivity / p.Tau

	return Breakdown{
		Reactivity:   reactivity,
		ReactionRate: reactionRate,
		EnergyLoss:   energyLoss,
		NetOutput:    reactionRate - energyLoss,
	}, nil
}

// evaluate is the unguarded formula; callers go through Evaluate.
func evaluate(p ParameterPoint) float64 {
	reactivity := p.N * p.T
	return reactivity*p.E - reactivity/p.Tau
}
