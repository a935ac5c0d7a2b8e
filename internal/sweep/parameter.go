package sweep

// Parameter selects which of the four reactor parameters a sweep varies.
type Parameter string

const (
	// ParticleDensity varies n.
	ParticleDensity Parameter = "particle_density"
	// Temperature varies T.
	Temperature Parameter = "temperature"
	// EnergyRelease varies E.
	EnergyRelease Parameter = "energy_release"
	// ConfinementTime varies tau.
	ConfinementTime Parameter = "confinement_time"
)

// ParseParameter resolves a selector string to one of the four recognized
// parameters. Anything else is rejected with a typed error; there is no
// fallback variant.
func ParseParameter(s string) (Parameter, error) {
	switch Parameter(s) {
	case ParticleDensity, Temperature, EnergyRelease, ConfinementTime:
		return Parameter(s), nil
	default:
		return "", &UnknownParameterError{Selector: s}
	}
}

// Label returns the human-readable axis label for chart rendering.
func (p Parameter) Label() string {
	switch p {
	case ParticleDensity:
		return "Particle Density Multiplier"
	case Temperature:
		return "Temperature Multiplier"
	case EnergyRelease:
		return "Energy Release Multiplier"
	case ConfinementTime:
		return "Confinement Time Multiplier"
	default:
		return string(p)
	}
}

// UnknownParameterError indicates a selector outside the four recognized
// sweep parameters.
type UnknownParameterError struct {
	Selector string
}

func (e *UnknownParameterError) Error() string {
	return "sweep: unknown parameter selector: " + e.Selector
}
