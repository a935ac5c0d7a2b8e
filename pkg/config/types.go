package config

// Config represents the fusiond daemon configuration
type Config struct {
	LogLevel     string        `yaml:"log_level"`
	LogFormat    string        `yaml:"log_format"` // json or text
	HTTP         HTTP          `yaml:"http"`
	Defaults     Point         `yaml:"defaults"`
	Optimization *Optimization `yaml:"optimization,omitempty"`
}

// HTTP represents the HTTP listener configuration
type HTTP struct {
	Addr string `yaml:"addr"`
}

// Point represents a reactor parameter point
type Point struct {
	N   float64 `yaml:"n"`
	T   float64 `yaml:"t"`
	E   float64 `yaml:"e"`
	Tau float64 `yaml:"tau"`
}

// Bounds represents an inclusive [Min, Max] interval for one parameter
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Optimization represents the default grid search ranges and limits
type Optimization struct {
	N        Bounds `yaml:"n"`
	T        Bounds `yaml:"t"`
	E        Bounds `yaml:"e"`
	Tau      Bounds `yaml:"tau"`
	Steps    int    `yaml:"steps"`     // samples per dimension
	MaxSteps int    `yaml:"max_steps"` // cap on caller-requested samples per dimension
}

// DefaultConfig returns the configuration fusiond starts with when no file
// is supplied. The defaults mirror the simulator's slider presets.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "json",
		HTTP:      HTTP{Addr: ":8080"},
		Defaults:  Point{N: 1e20, T: 15000, E: 17.6, Tau: 0.1},
		Optimization: &Optimization{
			N:        Bounds{Min: 1e20, Max: 5e20},
			T:        Bounds{Min: 5000, Max: 15000},
			E:        Bounds{Min: 15, Max: 20},
			Tau:      Bounds{Min: 0.05, Max: 0.2},
			Steps:    10,
			MaxSteps: 200,
		},
	}
}
