package config

import (
	"fmt"
	"os"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return fmt.Errorf("invalid log_format: %s (must be json or text)", cfg.LogFormat)
	}

	if cfg.HTTP.Addr == "" {
		return fmt.Errorf("http addr cannot be empty")
	}

	if err := validatePoint(&cfg.Defaults); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if cfg.Optimization != nil {
		if err := validateOptimization(cfg.Optimization); err != nil {
			return fmt.Errorf("optimization validation failed: %w", err)
		}
	}

	return nil
}

// validatePoint validates the default parameter point
func validatePoint(p *Point) error {
	if p.N < 0 {
		return fmt.Errorf("n cannot be negative, got %g", p.N)
	}
	if p.T < 0 {
		return fmt.Errorf("t cannot be negative, got %g", p.T)
	}
	if p.E < 0 {
		return fmt.Errorf("e cannot be negative, got %g", p.E)
	}
	if p.Tau <= 0 {
		return fmt.Errorf("tau must be positive, got %g", p.Tau)
	}
	return nil
}

// validateOptimization validates the default grid search configuration
func validateOptimization(o *Optimization) error {
	bounds := []struct {
		name string
		b    Bounds
	}{
		{"n", o.N},
		{"t", o.T},
		{"e", o.E},
		{"tau", o.Tau},
	}
	for _, entry := range bounds {
		if entry.b.Max < entry.b.Min {
			return fmt.Errorf("%s bounds inverted: [%g, %g]", entry.name, entry.b.Min, entry.b.Max)
		}
	}
	if o.Tau.Min <= 0 {
		return fmt.Errorf("tau lower bound must be positive, got %g", o.Tau.Min)
	}

	if o.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", o.Steps)
	}
	if o.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", o.MaxSteps)
	}
	if o.Steps > o.MaxSteps {
		return fmt.Errorf("steps %d exceeds max_steps %d", o.Steps, o.MaxSteps)
	}
	return nil
}
