package physics

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		point    ParameterPoint
		expected float64
	}{
		{
			name:     "reference ITER-like point",
			point:    ParameterPoint{N: 1e20, T: 15000, E: 17.6, Tau: 0.1},
			expected: 1.14e25, // 2.64e25 - 1.5e25
		},
		{
			name:     "unit inputs",
			point:    ParameterPoint{N: 1, T: 1, E: 1, Tau: 1},
			expected: 0, // 1*1*1 - 1*1/1
		},
		{
			name:     "loss dominates",
			point:    ParameterPoint{N: 2, T: 3, E: 1, Tau: 0.25},
			expected: 6 - 24,
		},
		{
			name:     "zero density",
			point:    ParameterPoint{N: 0, T: 15000, E: 17.6, Tau: 0.1},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.point)
			if err != nil {
				t.Fatalf("Evaluate(%v) returned error: %v", tt.point, err)
			}
			want := tt.point.N*tt.point.T*tt.point.E - tt.point.N*tt.point.T/tt.point.Tau
			if got != want {
				t.Errorf("Evaluate(%v) = %g, expected %g (exact formula)", tt.point, got, want)
			}
			if tt.expected != 0 && math.Abs(got-tt.expected)/math.Abs(tt.expected) > 1e-12 {
				t.Errorf("Evaluate(%v) = %g, expected %g", tt.point, got, tt.expected)
			}
		})
	}
}

func TestEvaluateRejectsZeroTau(t *testing.T) {
	_, err := Evaluate(ParameterPoint{N: 1e20, T: 15000, E: 17.6, Tau: 0})
	if !errors.Is(err, ErrInvalidConfinementTime) {
		t.Fatalf("expected ErrInvalidConfinementTime, got %v", err)
	}
}

func TestEvaluateRejectsNegativeParameters(t *testing.T) {
	tests := []struct {
		name  string
		point ParameterPoint
		want  error
	}{
		{"negative density", ParameterPoint{N: -1, T: 1, E: 1, Tau: 1}, ErrNegativeParameter},
		{"negative temperature", ParameterPoint{N: 1, T: -1, E: 1, Tau: 1}, ErrNegativeParameter},
		{"negative energy release", ParameterPoint{N: 1, T: 1, E: -1, Tau: 1}, ErrNegativeParameter},
		{"negative confinement time", ParameterPoint{N: 1, T: 1, E: 1, Tau: -0.1}, ErrInvalidConfinementTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.point); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEvaluateBreakdown(t *testing.T) {
	p := ParameterPoint{N: 1e20, T: 15000, E: 17.6, Tau: 0.1}

	b, err := EvaluateBreakdown(p)
	if err != nil {
		t.Fatalf("EvaluateBreakdown returned error: %v", err)
	}

	if b.Reactivity != 1e20*15000 {
		t.Errorf("Reactivity = %g, expected %g", b.Reactivity, 1e20*15000.0)
	}
	if b.ReactionRate != 1e20*15000*17.6 {
		t.Errorf("ReactionRate = %g, expected %g", b.ReactionRate, 1e20*15000*17.6)
	}
	if b.EnergyLoss != 1e20*15000/0.1 {
		t.Errorf("EnergyLoss = %g, expected %g", b.EnergyLoss, 1e20*15000/0.1)
	}
	if b.NetOutput != b.ReactionRate-b.EnergyLoss {
		t.Errorf("NetOutput = %g, expected ReactionRate-EnergyLoss = %g",
			b.NetOutput, b.ReactionRate-b.EnergyLoss)
	}

	// Breakdown and Evaluate agree bit-for-bit
	v, err := Evaluate(p)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if v != b.NetOutput {
		t.Errorf("Evaluate = %g, EvaluateBreakdown.NetOutput = %g", v, b.NetOutput)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	p := ParameterPoint{N: 3.7e20, T: 9841.5, E: 18.25, Tau: 0.0625}

	first, err := Evaluate(p)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	second, err := Evaluate(p)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if math.Float64bits(first) != math.Float64bits(second) {
		t.Errorf("repeated evaluation not bit-identical: %g vs %g", first, second)
	}
}
