package fusiond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fusionlab/fusion-core/internal/optimize"
	"github.com/fusionlab/fusion-core/internal/physics"
	"github.com/fusionlab/fusion-core/internal/report"
	"github.com/fusionlab/fusion-core/internal/sweep"
	"github.com/fusionlab/fusion-core/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleEvaluate handles POST /v1/evaluate
func (s *HTTPServer) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		N   float64 `json:"n"`
		T   float64 `json:"t"`
		E   float64 `json:"e"`
		Tau float64 `json:"tau"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	breakdown, err := physics.EvaluateBreakdown(physics.ParameterPoint{N: req.N, T: req.T, E: req.E, Tau: req.Tau})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, breakdown)
}

// axisRequest is one dimension of an optimization request: either an
// explicit sample list or (min, max) bounds discretized server-side.
type axisRequest struct {
	Values []float64 `json:"values,omitempty"`
	Min    *float64  `json:"min,omitempty"`
	Max    *float64  `json:"max,omitempty"`
	Steps  int       `json:"steps,omitempty"`
}

// resolve turns an axisRequest into the ordered sample sequence the
// optimizer iterates, enforcing the configured per-dimension cap.
func (s *HTTPServer) resolve(name string, axis axisRequest) ([]float64, error) {
	maxSteps := 200
	defaultSteps := 10
	if opt := s.cfg.Optimization; opt != nil {
		maxSteps = opt.MaxSteps
		defaultSteps = opt.Steps
	}

	if len(axis.Values) > 0 {
		if len(axis.Values) > maxSteps {
			return nil, fmt.Errorf("%s: %d samples exceeds limit of %d", name, len(axis.Values), maxSteps)
		}
		return axis.Values, nil
	}

	if axis.Min == nil || axis.Max == nil {
		return nil, fmt.Errorf("%s: either values or min and max are required", name)
	}
	steps := axis.Steps
	if steps == 0 {
		steps = defaultSteps
	}
	if steps > maxSteps {
		return nil, fmt.Errorf("%s: %d steps exceeds limit of %d", name, steps, maxSteps)
	}

	samples, err := optimize.Linspace(*axis.Min, *axis.Max, steps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return samples, nil
}

// handleOptimize handles POST /v1/optimize
func (s *HTTPServer) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		N   axisRequest `json:"n"`
		T   axisRequest `json:"t"`
		E   axisRequest `json:"e"`
		Tau axisRequest `json:"tau"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var grid optimize.Grid
	axes := []struct {
		name string
		axis axisRequest
		dst  *[]float64
	}{
		{"n", req.N, &grid.N},
		{"t", req.T, &grid.T},
		{"e", req.E, &grid.E},
		{"tau", req.Tau, &grid.Tau},
	}
	for _, a := range axes {
		samples, err := s.resolve(a.name, a.axis)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		*a.dst = samples
	}

	result, err := optimize.Search(grid)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	logger.Info("grid search completed", "evaluations", result.Evaluations, "output", result.Output)

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="optimization.xlsx"`)
		if err := report.WriteOptimization(w, grid, result); err != nil {
			logger.Error("failed to write optimization workbook", "error", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleSweep handles POST /v1/sweep
func (s *HTTPServer) handleSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Parameter string   `json:"parameter"`
		N         *float64 `json:"n,omitempty"`
		T         *float64 `json:"t,omitempty"`
		E         *float64 `json:"e,omitempty"`
		Tau       *float64 `json:"tau,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	param, err := sweep.ParseParameter(req.Parameter)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	// Fields left out of the request fall back to the configured defaults,
	// matching the impact-analysis page's preset point.
	base := physics.ParameterPoint{
		N:   s.cfg.Defaults.N,
		T:   s.cfg.Defaults.T,
		E:   s.cfg.Defaults.E,
		Tau: s.cfg.Defaults.Tau,
	}
	if req.N != nil {
		base.N = *req.N
	}
	if req.T != nil {
		base.T = *req.T
	}
	if req.E != nil {
		base.E = *req.E
	}
	if req.Tau != nil {
		base.Tau = *req.Tau
	}

	result, err := sweep.Run(param, base)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="sweep.xlsx"`)
		if err := report.WriteSweep(w, result); err != nil {
			logger.Error("failed to write sweep workbook", "error", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"parameter": result.Parameter,
		"label":     result.Parameter.Label(),
		"base":      result.Base,
		"points":    result.Points,
	})
}

// writeDomainError maps core errors to HTTP statuses: domain and input
// errors are the caller's to fix (400), anything else is a server fault.
func (s *HTTPServer) writeDomainError(w http.ResponseWriter, err error) {
	var unknownParam *sweep.UnknownParameterError
	switch {
	case errors.Is(err, physics.ErrInvalidConfinementTime),
		errors.Is(err, physics.ErrNegativeParameter),
		errors.Is(err, optimize.ErrEmptyRange),
		errors.Is(err, optimize.ErrInvalidSteps),
		errors.Is(err, optimize.ErrInvalidBounds),
		errors.Is(err, optimize.ErrNoFiniteOutput),
		errors.As(err, &unknownParam):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}
