// Package fusiond is the HTTP boundary the presentation layer calls into.
// Each request maps to exactly one core call (evaluate, optimize or sweep),
// runs to completion and returns; no state is kept between requests.
package fusiond

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fusionlab/fusion-core/pkg/config"
	"github.com/fusionlab/fusion-core/pkg/logger"
)

type HTTPServer struct {
	mux *http.ServeMux
	cfg *config.Config
}

func NewHTTPServer(cfg *config.Config) *HTTPServer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &HTTPServer{
		mux: http.NewServeMux(),
		cfg: cfg,
	}

	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.HandleFunc("/v1/defaults", s.handleDefaults)
	s.mux.HandleFunc("/v1/evaluate", s.handleEvaluate)
	s.mux.HandleFunc("/v1/optimize", s.handleOptimize)
	s.mux.HandleFunc("/v1/sweep", s.handleSweep)

	return s
}

func (s *HTTPServer) Handler() http.Handler {
	return s.mux
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleDefaults handles GET /v1/defaults: the slider presets the
// presentation layer initializes its widgets from.
func (s *HTTPServer) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := map[string]any{
		"point": map[string]any{
			"n":   s.cfg.Defaults.N,
			"t":   s.cfg.Defaults.T,
			"e":   s.cfg.Defaults.E,
			"tau": s.cfg.Defaults.Tau,
		},
	}
	if opt := s.cfg.Optimization; opt != nil {
		resp["optimization"] = map[string]any{
			"n":         map[string]any{"min": opt.N.Min, "max": opt.N.Max},
			"t":         map[string]any{"min": opt.T.Min, "max": opt.T.Max},
			"e":         map[string]any{"min": opt.E.Min, "max": opt.E.Max},
			"tau":       map[string]any{"min": opt.Tau.Min, "max": opt.Tau.Max},
			"steps":     opt.Steps,
			"max_steps": opt.MaxSteps,
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// Helper functions

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{
		"error": message,
	})
}
