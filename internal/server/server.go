// Package server exposes the solver over HTTP for batch use: one POST with
// a problem, one JSON response with the plan.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sliceforge/cakecut/internal/engine"
	"github.com/sliceforge/cakecut/internal/model"
)

// SolveRequest is the JSON body of a solve call. Settings are optional;
// omitted knobs take the server's defaults.
type SolveRequest struct {
	CakeWidth  float64         `json:"cake_width"`
	CakeLength float64         `json:"cake_length"`
	Tolerance  float64         `json:"tolerance"`
	Requests   []float64       `json:"requests"`
	Settings   *model.Settings `json:"settings,omitempty"`
}

// SolveResponse wraps the solution for transport.
type SolveResponse struct {
	Solution *model.Solution `json:"solution"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the solve API with a fixed set of default settings.
type Server struct {
	defaults model.Settings
}

func New(defaults model.Settings) *Server {
	return &Server{defaults: defaults}
}

// Router builds the chi router with logging and panic recovery.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/solve", s.handleSolve)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	settings := s.defaults
	if req.Settings != nil {
		settings = *req.Settings
	}

	solver, err := engine.NewSolver(req.Requests, req.CakeWidth, req.CakeLength, req.Tolerance, settings)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	solution, err := solver.Solve()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{Solution: solution})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
