// Package server exposes the solve pipeline over HTTP.
//
// The server loads the dictionary once at startup and solves each
// posted board against it. Routes:
//
//	GET  /healthz          - liveness probe with dictionary stats
//	POST /api/v1/solve     - solve a board
//
// The solve endpoint accepts arbitrary rectangular boards; the 4x4
// restriction applies only to the CLI's positional-argument interface.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/LGimbel/boggle-solver/pkg/errors"
	"github.com/LGimbel/boggle-solver/pkg/pipeline"
)

// Server handles solve requests against a preloaded dictionary.
type Server struct {
	runner *pipeline.Runner
	dict   *pipeline.Dict
	logger *log.Logger
	router chi.Router
}

// New creates a server around a runner and a loaded dictionary.
func New(runner *pipeline.Runner, dict *pipeline.Dict, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		dict:   dict,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
	})
	s.router = r

	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// solveRequest is the body of POST /api/v1/solve.
type solveRequest struct {
	Rows    []string `json:"rows"`
	Refresh bool     `json:"refresh,omitempty"`
}

// errorResponse is the body of any non-2xx response.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	result, err := s.runner.SolveBoard(r.Context(), s.dict, req.Rows, req.Refresh)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"dict_words": s.dict.Trie.Len(),
	})
}

// writeError maps structured error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidBoard, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeWordNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeDictionaryNotFound:
		status = http.StatusServiceUnavailable
	}

	s.logger.Warn("request failed",
		"request_id", getRequestID(r.Context()),
		"status", status,
		"err", err)

	s.writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
