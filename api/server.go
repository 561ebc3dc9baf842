// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine invocation,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"net/http"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		handler: NewHandler(),
		mux:     http.NewServeMux(),
		version: version,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /price", s.handler.HandlePrice)
	s.mux.HandleFunc("POST /display-price", s.handler.HandleDisplayPrice)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.handler.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.handler.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}
