// Package api provides the HTTP JSON server for hash analysis.
//
// It exposes the analysis pipeline as stateless endpoints: every request
// carries its hash and nothing is kept between requests.
package api

import (
	"net/http"

	"github.com/julianknutsen/oddsight/internal/analysis"
)

// Server is the HTTP API server.
type Server struct {
	selector analysis.Selector
	mux      *http.ServeMux
}

// New creates a Server scoring with sel. The zero Selector uses the
// package estimators.
func New(sel analysis.Selector) *Server {
	s := &Server{
		selector: sel,
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
