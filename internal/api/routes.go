package api

// registerRoutes wires all API endpoints onto the server mux.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/targets", s.handleTargets)
	s.mux.HandleFunc("GET /api/analyze/{hash}", s.handleAnalyzeGet)
	s.mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("POST /api/recommend", s.handleRecommend)
	s.mux.HandleFunc("POST /api/digest", s.handleDigest)
}
