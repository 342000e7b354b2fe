package api

import (
	"net/http"

	"github.com/julianknutsen/oddsight/internal/analysis"
	"github.com/julianknutsen/oddsight/internal/digest"
	"github.com/julianknutsen/oddsight/internal/report"
)

func (s *Server) handleTargets(w http.ResponseWriter, _ *http.Request) {
	ts := analysis.Targets()
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = int(t)
	}
	writeJSON(w, http.StatusOK, TargetsResponse{Targets: out})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req HashRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	s.analyze(w, req.Hash, req.Target)
}

func (s *Server) handleAnalyzeGet(w http.ResponseWriter, r *http.Request) {
	target := 0
	if v := r.URL.Query().Get("target"); v != "" {
		t, err := analysis.ParseTarget(v)
		if err != nil {
			writeEvalError(w, err)
			return
		}
		target = int(t)
	}
	s.analyze(w, r.PathValue("hash"), target)
}

func (s *Server) analyze(w http.ResponseWriter, hash string, target int) {
	rep, err := s.selector.Evaluate(hash)
	if err != nil {
		writeEvalError(w, err)
		return
	}
	if target != 0 {
		rep, err = report.Restrict(rep, analysis.Target(target))
		if err != nil {
			writeEvalError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, toAnalyzeResponse(rep))
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req HashRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	rep, err := s.selector.Evaluate(req.Hash)
	if err != nil {
		writeEvalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecommendResponse(rep))
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	var req DigestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	algo := req.Algo
	if algo == "" {
		algo = digest.Default
	}
	sum, err := digest.Sum(algo, []byte(req.Text))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, DigestResponse{Algo: algo, Hash: sum})
}
