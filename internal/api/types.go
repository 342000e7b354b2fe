package api

import "github.com/julianknutsen/oddsight/internal/analysis"

// --- Request types ---

// HashRequest is the JSON body for POST /api/analyze and /api/recommend.
type HashRequest struct {
	Hash   string `json:"hash"`
	Target int    `json:"target,omitempty"` // analyze only; 0 = all targets
}

// DigestRequest is the JSON body for POST /api/digest.
type DigestRequest struct {
	Algo string `json:"algo,omitempty"`
	Text string `json:"text"`
}

// --- Response types ---

// TargetsResponse is the JSON response for GET /api/targets.
type TargetsResponse struct {
	Targets []int `json:"targets"`
}

// AnalyzeResponse is the JSON response for the analyze endpoints.
type AnalyzeResponse struct {
	Analysis *analysis.Analysis       `json:"analysis"`
	Scores   []analysis.TargetScore   `json:"scores"`
	Ranking  analysis.Ranking         `json:"ranking"`
	Best     *analysis.Recommendation `json:"best,omitempty"`
}

// RecommendResponse is the JSON response for POST /api/recommend.
type RecommendResponse struct {
	Ranking analysis.Ranking         `json:"ranking"`
	Best    *analysis.Recommendation `json:"best,omitempty"`
}

// DigestResponse is the JSON response for POST /api/digest.
type DigestResponse struct {
	Algo string `json:"algo"`
	Hash string `json:"hash"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func toAnalyzeResponse(r *analysis.Report) AnalyzeResponse {
	return AnalyzeResponse{
		Analysis: r.Analysis,
		Scores:   r.Scores,
		Ranking:  r.Ranking,
		Best:     best(r.Ranking),
	}
}

func toRecommendResponse(r *analysis.Report) RecommendResponse {
	return RecommendResponse{
		Ranking: r.Ranking,
		Best:    best(r.Ranking),
	}
}

func best(r analysis.Ranking) *analysis.Recommendation {
	b, ok := r.Best()
	if !ok {
		return nil
	}
	return &b
}
