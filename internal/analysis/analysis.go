// Package analysis scores a 128-character hex hash against a fixed set of
// target multipliers.
//
// The pipeline is Summarize → DetectPatterns → Confidence/Delay → Rank.
// Every step is a pure function of the hash (and target); nothing is cached
// or shared between calls. The weights are fixed constants reproduced for
// compatibility; they carry no statistical meaning.
package analysis

// Analysis is the derived summary and pattern flags of one hash.
type Analysis struct {
	Hash     Hash     `json:"hash" yaml:"hash"`
	Summary  `yaml:",inline"`
	Patterns Patterns `json:"patterns" yaml:"patterns"`
}

// Analyze computes the summary and pattern flags of h.
func Analyze(h Hash) *Analysis {
	return &Analysis{
		Hash:     h,
		Summary:  Summarize(h),
		Patterns: DetectPatterns(string(h)),
	}
}

// TargetScore is the confidence and delay of one target.
type TargetScore struct {
	Target     Target `json:"target" yaml:"target"`
	Confidence int    `json:"confidence" yaml:"confidence"`
	Delay      int    `json:"delay" yaml:"delay"`
}

// Report is everything computed for one hash.
type Report struct {
	Analysis *Analysis     `json:"analysis" yaml:"analysis"`
	Scores   []TargetScore `json:"scores" yaml:"scores"`
	Ranking  Ranking       `json:"ranking" yaml:"ranking"`
}

// Best returns the top-ranked recommendation.
func (r *Report) Best() Recommendation {
	best, _ := r.Ranking.Best()
	return best
}

// Score returns the confidence and delay computed for t.
func (r *Report) Score(t Target) (TargetScore, bool) {
	for _, s := range r.Scores {
		if s.Target == t {
			return s, true
		}
	}
	return TargetScore{}, false
}

// Evaluate validates raw and, only if it is a valid hash, runs the full
// pipeline. Invalid input yields an error wrapping ErrInvalidHash.
func Evaluate(raw string) (*Report, error) {
	return Selector{}.Evaluate(raw)
}

// Evaluate is Evaluate using the selector's estimators.
func (s Selector) Evaluate(raw string) (*Report, error) {
	h, err := ParseHash(raw)
	if err != nil {
		return nil, err
	}
	return s.Report(Analyze(h)), nil
}

// Report builds the per-target scores and ranking for a.
func (s Selector) Report(a *Analysis) *Report {
	ranking := s.Rank(a)
	scores := make([]TargetScore, 0, len(targets))
	for _, t := range targets {
		rec, _ := ranking.Find(t)
		scores = append(scores, TargetScore{Target: t, Confidence: rec.Confidence, Delay: rec.Delay})
	}
	return &Report{Analysis: a, Scores: scores, Ranking: ranking}
}
