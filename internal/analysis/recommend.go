package analysis

import "sort"

// Recommendation is the scored outcome for one target.
type Recommendation struct {
	Target            Target  `json:"target" yaml:"target"`
	Confidence        int     `json:"confidence" yaml:"confidence"`
	Delay             int     `json:"delay" yaml:"delay"`
	SafetyScore       int     `json:"safety_score" yaml:"safety_score"`
	RiskAdjustedScore float64 `json:"risk_adjusted_score" yaml:"risk_adjusted_score"`
	SuccessRate       int     `json:"success_rate" yaml:"success_rate"`
}

// Ranking is the set of recommendations ordered best first.
type Ranking []Recommendation

// Best returns the top recommendation. ok is false for an empty ranking.
func (r Ranking) Best() (best Recommendation, ok bool) {
	if len(r) == 0 {
		return Recommendation{}, false
	}
	return r[0], true
}

// Find returns the recommendation for t.
func (r Ranking) Find(t Target) (Recommendation, bool) {
	for _, rec := range r {
		if rec.Target == t {
			return rec, true
		}
	}
	return Recommendation{}, false
}

// Selector ranks targets. Confidence and Delay default to the package
// estimators when nil.
type Selector struct {
	Confidence func(a *Analysis, t Target) int
	Delay      func(a *Analysis, t Target) int
}

// Recommend scores a single target.
func (s Selector) Recommend(a *Analysis, t Target) Recommendation {
	confidenceFn, delayFn := s.Confidence, s.Delay
	if confidenceFn == nil {
		confidenceFn = Confidence
	}
	if delayFn == nil {
		delayFn = Delay
	}

	conf := confidenceFn(a, t)

	safety := 100 - float64(t)*0.8
	if a.Patterns.TripleRepeat {
		safety += 5
	}
	if a.Patterns.TailPattern {
		safety += 8
	}
	if a.Variance > 6.5 {
		safety += 5
	}
	// The conversions stop the compiler fusing multiply-adds, which would
	// change the rounding of these products.
	safety += float64(float64(conf-50) * 0.4)
	safetyScore := clamp(roundHalfUp(safety), 5, 100)

	return Recommendation{
		Target:            t,
		Confidence:        conf,
		Delay:             delayFn(a, t),
		SafetyScore:       safetyScore,
		RiskAdjustedScore: float64(float64(safetyScore)*0.4) + float64(float64(conf)*0.6),
		SuccessRate:       clamp(roundHalfUp(float64(conf)*0.88), 10, 95),
	}
}

// Rank scores every supported target and orders them by risk-adjusted
// score, highest first. Ties keep enumeration order.
func (s Selector) Rank(a *Analysis) Ranking {
	ranking := make(Ranking, 0, len(targets))
	for _, t := range targets {
		ranking = append(ranking, s.Recommend(a, t))
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].RiskAdjustedScore > ranking[j].RiskAdjustedScore
	})
	return ranking
}

// Recommend scores t with the default estimators.
func Recommend(a *Analysis, t Target) Recommendation {
	return Selector{}.Recommend(a, t)
}

// Rank ranks all targets with the default estimators.
func Rank(a *Analysis) Ranking {
	return Selector{}.Rank(a)
}
