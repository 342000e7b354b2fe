package analysis

// Confidence bounds.
const (
	MinConfidence = 5
	MaxConfidence = 98

	baseConfidence = 50
)

// rule adds bonus when its predicate holds.
type rule struct {
	when  func(a *Analysis) bool
	bonus int
}

func always(*Analysis) bool { return true }

func entropyBetween(lo, hi float64) func(*Analysis) bool {
	return func(a *Analysis) bool { return a.Entropy > lo && a.Entropy < hi }
}

func scoreWithin(lo, hi int) func(*Analysis) bool {
	return func(a *Analysis) bool { return a.Score >= lo && a.Score <= hi }
}

// confidenceRules holds the per-target confidence bonuses. The constants are
// fitted values with no underlying formula.
var confidenceRules = map[Target][]rule{
	Target2: {
		{always, 8},
		{entropyBetween(4.0, 4.3), 7},
		{scoreWithin(30, 60), 5},
	},
	Target3: {
		{always, 7},
		{entropyBetween(4.1, 4.4), 8},
		{scoreWithin(40, 70), 6},
	},
	Target4: {
		{always, 5},
		{entropyBetween(3.91, 3.97), 12},
		{scoreWithin(45, 80), 10},
		{func(a *Analysis) bool { return a.Patterns.DoubleRepeat && !a.Patterns.TripleRepeat }, 8},
	},
	Target7: {
		{always, 6},
		{entropyBetween(4.1, 4.4), 15},
		{scoreWithin(55, 90), 10},
		{func(a *Analysis) bool { return a.Variance > 6.0 }, 8},
	},
	Target10: {
		{always, 12},
		{entropyBetween(4.25, 4.5), 18},
		{scoreWithin(60, 100), 12},
		{func(a *Analysis) bool { return a.Patterns.TailPattern || a.Patterns.HeadPattern }, 10},
		{func(a *Analysis) bool { return a.Checksum%100 == 0 }, 8},
	},
	Target100: {
		{always, 15},
		{func(a *Analysis) bool { return a.Entropy > 4.4 }, 20},
		{func(a *Analysis) bool { return a.Patterns.TripleRepeat && a.Patterns.DoubleRepeat }, 15},
		{func(a *Analysis) bool { return a.Patterns.TailPattern && a.Patterns.HeadPattern }, 20},
		{func(a *Analysis) bool { return a.Checksum%128 == 0 }, 15},
		{scoreWithin(80, 120), 10},
	},
}

// Confidence maps the analysis of a hash and a target to a score in
// [MinConfidence, MaxConfidence].
func Confidence(a *Analysis, t Target) int {
	c := baseConfidence

	switch e := a.Entropy; {
	case e > 4.5:
		c += 20
	case e > 4.2:
		c += 12
	case e > 3.9:
		c += 8
	case e < 3.5:
		c -= 10
	}

	if a.Score%11 == 0 {
		c += 12
	}
	if a.Score%7 == 0 {
		c += 8
	}
	if a.Score%5 == 0 {
		c += 5
	}
	if a.Score%3 == 0 {
		c += 3
	}

	p := a.Patterns
	if p.TripleRepeat {
		c += 15
	}
	if p.DoubleRepeat {
		c += 10
	}
	if p.Sequential() {
		c += 8
	}
	if p.TailPattern {
		c += 18
	}
	if p.HeadPattern {
		c += 12
	}
	if p.Palindrome {
		c += 10
	}

	switch {
	case a.Variance > 6.5:
		c += 8
	case a.Variance < 4.0:
		c -= 5
	}

	switch {
	case a.Checksum%128 == 0:
		c += 15
	case a.Checksum%64 == 0:
		c += 10
	case a.Checksum%32 == 0:
		c += 5
	}

	for _, r := range confidenceRules[t] {
		if r.when(a) {
			c += r.bonus
		}
	}

	return clamp(c, MinConfidence, MaxConfidence)
}
