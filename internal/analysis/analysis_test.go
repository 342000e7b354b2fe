package analysis

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

func mustHash(t *testing.T, s string) Hash {
	t.Helper()
	h, err := ParseHash(s)
	require.NoError(t, err)
	return h
}

func TestParseHash_Valid(t *testing.T) {
	t.Parallel()
	raw := sha512Hex("hello")
	h, err := ParseHash("  " + raw + "\n")
	require.NoError(t, err)
	assert.Equal(t, raw, h.String())
}

func TestParseHash_Rejects(t *testing.T) {
	t.Parallel()
	valid := sha512Hex("hello")
	cases := map[string]string{
		"empty":     "",
		"blank":     "   ",
		"short":     valid[:127],
		"long":      valid + "0",
		"non-hex":   "g" + valid[1:],
		"uppercase": strings.ToUpper(valid),
		"inner-ws":  valid[:64] + " " + valid[65:],
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseHash(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHash), "error %v should wrap ErrInvalidHash", err)
		})
	}
}

func TestParseHash_MessageNamesLength(t *testing.T) {
	t.Parallel()
	_, err := ParseHash(strings.Repeat("a", 127))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 127")
}

func TestEvaluate_InvalidInputComputesNothing(t *testing.T) {
	t.Parallel()
	for _, in := range []string{strings.Repeat("a", 127), strings.Repeat("g", 128)} {
		r, err := Evaluate(in)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, ErrInvalidHash)
	}
}

func TestEvaluate_InvalidInputSkipsEstimators(t *testing.T) {
	t.Parallel()
	called := false
	sel := Selector{
		Confidence: func(*Analysis, Target) int { called = true; return 50 },
		Delay:      func(*Analysis, Target) int { called = true; return 0 },
	}
	_, err := sel.Evaluate(strings.Repeat("a", 127))
	require.ErrorIs(t, err, ErrInvalidHash)
	assert.False(t, called, "estimators must not run for invalid input")
}

func TestEvaluate_Hello(t *testing.T) {
	t.Parallel()
	r, err := Evaluate(sha512Hex("hello"))
	require.NoError(t, err)

	a := r.Analysis
	assert.Equal(t, 53, a.Score)
	assert.Equal(t, 1014, a.Checksum)
	assert.Equal(t, 3.8829248681558814, a.Entropy)
	assert.InDelta(t, 19.618896484375, a.Variance, 1e-12)
	assert.Equal(t, Patterns{DoubleRepeat: true, SequentialAsc: true}, a.Patterns)

	want := []TargetScore{
		{Target2, 89, 150},
		{Target3, 89, 195},
		{Target4, 98, 250},
		{Target7, 90, 400},
		{Target10, 88, 575},
		{Target100, 91, 5200},
	}
	assert.Equal(t, want, r.Scores)

	var order []Target
	for _, rec := range r.Ranking {
		order = append(order, rec.Target)
	}
	// 2 and 3 tie at 93.4 and keep enumeration order.
	assert.Equal(t, []Target{Target4, Target7, Target2, Target3, Target10, Target100}, order)

	best := r.Best()
	assert.Equal(t, Recommendation{
		Target:            Target4,
		Confidence:        98,
		Delay:             250,
		SafetyScore:       100,
		RiskAdjustedScore: 98.8,
		SuccessRate:       86,
	}, best)

	last := r.Ranking[len(r.Ranking)-1]
	assert.Equal(t, 41, last.SafetyScore)
	assert.Equal(t, 80, last.SuccessRate)
}

func TestEvaluate_NoPatterns(t *testing.T) {
	t.Parallel()
	r, err := Evaluate(sha512Hex("oddsight"))
	require.NoError(t, err)

	assert.Equal(t, 43, r.Analysis.Score)
	assert.Equal(t, 926, r.Analysis.Checksum)
	assert.Zero(t, r.Analysis.Patterns.Count())

	want := []TargetScore{
		{Target2, 79, 115},
		{Target3, 79, 160},
		{Target4, 71, 215},
		{Target7, 80, 365},
		{Target10, 78, 540},
		{Target100, 81, 5165},
	}
	assert.Equal(t, want, r.Scores)
	assert.Equal(t, Target7, r.Best().Target)
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()
	in := sha512Hex("determinism")
	first, err := Evaluate(in)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Evaluate(in)
		require.NoError(t, err)
		require.Equal(t, first, again, "evaluation %d", i)
	}

	a := Analyze(mustHash(t, in))
	for _, tgt := range Targets() {
		assert.Equal(t, Confidence(a, tgt), Confidence(a, tgt))
		assert.Equal(t, Delay(a, tgt), Delay(a, tgt))
	}
}

func TestBounds_AllTargets(t *testing.T) {
	t.Parallel()
	inputs := []string{
		strings.Repeat("0", 128),
		strings.Repeat("f", 128),
		strings.Repeat("0123456789abcdef", 8),
		strings.Repeat("fedcba9876543210", 8),
		strings.Repeat("a", 124) + "0000",
	}
	for i := 0; i < 200; i++ {
		inputs = append(inputs, sha512Hex(strings.Repeat("x", i)))
	}
	for _, in := range inputs {
		a := Analyze(mustHash(t, in))
		for _, tgt := range Targets() {
			c := Confidence(a, tgt)
			assert.GreaterOrEqual(t, c, MinConfidence, "confidence(%s, %s)", in, tgt)
			assert.LessOrEqual(t, c, MaxConfidence, "confidence(%s, %s)", in, tgt)
			assert.GreaterOrEqual(t, Delay(a, tgt), MinDelay(tgt), "delay(%s, %s)", in, tgt)

			rec := Recommend(a, tgt)
			assert.GreaterOrEqual(t, rec.SafetyScore, 5)
			assert.LessOrEqual(t, rec.SafetyScore, 100)
			assert.GreaterOrEqual(t, rec.SuccessRate, 10)
			assert.LessOrEqual(t, rec.SuccessRate, 95)
		}
	}
}

func TestRank_TargetWinsWhenItsRulesDominate(t *testing.T) {
	t.Parallel()
	a := Analyze(mustHash(t, sha512Hex("hello")))
	sel := Selector{
		Confidence: func(_ *Analysis, tgt Target) int {
			if tgt == Target100 {
				return MaxConfidence
			}
			return MinConfidence
		},
	}
	ranking := sel.Rank(a)
	best, ok := ranking.Best()
	require.True(t, ok)
	assert.Equal(t, Target100, best.Target)
	assert.Len(t, ranking, len(Targets()))
}

func TestRank_StableOnTies(t *testing.T) {
	t.Parallel()
	a := Analyze(mustHash(t, strings.Repeat("a", 128)))
	sel := Selector{
		Confidence: func(*Analysis, Target) int { return 50 },
		Delay:      func(*Analysis, Target) int { return 0 },
	}
	// Safety clamps to 100 for 2..10, so those five tie and keep enumeration order.
	ranking := sel.Rank(a)
	for i, tgt := range Targets() {
		assert.Equal(t, tgt, ranking[i].Target)
	}
}

func TestRanking_BestEmpty(t *testing.T) {
	t.Parallel()
	_, ok := Ranking(nil).Best()
	assert.False(t, ok)
}
