package analysis

import (
	"math"
	"strings"
	"testing"
)

func TestEntropy_SingleSymbol(t *testing.T) {
	t.Parallel()
	if got := Entropy(strings.Repeat("7", 128)); got != 0 {
		t.Errorf("Entropy(all '7') = %v, want 0", got)
	}
	if math.Signbit(Entropy("aaaa")) {
		t.Error("Entropy of a single symbol should be +0")
	}
}

func TestEntropy_Empty(t *testing.T) {
	t.Parallel()
	if got := Entropy(""); got != 0 {
		t.Errorf("Entropy(\"\") = %v, want 0", got)
	}
}

func TestEntropy_UniformHex(t *testing.T) {
	t.Parallel()
	got := Entropy(strings.Repeat("0123456789abcdef", 8))
	if math.Abs(got-4.0) > 1e-12 {
		t.Errorf("Entropy(uniform) = %v, want 4.0", got)
	}
}

func TestEntropy_ExactValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hash string
		want float64
	}{
		{sha512Hex("hello"), 3.8829248681558814},
		{sha512Hex("0"), 3.926090668166258},
	}
	for _, tt := range tests {
		if got := Entropy(tt.hash); math.Float64bits(got) != math.Float64bits(tt.want) {
			t.Errorf("Entropy(%s...) = %v, want exactly %v", tt.hash[:8], got, tt.want)
		}
	}
}

func TestEntropy_RepeatableToTheBit(t *testing.T) {
	t.Parallel()
	inputs := []string{
		sha512Hex("hello"),
		strings.Repeat("0123456789abcdef", 8),
		"fedcba9876543210" + strings.Repeat("a1", 56),
	}
	for _, s := range inputs {
		first := math.Float64bits(Entropy(s))
		for i := 0; i < 200; i++ {
			if got := math.Float64bits(Entropy(s)); got != first {
				t.Fatalf("Entropy(%s...) call %d = %x, first call = %x", s[:8], i, got, first)
			}
		}
	}
}

func TestEntropy_TwoSymbols(t *testing.T) {
	t.Parallel()
	got := Entropy(strings.Repeat("ab", 64))
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Entropy(ab...) = %v, want 1.0", got)
	}
}

func TestScore_SamplesFixedPositions(t *testing.T) {
	t.Parallel()
	b := []byte(strings.Repeat("0", 128))
	for _, i := range primaryIndexes {
		b[i] = 'f'
	}
	h := mustHash(t, string(b))
	// 8*15*0.7 = 84
	if got := Score(h); got != 84 {
		t.Errorf("Score(primary=f) = %d, want 84", got)
	}

	for _, i := range secondaryIndexes {
		b[i] = 'f'
	}
	h = mustHash(t, string(b))
	// 84 + 6*15*0.3 = 111
	if got := Score(h); got != 111 {
		t.Errorf("Score(all sampled=f) = %d, want 111", got)
	}
}

func TestScore_RoundsHalfUp(t *testing.T) {
	t.Parallel()
	b := []byte(strings.Repeat("0", 128))
	b[secondaryIndexes[0]] = '5' // 5*0.3 = 1.5
	if got := Score(mustHash(t, string(b))); got != 2 {
		t.Errorf("Score = %d, want 2", got)
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()
	if got := Checksum(mustHash(t, strings.Repeat("f", 128))); got != 1920 {
		t.Errorf("Checksum(all f) = %d, want 1920", got)
	}
	if got := Checksum(mustHash(t, strings.Repeat("0123456789abcdef", 8))); got != 960 {
		t.Errorf("Checksum(uniform) = %d, want 960", got)
	}
}

func TestVariance(t *testing.T) {
	t.Parallel()
	if got := Variance(mustHash(t, strings.Repeat("c", 128))); got != 0 {
		t.Errorf("Variance(constant) = %v, want 0", got)
	}
	// Population variance of 0..15 is (16^2-1)/12.
	got := Variance(mustHash(t, strings.Repeat("0123456789abcdef", 8)))
	if math.Abs(got-21.25) > 1e-12 {
		t.Errorf("Variance(uniform) = %v, want 21.25", got)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	h := mustHash(t, strings.Repeat("a", 128))
	got := Summarize(h)
	want := Summary{Entropy: 0, Score: 74, Checksum: 1280, Variance: 0}
	if got != want {
		t.Errorf("Summarize(all a) = %+v, want %+v", got, want)
	}
}
