package analysis

import "testing"

func TestConfidence_TargetTable(t *testing.T) {
	t.Parallel()
	// Entropy 3.95 adds 8 to the base of 50; nothing else in common fires.
	a := &Analysis{Summary: Summary{Entropy: 3.95, Score: 1, Checksum: 1, Variance: 5}}
	want := map[Target]int{
		Target2:   66,
		Target3:   65,
		Target4:   75, // 3.91 < e < 3.97
		Target7:   64,
		Target10:  70,
		Target100: 73,
	}
	for tgt, w := range want {
		if got := Confidence(a, tgt); got != w {
			t.Errorf("Confidence(%v) = %d, want %d", tgt, got, w)
		}
	}
}

func TestConfidence_Penalties(t *testing.T) {
	t.Parallel()
	a := &Analysis{Summary: Summary{Entropy: 3.0, Score: 1, Checksum: 1, Variance: 3.0}}
	// 50 - 10 (entropy) - 5 (variance) + 8 (target 2)
	if got := Confidence(a, Target2); got != 43 {
		t.Errorf("Confidence = %d, want 43", got)
	}
}

func TestConfidence_ChecksumTiersAreExclusive(t *testing.T) {
	t.Parallel()
	base := &Analysis{Summary: Summary{Entropy: 3.7, Score: 1, Checksum: 1, Variance: 5}}
	mod128 := &Analysis{Summary: Summary{Entropy: 3.7, Score: 1, Checksum: 256, Variance: 5}}
	mod64 := &Analysis{Summary: Summary{Entropy: 3.7, Score: 1, Checksum: 192, Variance: 5}}
	mod32 := &Analysis{Summary: Summary{Entropy: 3.7, Score: 1, Checksum: 96, Variance: 5}}

	b := Confidence(base, Target3)
	if got := Confidence(mod128, Target3) - b; got != 15 {
		t.Errorf("checksum%%128 bonus = %d, want 15", got)
	}
	if got := Confidence(mod64, Target3) - b; got != 10 {
		t.Errorf("checksum%%64 bonus = %d, want 10", got)
	}
	if got := Confidence(mod32, Target3) - b; got != 5 {
		t.Errorf("checksum%%32 bonus = %d, want 5", got)
	}
}

func TestConfidence_ScoreModuliStack(t *testing.T) {
	t.Parallel()
	// 0 is divisible by 11, 7, 5 and 3.
	zero := &Analysis{Summary: Summary{Entropy: 3.7, Score: 0, Checksum: 1, Variance: 5}}
	one := &Analysis{Summary: Summary{Entropy: 3.7, Score: 1, Checksum: 1, Variance: 5}}
	if got := Confidence(zero, Target2) - Confidence(one, Target2); got != 12+8+5+3 {
		t.Errorf("score moduli bonus = %d, want %d", got, 12+8+5+3)
	}
}

func TestConfidence_ClampsHigh(t *testing.T) {
	t.Parallel()
	a := &Analysis{
		Summary: Summary{Entropy: 4.0, Score: 0, Checksum: 0, Variance: 8},
		Patterns: Patterns{
			TripleRepeat: true, DoubleRepeat: true, SequentialAsc: true,
			TailPattern: true, HeadPattern: true, Palindrome: true,
		},
	}
	for _, tgt := range Targets() {
		if got := Confidence(a, tgt); got != MaxConfidence {
			t.Errorf("Confidence(%v) = %d, want %d", tgt, got, MaxConfidence)
		}
	}
}

func TestDelay_TargetBonus(t *testing.T) {
	t.Parallel()
	a := &Analysis{Summary: Summary{Entropy: 3.95, Score: 1, Checksum: 1, Variance: 5}}
	want := map[Target]int{
		Target2:   100,
		Target3:   145,
		Target4:   200,
		Target7:   350,
		Target10:  525,
		Target100: 5150,
	}
	for tgt, w := range want {
		if got := Delay(a, tgt); got != w {
			t.Errorf("Delay(%v) = %d, want %d", tgt, got, w)
		}
	}
}

func TestDelay_Adjustments(t *testing.T) {
	t.Parallel()
	a := &Analysis{
		Summary:  Summary{Entropy: 4.0, Score: 0, Checksum: 128, Variance: 7.5},
		Patterns: Patterns{TripleRepeat: true, DoubleRepeat: true, SequentialDesc: true, TailPattern: true, Palindrome: true},
	}
	// 90 + (35+30+15) + (25+20+15+20+10) + 15 + 40 + 10
	if got := Delay(a, Target2); got != 90+80+90+15+40+10 {
		t.Errorf("Delay = %d, want %d", got, 90+80+90+15+40+10)
	}
}

func TestDelay_LowVariancePenalty(t *testing.T) {
	t.Parallel()
	a := &Analysis{Summary: Summary{Entropy: 3.0, Score: 1, Checksum: 1, Variance: 2}}
	// 90 - 10 + 10
	if got := Delay(a, Target2); got != 90 {
		t.Errorf("Delay = %d, want 90", got)
	}
	if got := Delay(a, Target2); got < MinDelay(Target2) {
		t.Errorf("Delay = %d below floor %d", got, MinDelay(Target2))
	}
}
