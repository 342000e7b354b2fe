package analysis

import "testing"

// noPatterns is SHA-512("oddsight"); it sets none of the pattern flags.
const noPatterns = "40b0cce94d17a0b23df03ee11e077d429c638bcc743b7f7b281f9d2e2bd6cc6435ef274c5d3983f87367b40203801f16c6d75e3b2e3a50576cd13bb707fd3a62"

// pad overwrites the head and tail of noPatterns with prefix and suffix.
func pad(prefix, suffix string) string {
	return prefix + noPatterns[len(prefix):HashLen-len(suffix)] + suffix
}

func TestDetectPatterns_Filler(t *testing.T) {
	t.Parallel()
	got := DetectPatterns(pad("", ""))
	if got != (Patterns{}) {
		t.Errorf("DetectPatterns(filler) = %+v, want no flags", got)
	}
}

func TestDetectPatterns_TailPattern(t *testing.T) {
	t.Parallel()
	got := DetectPatterns(pad("aaaa", "0000"))
	if !got.TailPattern {
		t.Error("hash ending in 0000 should set TailPattern")
	}
	if !got.HeadPattern {
		t.Error("hash starting with aaaa should set HeadPattern")
	}
	if !got.TripleRepeat || !got.DoubleRepeat {
		t.Errorf("four repeated chars imply triple and double repeats: %+v", got)
	}
}

func TestDetectPatterns_TailNeedsFourRepeats(t *testing.T) {
	t.Parallel()
	got := DetectPatterns(pad("", "a000"))
	if got.TailPattern {
		t.Error("a000 is not a tail pattern")
	}
}

func TestDetectPatterns_Palindrome(t *testing.T) {
	t.Parallel()
	if got := DetectPatterns(pad("12344321", "")); !got.Palindrome {
		t.Error("12344321 prefix should be a palindrome")
	}
	if got := DetectPatterns(pad("abcdefed", "")); got.Palindrome {
		t.Error("abcdefed prefix is not a palindrome")
	}
}

func TestDetectPatterns_PalindromeMatchesReverse(t *testing.T) {
	t.Parallel()
	for _, in := range []string{sha512Hex("a"), sha512Hex("b"), pad("0a0bb0a0", ""), pad("abccba12", "")} {
		first := in[:8]
		rev := []byte(first)
		for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
			rev[i], rev[j] = rev[j], rev[i]
		}
		want := string(rev) == first
		if got := DetectPatterns(in).Palindrome; got != want {
			t.Errorf("Palindrome(%q) = %v, want %v", first, got, want)
		}
	}
}

func TestDetectPatterns_Sequences(t *testing.T) {
	t.Parallel()
	asc := DetectPatterns(pad("789a", ""))
	if !asc.SequentialAsc || asc.SequentialDesc {
		t.Errorf("789a: got %+v, want ascending only", asc)
	}
	desc := DetectPatterns(pad("ba98", ""))
	if !desc.SequentialDesc || desc.SequentialAsc {
		t.Errorf("ba98: got %+v, want descending only", desc)
	}
	if !desc.Sequential() {
		t.Error("Sequential() should be true for a descending run")
	}
}

func TestDetectPatterns_Repeats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in             string
		triple, double bool
	}{
		{"abab", false, true},
		{"abcabc", false, true},
		{"abcdabcd", false, true},
		{"fff", true, false},
		{"abcdeabcde", false, false}, // 5-char chunk is out of range
	}
	for _, tt := range tests {
		got := DetectPatterns(tt.in)
		if got.TripleRepeat != tt.triple {
			t.Errorf("TripleRepeat(%q) = %v, want %v", tt.in, got.TripleRepeat, tt.triple)
		}
		if got.DoubleRepeat != tt.double {
			t.Errorf("DoubleRepeat(%q) = %v, want %v", tt.in, got.DoubleRepeat, tt.double)
		}
	}
}

func TestDetectPatterns_NonWordBreaksRepeats(t *testing.T) {
	t.Parallel()
	got := DetectPatterns("a-a-a ..")
	if got.TripleRepeat || got.DoubleRepeat {
		t.Errorf("non-word characters must not form repeats: %+v", got)
	}
}

func TestPatterns_Count(t *testing.T) {
	t.Parallel()
	p := Patterns{TripleRepeat: true, TailPattern: true, Palindrome: true}
	if got := p.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestPatterns_Names(t *testing.T) {
	t.Parallel()
	p := Patterns{Palindrome: true, DoubleRepeat: true}
	got := p.Names()
	want := []string{"double_repeat", "palindrome"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if names := (Patterns{}).Names(); names != nil {
		t.Errorf("Names() of empty patterns = %v, want nil", names)
	}
}

func TestPatterns_Each(t *testing.T) {
	t.Parallel()
	var names []string
	set := 0
	Patterns{HeadPattern: true}.Each(func(name string, on bool) {
		names = append(names, name)
		if on {
			set++
			if name != "head_pattern" {
				t.Errorf("unexpected set flag %q", name)
			}
		}
	})
	if len(names) != 7 || set != 1 {
		t.Errorf("Each visited %d flags with %d set, want 7 and 1", len(names), set)
	}
}
