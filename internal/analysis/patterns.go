package analysis

import "strings"

// Patterns holds the boolean pattern flags for a hash.
type Patterns struct {
	TripleRepeat   bool `json:"triple_repeat" yaml:"triple_repeat"`
	DoubleRepeat   bool `json:"double_repeat" yaml:"double_repeat"`
	SequentialAsc  bool `json:"sequential_asc" yaml:"sequential_asc"`
	SequentialDesc bool `json:"sequential_desc" yaml:"sequential_desc"`
	TailPattern    bool `json:"tail_pattern" yaml:"tail_pattern"`
	HeadPattern    bool `json:"head_pattern" yaml:"head_pattern"`
	Palindrome     bool `json:"palindrome" yaml:"palindrome"`
}

var (
	ascendingRuns = []string{
		"0123", "1234", "2345", "3456", "4567", "5678", "6789",
		"789a", "89ab", "9abc", "abcd", "bcde", "cdef",
	}
	descendingRuns = []string{
		"3210", "4321", "5432", "6543", "7654", "8765", "9876",
		"a987", "ba98", "cba9", "dcba", "edcb", "fedc",
	}
	// edgeRuns are the four-repeated digits checked at the head and tail.
	edgeRuns = []string{
		"aaaa", "ffff", "0000", "1111", "2222", "3333", "4444", "5555",
		"6666", "7777", "8888", "9999", "bbbb", "cccc", "dddd", "eeee",
	}
)

// DetectPatterns evaluates the seven pattern predicates over s.
// The predicates are independent string tests.
func DetectPatterns(s string) Patterns {
	return Patterns{
		TripleRepeat:   hasRepeatedChar(s, 3),
		DoubleRepeat:   hasRepeatedChunk(s, 2, 4),
		SequentialAsc:  containsAny(s, ascendingRuns),
		SequentialDesc: containsAny(s, descendingRuns),
		TailPattern:    len(s) >= 4 && equalsAny(s[len(s)-4:], edgeRuns),
		HeadPattern:    len(s) >= 4 && equalsAny(s[:4], edgeRuns),
		Palindrome:     isPalindrome(head(s, 8)),
	}
}

// Sequential reports whether either sequential run flag is set.
func (p Patterns) Sequential() bool {
	return p.SequentialAsc || p.SequentialDesc
}

func (p Patterns) flags() []struct {
	name string
	set  bool
} {
	return []struct {
		name string
		set  bool
	}{
		{"triple_repeat", p.TripleRepeat},
		{"double_repeat", p.DoubleRepeat},
		{"sequential_asc", p.SequentialAsc},
		{"sequential_desc", p.SequentialDesc},
		{"tail_pattern", p.TailPattern},
		{"head_pattern", p.HeadPattern},
		{"palindrome", p.Palindrome},
	}
}

// Count returns how many flags are set.
func (p Patterns) Count() int {
	return len(p.Names())
}

// Each calls fn for every flag in declaration order.
func (p Patterns) Each(fn func(name string, set bool)) {
	for _, f := range p.flags() {
		fn(f.name, f.set)
	}
}

// Names returns the snake_case names of the set flags in declaration order.
func (p Patterns) Names() []string {
	var names []string
	for _, f := range p.flags() {
		if f.set {
			names = append(names, f.name)
		}
	}
	return names
}

// hasRepeatedChar reports whether some word character occurs n or more
// times consecutively.
func hasRepeatedChar(s string, n int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		switch {
		case !isWordChar(s[i]):
			run = 0
		case i > 0 && s[i] == s[i-1]:
			run++
		default:
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// hasRepeatedChunk reports whether a run of lo..hi word characters is
// immediately followed by itself.
func hasRepeatedChunk(s string, lo, hi int) bool {
	for i := 0; i < len(s); i++ {
		for size := lo; size <= hi && i+2*size <= len(s); size++ {
			chunk := s[i : i+size]
			if !allWordChars(chunk) {
				break
			}
			if s[i+size:i+2*size] == chunk {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func equalsAny(s string, candidates []string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}

func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func head(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func allWordChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return true
}
