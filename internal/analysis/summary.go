package analysis

import "math"

// Fixed sampling positions for Score. Both lie inside a 128-char hash.
var (
	primaryIndexes   = [...]int{5, 15, 25, 35, 50, 75, 100, 120}
	secondaryIndexes = [...]int{10, 20, 40, 60, 80, 110}
)

// Summary is the statistical summary of a hash.
type Summary struct {
	Entropy  float64 `json:"entropy" yaml:"entropy"`
	Score    int     `json:"score" yaml:"score"`
	Checksum int     `json:"checksum" yaml:"checksum"`
	Variance float64 `json:"variance" yaml:"variance"`
}

// Summarize computes all four statistics for h.
func Summarize(h Hash) Summary {
	return Summary{
		Entropy:  Entropy(string(h)),
		Score:    Score(h),
		Checksum: Checksum(h),
		Variance: Variance(h),
	}
}

// Entropy returns the Shannon entropy in bits of the character frequency
// distribution of s. A one-symbol (or empty) string has entropy 0.
//
// Terms are summed digits '0'..'9' first, then other symbols in order of
// first appearance, so the result is identical to the bit on every call.
func Entropy(s string) float64 {
	var digits [10]int
	others := make(map[rune]int)
	var order []rune
	n := 0
	for _, r := range s {
		n++
		if r >= '0' && r <= '9' {
			digits[r-'0']++
			continue
		}
		if others[r] == 0 {
			order = append(order, r)
		}
		others[r]++
	}
	if n == 0 {
		return 0
	}

	var entropy float64
	term := func(count int) {
		p := float64(count) / float64(n)
		// Unfused, as in recommend.go.
		entropy -= float64(p * math.Log2(p))
	}
	for _, count := range digits {
		if count > 0 {
			term(count)
		}
	}
	for _, r := range order {
		term(others[r])
	}
	// A single symbol yields -0.
	return math.Abs(entropy)
}

// Score samples the primary and secondary positions of h and combines
// their digit sums as round(0.7*primary + 0.3*secondary).
func Score(h Hash) int {
	var primary, secondary int
	for _, i := range primaryIndexes {
		primary += h.digit(i)
	}
	for _, i := range secondaryIndexes {
		secondary += h.digit(i)
	}
	// Explicit conversions keep each product rounded (no FMA).
	return roundHalfUp(float64(float64(primary)*0.7) + float64(float64(secondary)*0.3))
}

// Checksum returns the sum of every hex digit value in h.
func Checksum(h Hash) int {
	sum := 0
	for i := 0; i < len(h); i++ {
		sum += h.digit(i)
	}
	return sum
}

// Variance returns the population variance of the digit values of h.
func Variance(h Hash) float64 {
	if len(h) == 0 {
		return 0
	}
	n := float64(len(h))
	mean := float64(Checksum(h)) / n

	var sum float64
	for i := 0; i < len(h); i++ {
		d := float64(h.digit(i)) - mean
		sum += d * d
	}
	return sum / n
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
