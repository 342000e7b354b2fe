package analysis

// delayBonus is the fixed per-target delay adjustment.
var delayBonus = map[Target]int{
	Target2:   10,
	Target3:   10,
	Target4:   20,
	Target7:   35,
	Target10:  75,
	Target100: 650,
}

// MinDelay returns the floor applied to Delay for t.
func MinDelay(t Target) int {
	return int(t) * 40
}

// Delay maps the analysis of a hash and a target to a delay value that is
// never below MinDelay(t).
func Delay(a *Analysis, t Target) int {
	base := int(t) * 45

	switch e := a.Entropy; {
	case e > 4.5:
		base += 30
	case e > 4.3:
		base += 20
	case e > 4.0:
		base += 10
	}

	if a.Score%11 == 0 {
		base += 35
	}
	if a.Score%7 == 0 {
		base += 30
	}
	if a.Score%5 == 0 {
		base += 15
	}

	p := a.Patterns
	if p.TripleRepeat {
		base += 25
	}
	if p.DoubleRepeat {
		base += 20
	}
	if p.Sequential() {
		base += 15
	}
	if p.TailPattern {
		base += 20
	}
	if p.Palindrome {
		base += 10
	}

	switch {
	case a.Variance > 7.0:
		base += 15
	case a.Variance < 4.0:
		base -= 10
	}

	switch {
	case a.Checksum%128 == 0:
		base += 40
	case a.Checksum%64 == 0:
		base += 25
	}

	base += delayBonus[t]

	return max(MinDelay(t), base)
}
