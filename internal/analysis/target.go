package analysis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownTarget indicates a target outside the supported set.
var ErrUnknownTarget = errors.New("unknown target")

// Target is a multiplier (odds) value selecting a branch of adjustment rules.
type Target int

// Supported targets.
const (
	Target2   Target = 2
	Target3   Target = 3
	Target4   Target = 4
	Target7   Target = 7
	Target10  Target = 10
	Target100 Target = 100
)

var targets = [...]Target{Target2, Target3, Target4, Target7, Target10, Target100}

// Targets returns the supported targets in enumeration order.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets[:])
	return out
}

// Valid reports whether t is one of the supported targets.
func (t Target) Valid() bool {
	for _, v := range targets {
		if t == v {
			return true
		}
	}
	return false
}

// String renders the target as "10x".
func (t Target) String() string {
	return strconv.Itoa(int(t)) + "x"
}

// ParseTarget parses "10" or "10x".
func ParseTarget(s string) (Target, error) {
	trimmed := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "x")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrUnknownTarget, s)
	}
	t := Target(n)
	if !t.Valid() {
		return 0, fmt.Errorf("%w %q (supported: %s)", ErrUnknownTarget, s, targetList())
	}
	return t, nil
}

func targetList() string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = strconv.Itoa(int(t))
	}
	return strings.Join(parts, ", ")
}
