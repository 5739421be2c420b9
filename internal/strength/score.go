// Package strength rates passwords: a composition score for generated passwords,
// exhaustive-search crack time estimates, and a pattern-aware score for
// passwords typed in by users.
package strength

// Strength buckets the composition score.
type Strength int

const (
	Weak Strength = iota
	Fair
	Good
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "Weak"
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case Strong:
		return "Strong"
	}
	return "Unknown"
}

// Points returns the raw 0-9 composition score: one point per length threshold
// reached (8, 12, 16, 20), one per character class present, and one more when
// all four classes are present.
func Points(password string) int {
	var lower, upper, digit, symbol bool
	n := 0
	for _, r := range password {
		n++
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	score := 0
	for _, threshold := range []int{8, 12, 16, 20} {
		if n >= threshold {
			score++
		}
	}
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			score++
		}
	}
	if lower && upper && digit && symbol {
		score++
	}
	return score
}

// Score buckets Points: up to 3 is Weak, up to 5 Fair, up to 7 Good, else Strong.
func Score(password string) Strength {
	switch p := Points(password); {
	case p <= 3:
		return Weak
	case p <= 5:
		return Fair
	case p <= 7:
		return Good
	default:
		return Strong
	}
}
