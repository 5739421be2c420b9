package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		points   int
		want     Strength
	}{
		{"empty", "", 0, Weak},
		{"short lowercase", "abc", 1, Weak},
		{"eight mixed", "Abcdefg1", 4, Fair},
		{"twelve all classes", "Abcdefg1!xyz", 7, Good},
		{"sixteen all classes", "Abcdefg1!xyzUVW2", 8, Strong},
		{"twenty all classes", "Abcdefg1!xyzUVW2#rst", 9, Strong},
		{"long single class", strings.Repeat("a", 20), 5, Fair},
		{"symbols count as non alphanumeric", "é€ ", 1, Weak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.points, Points(tt.password))
			assert.Equal(t, tt.want, Score(tt.password))
		})
	}
}

func TestScoreMonotonicInLength(t *testing.T) {
	for _, seed := range []string{"a", "aB", "aB3", "aB3!"} {
		prev := Weak
		for n := len(seed); n <= 40; n++ {
			pw := strings.Repeat(seed, n/len(seed)+1)[:n]
			got := Score(pw)
			assert.GreaterOrEqual(t, int(got), int(prev), "length %d of %q", n, seed)
			prev = got
		}
	}
}

func TestScoreMonotonicInClasses(t *testing.T) {
	// Same length, one more class each step.
	passwords := []string{"aaaaaaaaaaaa", "aaaaaaAAAAAA", "aaaaAAAA1111", "aaaAAA111!!!"}
	prev := -1
	for _, pw := range passwords {
		p := Points(pw)
		assert.Greater(t, p, prev, pw)
		prev = p
	}
}

func TestStrengthString(t *testing.T) {
	assert.Equal(t, "Weak", Weak.String())
	assert.Equal(t, "Fair", Fair.String())
	assert.Equal(t, "Good", Good.String())
	assert.Equal(t, "Strong", Strong.String())
	assert.Equal(t, "Unknown", Strength(9).String())
}
