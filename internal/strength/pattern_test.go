package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternScore(t *testing.T) {
	assert.Equal(t, 0, PatternScore("password"))
	assert.Equal(t, 4, PatternScore("rR8#kq!2Lz@9vWm$Tx4p"))
}

func TestPatternScoreUserInputs(t *testing.T) {
	plain := PatternScore("securepass2024")
	penalised := PatternScore("securepass2024", "securepass")
	assert.LessOrEqual(t, penalised, plain)
}

func TestPatternScoreLongInput(t *testing.T) {
	// Only the first 50 characters are matched; a long repeat still scores.
	score := PatternScore(strings.Repeat("a", 10_000))
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 4)
}
