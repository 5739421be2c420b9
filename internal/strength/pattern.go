package strength

import "github.com/nbutton23/zxcvbn-go"

// maxPatternLen bounds the input handed to zxcvbn, whose matching cost grows
// quickly with length.
const maxPatternLen = 50

// PatternScore returns zxcvbn's 0-4 guessability score. Unlike Score it notices
// dictionary words, keyboard walks and repeats, so it is the right check for
// passwords a person chose. userInputs are extra words to penalise, such as
// the site name or the profile name.
func PatternScore(password string, userInputs ...string) int {
	runes := []rune(password)
	if len(runes) > maxPatternLen {
		password = string(runes[:maxPatternLen])
	}
	return zxcvbn.PasswordStrength(password, userInputs).Score
}
