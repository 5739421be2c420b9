package strength

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/securepass/securepass-go/internal/crypto"
)

// Guess rates assumed for the two attack scenarios, in attempts per second.
const (
	OnlineGuessRate  = 1_000
	OfflineGuessRate = 1_000_000_000
)

// CrackEstimate is the average time an exhaustive search needs to hit a password.
type CrackEstimate struct {
	CharsetSize    int
	OnlineSeconds  float64
	OfflineSeconds float64
	Online         string
	Offline        string
}

// CharsetSize is the search space per character implied by opts. The constants
// are the sizes the estimate has always used; they are not derived from the
// generator alphabets.
func CharsetSize(opts crypto.GeneratorOptions) int {
	size := 0
	if opts.Uppercase {
		size += sized(opts.ExcludeSimilar, 23, 26)
	}
	if opts.Lowercase {
		size += sized(opts.ExcludeSimilar, 23, 26)
	}
	if opts.Numbers {
		size += sized(opts.ExcludeSimilar, 8, 10)
	}
	if opts.Symbols {
		size += 25
	}
	return size
}

func sized(excludeSimilar bool, reduced, full int) int {
	if excludeSimilar {
		return reduced
	}
	return full
}

// EstimateCrackTime assumes the attacker searches charsetSize^len(password)
// candidates and finds the password after half of them on average.
func EstimateCrackTime(password string, opts crypto.GeneratorOptions) CrackEstimate {
	size := CharsetSize(opts)
	combinations := math.Pow(float64(size), float64(utf8.RuneCountInString(password)))
	avg := combinations / 2

	est := CrackEstimate{
		CharsetSize:    size,
		OnlineSeconds:  avg / OnlineGuessRate,
		OfflineSeconds: avg / OfflineGuessRate,
	}
	est.Online = FormatDuration(est.OnlineSeconds)
	est.Offline = FormatDuration(est.OfflineSeconds)
	return est
}

type timeUnit struct {
	singular string
	plural   string
	seconds  float64
}

var timeUnits = []timeUnit{
	{"millennium", "millennia", 31557600000},
	{"century", "centuries", 3155760000},
	{"decade", "decades", 315576000},
	{"year", "years", 31557600},
	{"month", "months", 2629800},
	{"week", "weeks", 604800},
	{"day", "days", 86400},
	{"hour", "hours", 3600},
	{"minute", "minutes", 60},
	{"second", "seconds", 1},
}

// formatScaled prints one decimal, switching to shortest exponent form
// (2.5e+21) once the value reaches 1e21.
func formatScaled(x float64) string {
	if x >= 1e21 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}

// FormatDuration renders seconds in the largest unit with a quotient of at least
// one, scaling very large quotients to k/million/billion/trillion.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 1 {
		return "Instantly"
	}
	if math.IsInf(seconds, 1) {
		return "Forever"
	}

	for _, u := range timeUnits {
		v := math.Floor(seconds / u.seconds)
		if v < 1 {
			continue
		}
		switch {
		case v >= 1e12:
			return formatScaled(v/1e12) + " trillion " + u.plural
		case v >= 1e9:
			return fmt.Sprintf("%.1f billion %s", v/1e9, u.plural)
		case v >= 1e6:
			return fmt.Sprintf("%.1f million %s", v/1e6, u.plural)
		case v >= 1e3:
			return fmt.Sprintf("%.1fk %s", v/1e3, u.plural)
		case v == 1:
			return "1 " + u.singular
		default:
			return fmt.Sprintf("%d %s", int64(v), u.plural)
		}
	}

	return "Instantly"
}
