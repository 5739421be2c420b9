package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	MinLength = 4
	MaxLength = 128
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 4")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Numbers        bool
	Symbols        bool
	ExcludeSimilar bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Validate reports whether the options can produce a password.
func (o GeneratorOptions) Validate() error {
	if o.Length < MinLength {
		return ErrLengthTooShort
	}
	if o.Length > MaxLength {
		return ErrLengthTooLong
	}
	n := len(o.Alphabets())
	if n == 0 {
		return ErrNoCharacterTypes
	}
	if o.Length < n {
		return ErrLengthInsufficient
	}
	return nil
}

// Generator draws passwords from Rand. A zero Generator uses crypto/rand.
type Generator struct {
	Rand io.Reader
}

// Generate creates a cryptographically secure random password based on the given options.
func Generate(opts GeneratorOptions) (string, error) {
	return Generator{}.Generate(opts)
}

// Generate draws opts.Length characters uniformly from the options' charset, then
// patches in any enabled category the draw missed.
func (g Generator) Generate(opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	alphabets := opts.Alphabets()
	charset := opts.Charset()
	if charset == "" {
		return "", ErrNoCharacterTypes
	}

	draft := make([]byte, opts.Length)
	for i := range draft {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		draft[i] = ch
	}

	if err := g.enforceCoverage(draft, alphabets); err != nil {
		return "", err
	}

	return string(draft), nil
}

// enforceCoverage overwrites one random position per missing category, in alphabet
// order. A position is never reused and never holds the only character of another
// enabled category, so every fix-up survives the ones after it.
func (g Generator) enforceCoverage(draft []byte, alphabets []Alphabet) error {
	fixed := make([]bool, len(draft))

	for idx, a := range alphabets {
		if strings.ContainsAny(string(draft), a.Chars) {
			continue
		}

		eligible := make([]int, 0, len(draft))
		for pos := range draft {
			if fixed[pos] || soleHolder(draft, pos, alphabets, idx) {
				continue
			}
			eligible = append(eligible, pos)
		}
		if len(eligible) == 0 {
			return ErrLengthInsufficient
		}

		n, err := g.randInt(len(eligible))
		if err != nil {
			return err
		}
		ch, err := g.randChar(a.Chars)
		if err != nil {
			return err
		}

		pos := eligible[n]
		draft[pos] = ch
		fixed[pos] = true
	}

	return nil
}

// soleHolder reports whether draft[pos] is the only character of its category,
// ignoring the category at index skip.
func soleHolder(draft []byte, pos int, alphabets []Alphabet, skip int) bool {
	for i, a := range alphabets {
		if i == skip || strings.IndexByte(a.Chars, draft[pos]) < 0 {
			continue
		}
		count := 0
		for _, c := range draft {
			if strings.IndexByte(a.Chars, c) >= 0 {
				count++
			}
		}
		return count == 1
	}
	return false
}

// randChar picks a random character from charset.
func (g Generator) randChar(charset string) (byte, error) {
	n, err := g.randInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randInt returns a uniform integer in [0, n).
func (g Generator) randInt(n int) (int, error) {
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
