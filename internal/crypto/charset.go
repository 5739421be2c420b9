package crypto

import "strings"

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Alphabets with visually ambiguous characters (I, O, i, l, o, 0, 1) removed.
	UppercaseUnambiguous = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	LowercaseUnambiguous = "abcdefghjkmnpqrstuvwxyz"
	NumberUnambiguous    = "23456789"
)

// Category identifies one of the character classes a password can draw from.
type Category int

const (
	CategoryUppercase Category = iota
	CategoryLowercase
	CategoryNumbers
	CategorySymbols
)

func (c Category) String() string {
	switch c {
	case CategoryUppercase:
		return "uppercase"
	case CategoryLowercase:
		return "lowercase"
	case CategoryNumbers:
		return "numbers"
	case CategorySymbols:
		return "symbols"
	}
	return "unknown"
}

// Alphabet is the ordered set of characters a category contributes.
type Alphabet struct {
	Category Category
	Chars    string
}

// Alphabets returns the enabled category alphabets in the fixed order
// uppercase, lowercase, numbers, symbols.
func (o GeneratorOptions) Alphabets() []Alphabet {
	var out []Alphabet
	if o.Uppercase {
		out = append(out, Alphabet{CategoryUppercase, pick(o.ExcludeSimilar, UppercaseUnambiguous, UppercaseChars)})
	}
	if o.Lowercase {
		out = append(out, Alphabet{CategoryLowercase, pick(o.ExcludeSimilar, LowercaseUnambiguous, LowercaseChars)})
	}
	if o.Numbers {
		out = append(out, Alphabet{CategoryNumbers, pick(o.ExcludeSimilar, NumberUnambiguous, NumberChars)})
	}
	if o.Symbols {
		out = append(out, Alphabet{CategorySymbols, SymbolChars})
	}
	return out
}

// Charset concatenates the enabled alphabets. It is empty when no category is enabled.
func (o GeneratorOptions) Charset() string {
	var b strings.Builder
	for _, a := range o.Alphabets() {
		b.WriteString(a.Chars)
	}
	return b.String()
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
