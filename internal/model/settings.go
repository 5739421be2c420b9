package model

// Settings keys as stored by the settings collaborator.
const (
	KeyTheme          = "theme"
	KeyLength         = "length"
	KeyUppercase      = "uppercase"
	KeyLowercase      = "lowercase"
	KeyNumbers        = "numbers"
	KeySymbols        = "symbols"
	KeyExcludeSimilar = "excludeSimilar"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings is the popup's persisted preferences.
type Settings struct {
	Theme          string `json:"theme" yaml:"theme"`
	Length         int    `json:"length" yaml:"length"`
	Uppercase      bool   `json:"uppercase" yaml:"uppercase"`
	Lowercase      bool   `json:"lowercase" yaml:"lowercase"`
	Numbers        bool   `json:"numbers" yaml:"numbers"`
	Symbols        bool   `json:"symbols" yaml:"symbols"`
	ExcludeSimilar bool   `json:"excludeSimilar" yaml:"excludeSimilar"`
}

// DefaultSettings mirrors the defaults a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:     ThemeDark,
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Values flattens s into the opaque dictionary handed to stores.
func (s Settings) Values() map[string]any {
	return map[string]any{
		KeyTheme:          s.Theme,
		KeyLength:         s.Length,
		KeyUppercase:      s.Uppercase,
		KeyLowercase:      s.Lowercase,
		KeyNumbers:        s.Numbers,
		KeySymbols:        s.Symbols,
		KeyExcludeSimilar: s.ExcludeSimilar,
	}
}
