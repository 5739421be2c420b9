package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
)

// SettingsStore is the key-value collaborator that persists settings. Stores
// treat the values as an opaque dictionary.
type SettingsStore interface {
	Load(ctx context.Context, profileID int64) (map[string]any, error)
	Save(ctx context.Context, profileID int64, values map[string]any) error
}

// SettingsService reads and writes popup settings for a profile.
type SettingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the stored settings merged over the defaults.
func (s *SettingsService) Get(ctx context.Context, profileID int64) (model.Settings, error) {
	values, err := s.store.Load(ctx, profileID)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return SettingsFromValues(values), nil
}

// Save normalises and persists settings, returning what was stored.
func (s *SettingsService) Save(ctx context.Context, profileID int64, settings model.Settings) (model.Settings, error) {
	settings = NormalizeSettings(settings)
	if err := s.store.Save(ctx, profileID, settings.Values()); err != nil {
		return settings, err
	}
	return settings, nil
}

// SettingsFromValues decodes a stored dictionary. Missing or mistyped keys
// keep their defaults.
func SettingsFromValues(values map[string]any) model.Settings {
	s := model.DefaultSettings()

	if v, ok := values[model.KeyTheme].(string); ok {
		s.Theme = v
	}
	if n, ok := toInt(values[model.KeyLength]); ok {
		s.Length = n
	}
	for key, dst := range map[string]*bool{
		model.KeyUppercase:      &s.Uppercase,
		model.KeyLowercase:      &s.Lowercase,
		model.KeyNumbers:        &s.Numbers,
		model.KeySymbols:        &s.Symbols,
		model.KeyExcludeSimilar: &s.ExcludeSimilar,
	} {
		if v, ok := values[key].(bool); ok {
			*dst = v
		}
	}

	return NormalizeSettings(s)
}

// NormalizeSettings clamps the length into the generator's bounds and falls
// back to the dark theme for unknown themes.
func NormalizeSettings(s model.Settings) model.Settings {
	if s.Theme != model.ThemeDark && s.Theme != model.ThemeLight {
		s.Theme = model.ThemeDark
	}
	s.Length = min(max(s.Length, crypto.MinLength), crypto.MaxLength)
	return s
}

// OptionsFromSettings maps settings onto generator options.
func OptionsFromSettings(s model.Settings) crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:         s.Length,
		Uppercase:      s.Uppercase,
		Lowercase:      s.Lowercase,
		Numbers:        s.Numbers,
		Symbols:        s.Symbols,
		ExcludeSimilar: s.ExcludeSimilar,
	}
}

// toInt accepts the numeric shapes the stores produce: ints from YAML and
// memory, float64 from JSON, and numeric strings from form posts. Floats are
// clamped to the length bounds first.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		// Out-of-range floats have no defined int conversion.
		return int(min(max(n, crypto.MinLength), crypto.MaxLength)), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}
