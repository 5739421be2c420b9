package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/filler"
	"github.com/securepass/securepass-go/internal/messaging"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/strength"
)

var ErrNoPassword = errors.New("no password to fill")

// Option names a toggleable generator setting.
type Option int

const (
	OptionUppercase Option = iota
	OptionLowercase
	OptionNumbers
	OptionSymbols
	OptionExcludeSimilar
)

// PopupState is everything the popup displays.
type PopupState struct {
	Settings model.Settings
	Password string
	Strength strength.Strength
	Crack    strength.CrackEstimate
}

// Popup owns the popup state. Surfaces (the TUI, scripted output) read and
// mutate it only through these methods.
type Popup struct {
	settings  *SettingsService
	profileID int64
	sender    messaging.Sender
	gen       crypto.Generator

	mu    sync.Mutex
	state PopupState
}

// NewPopup starts from default settings; call Load to read the stored ones.
// sender may be nil when no page is attached.
func NewPopup(settings *SettingsService, profileID int64, sender messaging.Sender) *Popup {
	return &Popup{
		settings:  settings,
		profileID: profileID,
		sender:    sender,
		state:     PopupState{Settings: model.DefaultSettings()},
	}
}

// State returns a snapshot.
func (p *Popup) State() PopupState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load reads stored settings. On failure the defaults stay in place and the
// error is returned for display.
func (p *Popup) Load(ctx context.Context) (PopupState, error) {
	s, err := p.settings.Get(ctx, p.profileID)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Settings = s
	if err != nil {
		return p.state, fmt.Errorf("loading settings: %w", err)
	}
	return p.state, nil
}

// Generate replaces the displayed password. With no category selected the
// password is cleared and crypto.ErrNoCharacterTypes returned.
func (p *Popup) Generate() (PopupState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generateLocked()
}

func (p *Popup) generateLocked() (PopupState, error) {
	opts := OptionsFromSettings(p.state.Settings)

	password, err := p.gen.Generate(opts)
	if err != nil {
		p.state.Password = ""
		p.state.Strength = strength.Weak
		p.state.Crack = strength.CrackEstimate{}
		return p.state, err
	}

	p.state.Password = password
	p.state.Strength = strength.Score(password)
	p.state.Crack = strength.EstimateCrackTime(password, opts)
	return p.state, nil
}

// SetLength stores a new length and regenerates.
func (p *Popup) SetLength(ctx context.Context, n int) (PopupState, error) {
	return p.update(ctx, func(s *model.Settings) { s.Length = n }, true)
}

// SetOption stores a category flag and regenerates.
func (p *Popup) SetOption(ctx context.Context, opt Option, on bool) (PopupState, error) {
	return p.update(ctx, func(s *model.Settings) { *optionField(s, opt) = on }, true)
}

// ToggleOption flips a category flag and regenerates.
func (p *Popup) ToggleOption(ctx context.Context, opt Option) (PopupState, error) {
	return p.update(ctx, func(s *model.Settings) {
		f := optionField(s, opt)
		*f = !*f
	}, true)
}

// ToggleTheme switches between dark and light. The password is kept.
func (p *Popup) ToggleTheme(ctx context.Context) (PopupState, error) {
	return p.update(ctx, func(s *model.Settings) {
		if s.Theme == model.ThemeDark {
			s.Theme = model.ThemeLight
		} else {
			s.Theme = model.ThemeDark
		}
	}, false)
}

// update applies change, persists the settings and optionally regenerates.
// A failed save is logged and does not block the popup.
func (p *Popup) update(ctx context.Context, change func(*model.Settings), regenerate bool) (PopupState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	change(&p.state.Settings)
	p.state.Settings = NormalizeSettings(p.state.Settings)

	if _, err := p.settings.Save(ctx, p.profileID, p.state.Settings); err != nil {
		slog.Warn("saving settings failed", "profile", p.profileID, "error", err)
	}

	if !regenerate {
		return p.state, nil
	}
	return p.generateLocked()
}

// Fill sends the displayed password to the page.
func (p *Popup) Fill(ctx context.Context) error {
	password := p.State().Password
	if password == "" {
		return ErrNoPassword
	}
	if p.sender == nil {
		return fmt.Errorf("%w: no page attached", messaging.ErrTransport)
	}

	resp, err := p.sender.Send(ctx, messaging.NewMessage(model.ActionFillPassword, password))
	if err != nil {
		if errors.Is(err, messaging.ErrTransport) {
			return err
		}
		return fmt.Errorf("%w: %w", messaging.ErrTransport, err)
	}
	if !resp.Success {
		return filler.ErrNoFieldFound
	}
	return nil
}

func optionField(s *model.Settings, opt Option) *bool {
	switch opt {
	case OptionUppercase:
		return &s.Uppercase
	case OptionLowercase:
		return &s.Lowercase
	case OptionNumbers:
		return &s.Numbers
	case OptionSymbols:
		return &s.Symbols
	default:
		return &s.ExcludeSimilar
	}
}
