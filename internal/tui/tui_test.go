package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/securepass/securepass-go/internal/filler"
	"github.com/securepass/securepass-go/internal/messaging"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/repository"
	"github.com/securepass/securepass-go/internal/service"
)

type stubSender struct {
	resp model.MessageResponse
	err  error
	got  []model.Message
}

func (s *stubSender) Send(_ context.Context, msg model.Message) (model.MessageResponse, error) {
	s.got = append(s.got, msg)
	return s.resp, s.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newLoaded returns a model that has run Init against a fresh store.
func newLoaded(t *testing.T, sender messaging.Sender) (Model, *repository.MemorySettingsStore) {
	t.Helper()
	store := repository.NewMemorySettingsStore()
	popup := service.NewPopup(service.NewSettingsService(store), 0, sender)

	m := New(popup)
	m.copy = func(string) error { return nil }

	msg := m.Init()()
	updated, _ := m.Update(msg)
	return updated.(Model), store
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(k)
	return updated.(Model), cmd
}

func TestInitGeneratesPassword(t *testing.T) {
	m, _ := newLoaded(t, nil)

	if len(m.state.Password) != 16 {
		t.Fatalf("expected a 16 character password, got %q", m.state.Password)
	}
	view := m.View()
	if !strings.Contains(view, m.state.Password) {
		t.Error("view should show the password")
	}
	if !strings.Contains(view, m.state.Strength.String()) {
		t.Error("view should show the strength label")
	}
}

func TestGenerateKeyReplacesPassword(t *testing.T) {
	m, _ := newLoaded(t, nil)
	before := m.state.Password

	m, _ = press(t, m, runes("g"))
	if m.state.Password == before {
		t.Error("g should generate a new password")
	}
}

func TestLengthKeys(t *testing.T) {
	m, store := newLoaded(t, nil)

	m, _ = press(t, m, runes("+"))
	if m.state.Settings.Length != 17 || len(m.state.Password) != 17 {
		t.Fatalf("+ should lengthen to 17, got %d", m.state.Settings.Length)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, runes("-"))
	if m.state.Settings.Length != 15 {
		t.Fatalf("expected length 15, got %d", m.state.Settings.Length)
	}

	values, _ := store.Load(context.Background(), 0)
	if values[model.KeyLength] != 15 {
		t.Errorf("length not persisted, store has %v", values[model.KeyLength])
	}
}

func TestTogglingEveryCategoryShowsError(t *testing.T) {
	m, _ := newLoaded(t, nil)

	var cmd tea.Cmd
	for _, k := range []string{"u", "l", "n", "s"} {
		m, cmd = press(t, m, runes(k))
	}
	if m.state.Password != "" {
		t.Errorf("password should be cleared, got %q", m.state.Password)
	}
	if !m.toastErr || m.toast != "At least one option must be selected!" {
		t.Errorf("unexpected toast %q (err=%v)", m.toast, m.toastErr)
	}
	if cmd == nil {
		t.Error("error toast should schedule its expiry")
	}
}

func TestThemeToggle(t *testing.T) {
	m, store := newLoaded(t, nil)
	before := m.state.Password

	m, _ = press(t, m, runes("t"))
	if m.state.Settings.Theme != model.ThemeLight {
		t.Fatalf("theme = %q, want light", m.state.Settings.Theme)
	}
	if m.styles.palette != lightPalette {
		t.Error("styles should switch to the light palette")
	}
	if m.state.Password != before {
		t.Error("changing theme should keep the password")
	}

	values, _ := store.Load(context.Background(), 0)
	if values[model.KeyTheme] != model.ThemeLight {
		t.Errorf("theme not persisted, store has %v", values[model.KeyTheme])
	}
}

func TestCopy(t *testing.T) {
	m, _ := newLoaded(t, nil)
	var copied string
	m.copy = func(s string) error { copied = s; return nil }

	m, _ = press(t, m, runes("c"))
	if copied != m.state.Password {
		t.Errorf("copied %q, want %q", copied, m.state.Password)
	}
	if m.toast != "Password copied to clipboard!" || m.toastErr {
		t.Errorf("unexpected toast %q", m.toast)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m, _ = press(t, m, runes("c"))
	if !m.toastErr {
		t.Error("clipboard failure should show an error toast")
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name    string
		sender  *stubSender
		toast   string
		isError bool
	}{
		{"filled", &stubSender{resp: model.MessageResponse{Success: true}}, "Password filled successfully!", false},
		{"no field", &stubSender{resp: model.MessageResponse{Success: false}}, "No password field found!", true},
		{"transport", &stubSender{err: errors.New("gone")}, "Error filling password!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newLoaded(t, tt.sender)

			m, cmd := press(t, m, runes("f"))
			if cmd == nil {
				t.Fatal("f should start a fill")
			}
			updated, _ := m.Update(cmd())
			m = updated.(Model)

			if m.toast != tt.toast || m.toastErr != tt.isError {
				t.Errorf("toast = %q (err=%v), want %q (err=%v)", m.toast, m.toastErr, tt.toast, tt.isError)
			}
			if len(tt.sender.got) != 1 || tt.sender.got[0].Password != m.state.Password {
				t.Errorf("expected one fill message with the current password, got %+v", tt.sender.got)
			}
		})
	}
}

func TestToastExpiry(t *testing.T) {
	m, _ := newLoaded(t, nil)

	m, _ = press(t, m, runes("c"))
	first := m.toastSeq
	m, _ = press(t, m, runes("c"))

	updated, _ := m.Update(toastExpiredMsg{seq: first})
	m = updated.(Model)
	if m.toast == "" {
		t.Error("a stale expiry should not clear a newer toast")
	}

	updated, _ = m.Update(toastExpiredMsg{seq: m.toastSeq})
	m = updated.(Model)
	if m.toast != "" {
		t.Errorf("toast should be cleared, got %q", m.toast)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newLoaded(t, nil)

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s should quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s should produce QuitMsg", k)
		}
	}
}

func TestErrorText(t *testing.T) {
	if got := errorText(filler.ErrNoFieldFound); got != "No password field found!" {
		t.Errorf("errorText(ErrNoFieldFound) = %q", got)
	}
	if got := errorText(errors.New("disk full")); got != "disk full" {
		t.Errorf("errorText(other) = %q", got)
	}
}

type brokenStore struct{}

func (brokenStore) Load(context.Context, int64) (map[string]any, error) {
	return nil, errors.New("settings unreadable")
}

func (brokenStore) Save(context.Context, int64, map[string]any) error { return nil }

func TestInitLoadFailureUsesDefaults(t *testing.T) {
	m := New(service.NewPopup(service.NewSettingsService(brokenStore{}), 0, nil))

	updated, _ := m.Update(m.Init()())
	m = updated.(Model)

	if m.state.Settings != model.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", m.state.Settings)
	}
	if len(m.state.Password) != 16 {
		t.Errorf("expected a default length password, got %q", m.state.Password)
	}
	if !m.toastErr || !strings.Contains(m.toast, "settings unreadable") {
		t.Errorf("load failure should be shown, got %q", m.toast)
	}
}
