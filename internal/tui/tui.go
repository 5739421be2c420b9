// Package tui is the interactive popup: a bubbletea adapter that renders
// service.PopupState and forwards key presses to service.Popup.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/filler"
	"github.com/securepass/securepass-go/internal/messaging"
	"github.com/securepass/securepass-go/internal/service"
)

const (
	toastDuration = 3 * time.Second
	fillTimeout   = 10 * time.Second
	barWidth      = 36
)

// Model is the bubbletea model for the popup.
type Model struct {
	popup  *service.Popup
	state  service.PopupState
	keys   keyMap
	help   help.Model
	styles styles

	// copy writes to the system clipboard; replaced in tests.
	copy func(string) error

	toast    string
	toastErr bool
	toastSeq int
}

// loadedMsg carries the initial state.
type loadedMsg struct {
	state service.PopupState
	err   error
}

// filledMsg reports a fill round trip.
type filledMsg struct {
	err error
}

// toastExpiredMsg clears the toast it was scheduled for.
type toastExpiredMsg struct {
	seq int
}

// New creates the popup model. Init loads the settings and generates the first
// password; a load failure falls back to the defaults and is shown as a toast.
func New(popup *service.Popup) Model {
	st := popup.State()
	return Model{
		popup:  popup,
		state:  st,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(st.Settings.Theme),
		copy:   clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	p := m.popup
	return func() tea.Msg {
		_, loadErr := p.Load(context.Background())
		st, err := p.Generate()
		if loadErr != nil {
			err = loadErr
		}
		return loadedMsg{state: st, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		m.apply(msg.state)
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m, nil

	case filledMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.notify("Password filled successfully!")

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		return m.result(m.popup.Generate())

	case key.Matches(msg, m.keys.Copy):
		return m.copyPassword()

	case key.Matches(msg, m.keys.Fill):
		if m.state.Password == "" {
			return m.fail(service.ErrNoPassword)
		}
		p := m.popup
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fillTimeout)
			defer cancel()
			return filledMsg{err: p.Fill(ctx)}
		}

	case key.Matches(msg, m.keys.Longer):
		return m.result(m.popup.SetLength(ctx, m.state.Settings.Length+1))

	case key.Matches(msg, m.keys.Shorter):
		return m.result(m.popup.SetLength(ctx, m.state.Settings.Length-1))

	case key.Matches(msg, m.keys.Uppercase):
		return m.result(m.popup.ToggleOption(ctx, service.OptionUppercase))

	case key.Matches(msg, m.keys.Lowercase):
		return m.result(m.popup.ToggleOption(ctx, service.OptionLowercase))

	case key.Matches(msg, m.keys.Numbers):
		return m.result(m.popup.ToggleOption(ctx, service.OptionNumbers))

	case key.Matches(msg, m.keys.Symbols):
		return m.result(m.popup.ToggleOption(ctx, service.OptionSymbols))

	case key.Matches(msg, m.keys.ExcludeSimilar):
		return m.result(m.popup.ToggleOption(ctx, service.OptionExcludeSimilar))

	case key.Matches(msg, m.keys.Theme):
		return m.result(m.popup.ToggleTheme(ctx))
	}

	return m, nil
}

func (m Model) copyPassword() (tea.Model, tea.Cmd) {
	if m.state.Password == "" {
		return m.failText("No password to copy!")
	}
	if err := m.copy(m.state.Password); err != nil {
		return m.failText("copy: " + err.Error())
	}
	return m.notify("Password copied to clipboard!")
}

func (m Model) result(st service.PopupState, err error) (tea.Model, tea.Cmd) {
	m.apply(st)
	if err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m *Model) apply(st service.PopupState) {
	if st.Settings.Theme != m.state.Settings.Theme {
		m.styles = newStyles(st.Settings.Theme)
	}
	m.state = st
}

func (m Model) notify(text string) (tea.Model, tea.Cmd) {
	return m.showToast(text, false)
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	return m.failText(errorText(err))
}

func (m Model) failText(text string) (tea.Model, tea.Cmd) {
	return m.showToast(text, true)
}

func (m Model) showToast(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.toast = text
	m.toastErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// errorText is the user-facing wording for popup failures.
func errorText(err error) string {
	switch {
	case errors.Is(err, crypto.ErrNoCharacterTypes):
		return "At least one option must be selected!"
	case errors.Is(err, service.ErrNoPassword):
		return "No password to fill!"
	case errors.Is(err, filler.ErrNoFieldFound):
		return "No password field found!"
	case errors.Is(err, messaging.ErrTransport):
		return "Error filling password!"
	}
	return err.Error()
}

func (m Model) View() string {
	s := m.styles
	st := m.state
	var b strings.Builder

	b.WriteString("\n  " + s.title.Render("securepass") + "\n\n")

	password := st.Password
	if password == "" {
		password = s.muted.Render("no password")
	}
	b.WriteString(indent(s.password.Render(password)) + "\n\n")

	fmt.Fprintf(&b, "  %s %s\n", s.strengthBar(st.Strength, barWidth), s.value.Render(st.Strength.String()))
	fmt.Fprintf(&b, "  %s %s\n", s.label.Render("time to crack:"), s.value.Render(st.Crack.Offline))
	fmt.Fprintf(&b, "  %s %s   %s %s\n\n",
		s.label.Render("online"), s.value.Render(st.Crack.Online),
		s.label.Render("offline"), s.value.Render(st.Crack.Offline))

	fmt.Fprintf(&b, "  %s %s\n", s.label.Render("length"), s.value.Render(fmt.Sprintf("%d", st.Settings.Length)))
	b.WriteString("  " + strings.Join([]string{
		m.option("A-Z", st.Settings.Uppercase),
		m.option("a-z", st.Settings.Lowercase),
		m.option("0-9", st.Settings.Numbers),
		m.option("!@#", st.Settings.Symbols),
		m.option("no look-alikes", st.Settings.ExcludeSimilar),
	}, "  ") + "\n")

	if m.toast != "" {
		style := s.success
		if m.toastErr {
			style = s.failure
		}
		b.WriteString("\n  " + style.Render(m.toast) + "\n")
	}

	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) option(label string, on bool) string {
	if on {
		return m.styles.on.Render("[x] " + label)
	}
	return m.styles.off.Render("[ ] " + label)
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
