package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/strength"
)

// palette is one theme's colours.
type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	track  lipgloss.Color
	ok     lipgloss.Color
	err    lipgloss.Color
}

var (
	darkPalette = palette{
		accent: lipgloss.Color("#A78BFA"),
		text:   lipgloss.Color("#F9FAFB"),
		muted:  lipgloss.Color("#6B7280"),
		track:  lipgloss.Color("#374151"),
		ok:     lipgloss.Color("#10B981"),
		err:    lipgloss.Color("#F87171"),
	}
	lightPalette = palette{
		accent: lipgloss.Color("#6D28D9"),
		text:   lipgloss.Color("#111827"),
		muted:  lipgloss.Color("#6B7280"),
		track:  lipgloss.Color("#E5E7EB"),
		ok:     lipgloss.Color("#047857"),
		err:    lipgloss.Color("#B91C1C"),
	}
)

// strengthColors index by strength.Strength.
var strengthColors = [...]lipgloss.Color{
	strength.Weak:   lipgloss.Color("#EF4444"),
	strength.Fair:   lipgloss.Color("#F59E0B"),
	strength.Good:   lipgloss.Color("#3B82F6"),
	strength.Strong: lipgloss.Color("#10B981"),
}

type styles struct {
	palette  palette
	title    lipgloss.Style
	password lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	on       lipgloss.Style
	off      lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
}

func newStyles(theme string) styles {
	p := darkPalette
	if theme == model.ThemeLight {
		p = lightPalette
	}

	return styles{
		palette: p,
		title:   lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		password: lipgloss.NewStyle().
			Foreground(p.text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(p.muted),
		value:   lipgloss.NewStyle().Foreground(p.text),
		muted:   lipgloss.NewStyle().Foreground(p.muted),
		on:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		off:     lipgloss.NewStyle().Foreground(p.muted),
		success: lipgloss.NewStyle().Foreground(p.ok),
		failure: lipgloss.NewStyle().Foreground(p.err),
	}
}

// strengthBar fills one segment per strength level.
func (s styles) strengthBar(level strength.Strength, width int) string {
	segments := int(strength.Strong) + 1
	block := strings.Repeat("█", max(width/segments, 1))

	fill := lipgloss.NewStyle().Foreground(strengthColors[level])
	track := lipgloss.NewStyle().Foreground(s.palette.track)

	parts := make([]string, segments)
	for i := range parts {
		if i <= int(level) {
			parts[i] = fill.Render(block)
		} else {
			parts[i] = track.Render(block)
		}
	}
	return strings.Join(parts, " ")
}
