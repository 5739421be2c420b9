package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate       key.Binding
	Copy           key.Binding
	Fill           key.Binding
	Longer         key.Binding
	Shorter        key.Binding
	Uppercase      key.Binding
	Lowercase      key.Binding
	Numbers        key.Binding
	Symbols        key.Binding
	ExcludeSimilar key.Binding
	Theme          key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(
			key.WithKeys("g", "enter", " "),
			key.WithHelp("g/enter", "generate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Fill: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fill page"),
		),
		Longer: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+/→", "longer"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-/←", "shorter"),
		),
		Uppercase: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "A-Z"),
		),
		Lowercase: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "a-z"),
		),
		Numbers: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "0-9"),
		),
		Symbols: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "symbols"),
		),
		ExcludeSimilar: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "no look-alikes"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Fill, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Copy, k.Fill},
		{k.Longer, k.Shorter, k.Theme},
		{k.Uppercase, k.Lowercase, k.Numbers, k.Symbols, k.ExcludeSimilar},
		{k.Help, k.Quit},
	}
}
