package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the landing screen.
type KeyMap struct {
	// Global keys
	Quit key.Binding
	Help key.Binding

	// Focus
	FocusNext key.Binding
	FocusPrev key.Binding
	Activate  key.Binding

	// Scrolling the main panel
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Shortcuts
	NewCase  key.Binding
	Theme    key.Binding
	Quick    key.Binding
	Standard key.Binding
	Complex  key.Binding
	Admin    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "scroll down"),
		),
		NewCase: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new case"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quick: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "quick case"),
		),
		Standard: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "standard case"),
		),
		Complex: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "complex case"),
		),
		Admin: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "admin"),
		),
	}
}

// ShortHelp returns the short help text for the key map.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Activate, k.Theme, k.Help, k.Quit}
}

// FullHelp returns the full help text for the key map.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.Activate},
		{k.Quick, k.Standard, k.Complex},
		{k.NewCase, k.Theme, k.Admin},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}
