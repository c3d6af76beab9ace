package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all scoreboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Game list
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Previous key.Binding
	Next     key.Binding

	// Box score
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Refresh key.Binding
	Date    key.Binding
	Today   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "cancel/close"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select game"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous game"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next game"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll box score up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "pagedown"),
			key.WithHelp("pgdn", "scroll box score down"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "update scores"),
		),
		Date: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "pick a date"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "back to today"),
		),
	}
}

// helpBindings lists the bindings shown in the help modal, in order.
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Enter, k.Previous, k.Next,
		k.PageUp, k.PageDown,
		k.Refresh, k.Date, k.Today,
		k.Help, k.Escape, k.Quit, k.ForceQuit,
	}
}
