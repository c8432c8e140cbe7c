package viewer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
	// Help is advertised in the status bar but not implemented yet, so it
	// stays disabled and never matches.
	Help key.Binding
}

var defaultKeys = keyMap{
	// q quits whatever modifier is held, except shift.
	Quit: key.NewBinding(
		key.WithKeys("q", "alt+q", "ctrl+q", "alt+ctrl+q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
		key.WithDisabled(),
	),
}
