package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the shell's global key bindings. The two mode-switch
// chords work everywhere; ToggleDock applies in editor mode only. The
// per-session actions belong to the terminal view's own key map.
type KeyMap struct {
	EditorMode   key.Binding
	TerminalMode key.Binding
	ToggleDock   key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		EditorMode: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "editor mode"),
		),
		TerminalMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "terminal mode"),
		),
		ToggleDock: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("ctrl+j", "toggle dock panel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
