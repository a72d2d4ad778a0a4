package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings recognised by the picker
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Confirm   key.Binding
	Backspace key.Binding
	Abort     key.Binding
}

// DefaultKeyMap returns the fixed picker bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "alt+k"),
			key.WithHelp("↑/alt+k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "alt+j"),
			key.WithHelp("↓/alt+j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h", "delete"),
			key.WithHelp("bksp", "erase"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+d"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Abort}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Confirm, k.Backspace, k.Abort},
	}
}
