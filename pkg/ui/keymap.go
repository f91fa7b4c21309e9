package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Scan       key.Binding
	Clear      key.Binding
	ToggleCase key.Binding
	Focus      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Scan: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "scan expression"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear editor"),
	),
	ToggleCase: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle keyword case sensitivity"),
	),
	Focus: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "switch editor/tokens"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("ctrl+h", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Scan, k.Clear, k.ToggleCase, k.Focus, k.Help, k.Quit}
}
