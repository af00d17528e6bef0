package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/mesto/pkg/form"
)

// keyMap holds the global bindings. Row navigation keys (tab, enter,
// arrows) are routed through the form first and are listed for help only.
type keyMap struct {
	Grow  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Clear key.Binding
	Copy  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Grow: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("tab/enter", "add place"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("↓/tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("↑/shift+tab", "previous"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear all"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy preview"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "done"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grow, k.Prev, k.Clear, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grow, k.Next, k.Prev},
		{k.Clear, k.Copy, k.Quit},
	}
}

// formKey translates a terminal key into the name the form controller sees.
func formKey(msg tea.KeyMsg) form.Key {
	switch msg.Type {
	case tea.KeyTab:
		return form.KeyTab
	case tea.KeyEnter:
		return form.KeyEnter
	}
	return form.Key(msg.String())
}
