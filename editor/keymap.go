package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
//
// Binding keys are matched against keys.Key.String().
type KeyMap struct {
	Quit, Save key.Binding

	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	// Refresh keys are swallowed instead of being inserted.
	Refresh key.Binding

	// Prompt editing.
	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl-Q", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl-S", "save")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter", "newline")),

		Refresh: key.NewBinding(key.WithKeys("esc", "ctrl+l"), key.WithHelp("ctrl+l", "refresh")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// HelpLine returns the startup hint, e.g. "HELP: Ctrl-S = save | Ctrl-Q = quit".
func (km KeyMap) HelpLine() string {
	var parts []string
	for _, b := range []key.Binding{km.Save, km.Quit} {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" = "+h.Desc)
	}
	return "HELP: " + strings.Join(parts, " | ")
}
