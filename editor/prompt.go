package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/kilo/keys"
)

// prompt is the message bar input used to ask for a file name.
type prompt struct {
	active bool
	label  string
	text   string
}

func (p prompt) String() string {
	return p.label + p.text + " (ESC to cancel)"
}

func (m Model) openSaveAsPrompt() Model {
	m.prompt = prompt{active: true, label: "Save as: "}
	return m
}

// updatePrompt edits the prompt text. Enter on empty text keeps the prompt
// open.
func (m Model) updatePrompt(k keys.Key) Model {
	km := m.keymap
	switch {
	case key.Matches(k, km.Cancel):
		m.prompt = prompt{}
		return m.SetStatus("Save aborted")

	case key.Matches(k, km.Backspace), key.Matches(k, km.Delete):
		if n := len(m.prompt.text); n > 0 {
			m.prompt.text = m.prompt.text[:n-1]
		}

	case key.Matches(k, km.Enter):
		if m.prompt.text == "" {
			return m
		}
		m.filename = m.prompt.text
		m.prompt = prompt{}
		m = m.SetStatus("")
		return m.Save()

	default:
		if k.Kind == keys.KindByte && k.Byte >= 0x20 && k.Byte < 0x7f {
			m.prompt.text += string(rune(k.Byte))
		}
	}
	return m
}
