package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/kilo/buffer"
	"github.com/iw2rmb/kilo/keys"
)

// Update applies one key to the session.
//
// Every key other than Quit resets the quit confirmation counter. Keys are
// ignored once the session is terminating.
func (m Model) Update(k keys.Key) Model {
	if m.state == StateTerminating {
		return m
	}
	if m.prompt.active {
		return m.updatePrompt(k).scroll()
	}

	km := m.keymap
	switch {
	case key.Matches(k, km.Quit):
		return m.quit()

	case key.Matches(k, km.Save):
		m = m.Save()

	case key.Matches(k, km.Enter):
		m.cursor = m.doc.InsertNewline(m.cursor)

	case key.Matches(k, km.Left):
		m.cursor = m.doc.Move(m.cursor, buffer.DirLeft)
	case key.Matches(k, km.Right):
		m.cursor = m.doc.Move(m.cursor, buffer.DirRight)
	case key.Matches(k, km.Up):
		m.cursor = m.doc.Move(m.cursor, buffer.DirUp)
	case key.Matches(k, km.Down):
		m.cursor = m.doc.Move(m.cursor, buffer.DirDown)

	case key.Matches(k, km.PageUp):
		m = m.page(buffer.DirUp)
	case key.Matches(k, km.PageDown):
		m = m.page(buffer.DirDown)

	case key.Matches(k, km.Home):
		m.cursor = m.doc.Move(m.cursor, buffer.DirHome)
	case key.Matches(k, km.End):
		m.cursor = m.doc.Move(m.cursor, buffer.DirEnd)

	case key.Matches(k, km.Backspace):
		m.cursor = m.doc.DeleteBefore(m.cursor)
	case key.Matches(k, km.Delete):
		m.cursor = m.doc.DeleteBefore(m.doc.Move(m.cursor, buffer.DirRight))

	case key.Matches(k, km.Refresh):
		// redraw only

	default:
		if k.Kind == keys.KindByte && k.Byte < 0x80 {
			m.cursor = m.doc.InsertChar(m.cursor, k.Byte)
		}
	}

	m.quitTimes = m.cfg.QuitTimes
	return m.scroll()
}

// page jumps to the top or bottom screen row, then steps a full screen in dir
// one row at a time.
func (m Model) page(dir buffer.MoveDir) Model {
	rows := max(m.viewport.Rows, 1)
	if dir == buffer.DirUp {
		m.cursor.Row = m.viewport.RowOffset
	} else {
		m.cursor.Row = min(m.viewport.RowOffset+rows-1, m.doc.RowCount())
	}
	for range rows {
		m.cursor = m.doc.Move(m.cursor, dir)
	}
	return m
}

func (m Model) quit() Model {
	if m.doc.IsDirty() && m.quitTimes > 0 {
		m.quitTimes--
		if m.quitTimes > 0 {
			m.log.Info("quit refused, unsaved changes", "dirty", m.doc.Dirty(), "remaining", m.quitTimes)
			return m.SetStatus(fmt.Sprintf(
				"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.quitTimes))
		}
	}
	m.log.Info("quit", "dirty", m.doc.Dirty())
	m.state = StateTerminating
	return m
}
