package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/kilo"
	"github.com/iw2rmb/kilo/keys"
)

// Terminal control sequences written into every frame.
const (
	seqHideCursor   = "\x1b[?25l"
	seqShowCursor   = "\x1b[?25h"
	seqCursorHome   = "\x1b[H"
	seqClearLine    = "\x1b[K"
	seqLineBreak    = "\r\n"
	fillerMarker    = "~"
	maxStatusName   = 20
	statusNoName    = "[No Name]"
	statusModified  = "(modified)"
	statusSeparator = " - "
)

// View renders a complete frame: text rows, status bar, message bar and the
// final cursor placement. The caller writes it in one go.
func (m Model) View() string {
	var sb strings.Builder
	sb.Grow((m.viewport.Rows + 2) * (m.viewport.Cols + 8))

	sb.WriteString(seqHideCursor)
	sb.WriteString(seqCursorHome)

	m.drawRows(&sb)
	m.drawStatusBar(&sb)
	m.drawMessageBar(&sb)

	fmt.Fprintf(&sb, "\x1b[%d;%dH",
		m.cursor.Row-m.viewport.RowOffset+1,
		m.rx-m.viewport.ColOffset+1)
	sb.WriteString(seqShowCursor)
	return sb.String()
}

func (m Model) drawRows(sb *strings.Builder) {
	rows, cols := m.viewport.Rows, m.viewport.Cols
	n := m.doc.RowCount()

	for y := range rows {
		fileRow := y + m.viewport.RowOffset
		switch {
		case fileRow < n:
			m.drawText(sb, m.doc.Render(fileRow), m.viewport.ColOffset, cols)
		case n == 0 && y == rows/3:
			drawWelcome(sb, cols)
		default:
			sb.WriteString(fillerMarker)
		}
		sb.WriteString(seqClearLine)
		sb.WriteString(seqLineBreak)
	}
}

func drawWelcome(sb *strings.Builder, cols int) {
	welcome := kilo.Banner()
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		sb.WriteString(fillerMarker)
		padding--
	}
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(welcome)
}

// drawText writes render[off:off+cols]. Control bytes are shown in the
// ControlByte style as '@'+b, or '?' when there is no such letter.
func (m Model) drawText(sb *strings.Builder, render string, off, cols int) {
	if off >= len(render) {
		return
	}
	line := render[off:]
	if len(line) > cols {
		line = line[:cols]
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if !keys.Literal(c).IsCtrl() {
			sb.WriteByte(c)
			continue
		}
		sym := "?"
		if c <= 26 {
			sym = string(rune('@' + c))
		}
		sb.WriteString(m.style.ControlByte.Render(sym))
	}
}

func (m Model) drawStatusBar(sb *strings.Builder) {
	cols := m.viewport.Cols

	name := m.filename
	if name == "" {
		name = statusNoName
	}
	name = runewidth.Truncate(name, maxStatusName, "")

	left := fmt.Sprintf("%s%s%d lines", name, statusSeparator, m.doc.RowCount())
	if m.doc.IsDirty() {
		left += " " + statusModified
	}
	right := fmt.Sprintf("%d/%d", m.cursor.Row+1, m.doc.RowCount())

	left = runewidth.Truncate(left, cols, "")
	width := runewidth.StringWidth(left)

	var bar strings.Builder
	bar.WriteString(left)
	for width < cols {
		if cols-width == len(right) {
			bar.WriteString(right)
			break
		}
		bar.WriteByte(' ')
		width++
	}
	sb.WriteString(m.style.StatusBar.Render(bar.String()))
	sb.WriteString(seqLineBreak)
}

func (m Model) drawMessageBar(sb *strings.Builder) {
	sb.WriteString(seqClearLine)
	if msg := m.StatusMessage(); msg != "" {
		sb.WriteString(runewidth.Truncate(msg, m.viewport.Cols, ""))
	}
}
