package editor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/iw2rmb/kilo/buffer"
)

// State is the session lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Model is one editing session.
//
// Model is a value type; every method that changes state returns the updated
// Model. The document itself is shared between copies.
type Model struct {
	cfg    Config
	keymap KeyMap
	style  Style
	log    *slog.Logger

	doc    *buffer.Document
	cursor buffer.Pos
	rx     int

	viewport Viewport

	filename   string
	statusMsg  string
	statusTime time.Time

	quitTimes int
	prompt    prompt
	state     State
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:       cfg,
		keymap:    *cfg.KeyMap,
		style:     *cfg.Style,
		log:       cfg.Logger.With("component", "editor"),
		doc:       buffer.New(buffer.Options{TabStop: cfg.TabStop}),
		viewport:  Viewport{Rows: 1, Cols: 1},
		quitTimes: cfg.QuitTimes,
	}
	return m.SetStatus(m.keymap.HelpLine())
}

func (m Model) Document() *buffer.Document { return m.doc }

func (m Model) Cursor() buffer.Pos { return m.cursor }

// RenderX is the cursor's render column as of the last scroll.
func (m Model) RenderX() int { return m.rx }

func (m Model) Viewport() Viewport { return m.viewport }

func (m Model) Filename() string { return m.filename }

func (m Model) State() State { return m.state }

// SetSize sets the terminal size. Two rows are reserved for the status and
// message bars; at least one text row always remains.
func (m Model) SetSize(cols, rows int) Model {
	m.viewport.Cols = max(cols, 1)
	m.viewport.Rows = max(rows-2, 1)
	return m.scroll()
}

// SetCursor moves the cursor to p clamped into the document.
func (m Model) SetCursor(p buffer.Pos) Model {
	m.cursor = m.doc.ClampPos(p)
	return m.scroll()
}

// SetStatus sets the message bar text and restarts its expiry.
func (m Model) SetStatus(msg string) Model {
	m.statusMsg = msg
	m.statusTime = m.cfg.Now()
	return m
}

// StatusMessage returns the message bar text, or "" once it expired.
func (m Model) StatusMessage() string {
	if m.prompt.active {
		return m.prompt.String()
	}
	if m.statusMsg == "" || m.cfg.Now().Sub(m.statusTime) >= m.cfg.MessageTimeout {
		return ""
	}
	return m.statusMsg
}

func (m Model) scroll() Model {
	m.rx = m.viewport.Scroll(m.doc, m.cursor)
	return m
}
