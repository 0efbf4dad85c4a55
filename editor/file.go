package editor

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// Open loads filename into the document and records it as the save target.
//
// A missing file leaves the document empty; the name is still recorded so the
// first save creates it. Any other read error is returned.
func (m Model) Open(filename string) (Model, error) {
	m.filename = filename

	data, err := afero.ReadFile(m.cfg.Fs, filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.log.Info("new file", "file", filename)
			m.doc.Load("")
			m.cursor = m.doc.ClampPos(m.cursor)
			return m.scroll(), nil
		}
		return m, fmt.Errorf("open %s: %w", filename, err)
	}

	m.doc.Load(string(data))
	m.cursor = m.doc.ClampPos(m.cursor)
	m.log.Info("opened file", "file", filename, "rows", m.doc.RowCount(), "bytes", len(data))
	return m.scroll(), nil
}

// Save writes the document to the recorded file name, creating or truncating
// it. Without a file name a save-as prompt opens first. The outcome is
// reported in the status message.
func (m Model) Save() Model {
	if m.filename == "" {
		return m.openSaveAsPrompt()
	}

	text := m.doc.Text()
	if err := afero.WriteFile(m.cfg.Fs, m.filename, []byte(text), 0o644); err != nil {
		m.log.Warn("save failed", "file", m.filename, "error", err)
		return m.SetStatus(fmt.Sprintf("Can't save! I/O error: %v", err))
	}

	m.doc.MarkClean()
	m.log.Info("saved file", "file", m.filename, "bytes", len(text))
	return m.SetStatus(humanize.Comma(int64(len(text))) + " bytes written to disk")
}
