package buffer

import "strings"

type Options struct {
	TabStop int // default: DefaultTabStop
}

// Document is the ordered sequence of rows plus the dirty counter.
//
// dirty grows on every structural or content mutation and is reset by Load
// and MarkClean.
type Document struct {
	rows  []Row
	dirty int

	opt Options
}

func New(opt Options) *Document {
	if opt.TabStop <= 0 {
		opt.TabStop = DefaultTabStop
	}
	return &Document{opt: opt}
}

// Load replaces the content with text split on '\n'. A trailing '\r' is
// stripped from each line. Empty text loads as a document with no rows.
func (d *Document) Load(text string) {
	d.rows = nil
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSuffix(line, "\r")
			d.InsertRow(len(d.rows), line)
		}
	}
	d.dirty = 0
}

// Text joins all rows with a single '\n'; there is no trailing newline.
func (d *Document) Text() string {
	if len(d.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(d.rows[i].chars)
	}
	return sb.String()
}

func (d *Document) TabStop() int { return d.opt.TabStop }

func (d *Document) RowCount() int { return len(d.rows) }

func (d *Document) Dirty() int { return d.dirty }

func (d *Document) IsDirty() bool { return d.dirty != 0 }

// MarkClean resets the dirty counter after the content was persisted.
func (d *Document) MarkClean() { d.dirty = 0 }

// Line returns the content of row y, or "" when y is out of range.
func (d *Document) Line(y int) string {
	if y < 0 || y >= len(d.rows) {
		return ""
	}
	return d.rows[y].Chars()
}

// Render returns the tab-expanded form of row y, or "" when y is out of range.
func (d *Document) Render(y int) string {
	if y < 0 || y >= len(d.rows) {
		return ""
	}
	return d.rows[y].Render()
}

// RenderX returns the render column of p, or 0 when p is past the last row.
func (d *Document) RenderX(p Pos) int {
	if p.Row < 0 || p.Row >= len(d.rows) {
		return 0
	}
	return d.rows[p.Row].RenderX(p.Col)
}

// InsertRow inserts a row holding text before index at. at == RowCount()
// appends; other out-of-range indices are ignored.
func (d *Document) InsertRow(at int, text string) {
	if at < 0 || at > len(d.rows) {
		return
	}
	d.rows = append(d.rows, Row{})
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = NewRow(text, d.opt.TabStop)
	d.dirty++
}

// DeleteRow removes row at and hands it to the caller.
func (d *Document) DeleteRow(at int) (Row, bool) {
	if at < 0 || at >= len(d.rows) {
		return Row{}, false
	}
	removed := d.rows[at]
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = Row{}
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty++
	return removed, true
}

func (d *Document) lineLen(row int) int {
	if row < 0 || row >= len(d.rows) {
		return 0
	}
	return len(d.rows[row].chars)
}

func (d *Document) clampPos(p Pos) Pos {
	return ClampPos(p, len(d.rows), d.lineLen)
}

// ClampPos clamps p into the current document bounds.
func (d *Document) ClampPos(p Pos) Pos { return d.clampPos(p) }
