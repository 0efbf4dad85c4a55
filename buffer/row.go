package buffer

// DefaultTabStop is the render column multiple a tab advances to.
const DefaultTabStop = 8

// Row is one line of text. chars is the source of truth; render is chars
// with tabs expanded and is rebuilt after every mutation of chars.
type Row struct {
	chars  []byte
	render []byte

	tabStop int
}

// NewRow returns a row holding a copy of text.
func NewRow(text string, tabStop int) Row {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	r := Row{chars: []byte(text), tabStop: tabStop}
	r.update()
	return r
}

// Chars returns the row content.
func (r *Row) Chars() string { return string(r.chars) }

// Render returns the row content with tabs expanded.
func (r *Row) Render() string { return string(r.render) }

// Len returns the byte length of the row content.
func (r *Row) Len() int { return len(r.chars) }

// InsertChar inserts c at byte offset at. Offsets outside [0, Len()] are ignored.
func (r *Row) InsertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		return
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update()
}

// DeleteChar removes the byte at offset at. Offsets outside [0, Len()) are ignored.
func (r *Row) DeleteChar(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
}

// Split truncates the row to [0, at) and returns the removed suffix.
func (r *Row) Split(at int) string {
	at = clampInt(at, 0, len(r.chars))
	suffix := string(r.chars[at:])
	r.chars = r.chars[:at:at]
	r.update()
	return suffix
}

// Append concatenates text onto the row.
func (r *Row) Append(text string) {
	r.chars = append(r.chars, text...)
	r.update()
}

// RenderX maps a byte offset into chars to a column of the render form.
// It is recomputed on every call.
func (r *Row) RenderX(cx int) int {
	cx = clampInt(cx, 0, len(r.chars))
	tab := r.tabWidth()
	rx := 0
	for _, c := range r.chars[:cx] {
		if c == '\t' {
			rx += (tab - 1) - (rx % tab)
		}
		rx++
	}
	return rx
}

func (r *Row) tabWidth() int {
	if r.tabStop <= 0 {
		return DefaultTabStop
	}
	return r.tabStop
}

func (r *Row) update() {
	tab := r.tabWidth()
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(tab-1))
	for _, c := range r.chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%tab != 0 {
			render = append(render, ' ')
		}
	}
	r.render = render
}
