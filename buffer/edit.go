package buffer

// InsertChar inserts c at p and returns the cursor after the inserted byte.
// Inserting on the past-last-row position first appends an empty row.
func (d *Document) InsertChar(p Pos, c byte) Pos {
	if p.Row < 0 || p.Row > len(d.rows) {
		return p
	}
	if p.Row == len(d.rows) {
		d.InsertRow(len(d.rows), "")
	}
	p = d.clampPos(p)

	d.rows[p.Row].InsertChar(p.Col, c)
	d.dirty++
	return Pos{Row: p.Row, Col: p.Col + 1}
}

// InsertNewline breaks row p.Row at p.Col and returns the start of the next row.
func (d *Document) InsertNewline(p Pos) Pos {
	if p.Row < 0 || p.Row > len(d.rows) {
		return p
	}
	p = d.clampPos(p)

	if p.Col == 0 {
		d.InsertRow(p.Row, "")
		return Pos{Row: p.Row + 1, Col: 0}
	}

	suffix := d.rows[p.Row].Split(p.Col)
	d.InsertRow(p.Row+1, suffix)
	return Pos{Row: p.Row + 1, Col: 0}
}

// DeleteBefore applies backspace semantics at p and returns the new cursor.
//
// At the start of a row the row is joined onto the previous one. (0, 0) and
// the past-last-row position are no-ops.
func (d *Document) DeleteBefore(p Pos) Pos {
	if p.Row < 0 || p.Row >= len(d.rows) {
		return p
	}
	p = d.clampPos(p)
	if p.Row == 0 && p.Col == 0 {
		return p
	}

	if p.Col > 0 {
		d.rows[p.Row].DeleteChar(p.Col - 1)
		d.dirty++
		return Pos{Row: p.Row, Col: p.Col - 1}
	}

	// Join with previous row (delete the newline).
	prevRow := p.Row - 1
	joinCol := d.rows[prevRow].Len()
	d.rows[prevRow].Append(d.rows[p.Row].Chars())
	d.DeleteRow(p.Row)
	return Pos{Row: prevRow, Col: joinCol}
}
