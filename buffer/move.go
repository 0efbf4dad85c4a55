package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // row start
	DirEnd  // row end
)

// Move returns p moved one step in dir.
//
// Left at column 0 wraps to the end of the previous row and Right at the end
// of a row wraps to column 0 of the next one. Down may reach the past-last-row
// position. The column is snapped to the length of the destination row.
func (d *Document) Move(p Pos, dir MoveDir) Pos {
	p = d.clampPos(p)
	row, col := p.Row, p.Col
	n := len(d.rows)

	switch dir {
	case DirLeft:
		if col > 0 {
			col--
		} else if row > 0 {
			row--
			col = d.lineLen(row)
		}
	case DirRight:
		if row < n {
			if col < d.lineLen(row) {
				col++
			} else {
				row++
				col = 0
			}
		}
	case DirUp:
		if row > 0 {
			row--
		}
	case DirDown:
		if row < n {
			row++
		}
	case DirHome:
		col = 0
	case DirEnd:
		col = d.lineLen(row)
	}

	return Pos{Row: row, Col: minInt(col, d.lineLen(row))}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
