package editor

import "github.com/iw2rmb/kilo/buffer"

// Viewport is the visible window onto the document.
//
// Rows and Cols are the text area size in cells. RowOffset is a document row,
// ColOffset a render column.
type Viewport struct {
	Rows, Cols int

	RowOffset int
	ColOffset int
}

// Scroll moves the offsets the least amount needed to keep cursor visible and
// returns the cursor's render column.
func (v *Viewport) Scroll(doc *buffer.Document, cursor buffer.Pos) int {
	rx := 0
	if cursor.Row < doc.RowCount() {
		rx = doc.RenderX(cursor)
	}

	rows := max(v.Rows, 1)
	cols := max(v.Cols, 1)

	if cursor.Row < v.RowOffset {
		v.RowOffset = cursor.Row
	}
	if cursor.Row >= v.RowOffset+rows {
		v.RowOffset = cursor.Row - rows + 1
	}
	if rx < v.ColOffset {
		v.ColOffset = rx
	}
	if rx >= v.ColOffset+cols {
		v.ColOffset = rx - cols + 1
	}
	return rx
}
