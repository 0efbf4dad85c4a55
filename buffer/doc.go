// Package buffer implements the byte-oriented document model of the editor.
//
// Coordinates are 0-based (Row, Col) where Col indexes the raw bytes of a row.
// Row may equal RowCount(), which is the insertion position past the last row.
// Out-of-range edits are silent no-ops.
package buffer
