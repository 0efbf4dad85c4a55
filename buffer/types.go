package buffer

// Pos points into the logical document by (row, col) in bytes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of rows.
// - lineLen(row) returns the byte length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row <= rowCount (Row == rowCount is the past-last-row position)
// - 0 <= Col <= lineLen(Row), and Col == 0 past the last row
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount < 0 {
		rowCount = 0
	}

	row := clampInt(p.Row, 0, rowCount)
	if row == rowCount {
		return Pos{Row: row, Col: 0}
	}

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, maxCol)}
}
