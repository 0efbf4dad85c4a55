package buffer

import "testing"

func TestDocument_Move(t *testing.T) {
	d := New(Options{})
	d.Load("abc\nd\n\tx")

	cases := []struct {
		name string
		from Pos
		dir  MoveDir
		want Pos
	}{
		{name: "left", from: Pos{Row: 0, Col: 2}, dir: DirLeft, want: Pos{Row: 0, Col: 1}},
		{name: "left wraps to previous row end", from: Pos{Row: 1, Col: 0}, dir: DirLeft, want: Pos{Row: 0, Col: 3}},
		{name: "left at origin stays", from: Pos{Row: 0, Col: 0}, dir: DirLeft, want: Pos{Row: 0, Col: 0}},
		{name: "right", from: Pos{Row: 0, Col: 0}, dir: DirRight, want: Pos{Row: 0, Col: 1}},
		{name: "right wraps to next row start", from: Pos{Row: 0, Col: 3}, dir: DirRight, want: Pos{Row: 1, Col: 0}},
		{name: "right at last row end reaches past last row", from: Pos{Row: 2, Col: 2}, dir: DirRight, want: Pos{Row: 3, Col: 0}},
		{name: "right past last row stays", from: Pos{Row: 3, Col: 0}, dir: DirRight, want: Pos{Row: 3, Col: 0}},
		{name: "up snaps column", from: Pos{Row: 1, Col: 1}, dir: DirUp, want: Pos{Row: 0, Col: 1}},
		{name: "up at top stays", from: Pos{Row: 0, Col: 2}, dir: DirUp, want: Pos{Row: 0, Col: 2}},
		{name: "down snaps column", from: Pos{Row: 0, Col: 3}, dir: DirDown, want: Pos{Row: 1, Col: 1}},
		{name: "down reaches past last row", from: Pos{Row: 2, Col: 1}, dir: DirDown, want: Pos{Row: 3, Col: 0}},
		{name: "down past last row stays", from: Pos{Row: 3, Col: 0}, dir: DirDown, want: Pos{Row: 3, Col: 0}},
		{name: "home", from: Pos{Row: 0, Col: 2}, dir: DirHome, want: Pos{Row: 0, Col: 0}},
		{name: "end", from: Pos{Row: 2, Col: 0}, dir: DirEnd, want: Pos{Row: 2, Col: 2}},
		{name: "end past last row", from: Pos{Row: 3, Col: 0}, dir: DirEnd, want: Pos{Row: 3, Col: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Move(tc.from, tc.dir); got != tc.want {
				t.Fatalf("Move(%v, %v): got %v, want %v", tc.from, tc.dir, got, tc.want)
			}
		})
	}
}

func TestDocument_Move_EmptyDocument(t *testing.T) {
	d := New(Options{})
	for _, dir := range []MoveDir{DirLeft, DirRight, DirUp, DirDown, DirHome, DirEnd} {
		if got := d.Move(Pos{}, dir); got != (Pos{}) {
			t.Fatalf("Move on empty doc (%v): got %v, want origin", dir, got)
		}
	}
}
