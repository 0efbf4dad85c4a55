package editor

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/iw2rmb/kilo/buffer"
	"github.com/iw2rmb/kilo/keys"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	fs    afero.Fs
	clock *fakeClock
	cfg   Config
}

func newFixture() *fixture {
	clock := &fakeClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	fs := afero.NewMemMapFs()
	return &fixture{
		fs:    fs,
		clock: clock,
		cfg: Config{
			QuitTimes: 3,
			Fs:        fs,
			Now:       clock.Now,
		},
	}
}

func writeFile(f *fixture, name, text string) error {
	return afero.WriteFile(f.fs, name, []byte(text), 0o644)
}

func readFile(t *testing.T, f *fixture, name string) string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

// open writes text to name and returns an 80x26 model (24 text rows) with it
// loaded.
func (f *fixture) open(t *testing.T, name, text string) Model {
	t.Helper()
	if err := writeFile(f, name, text); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	m, err := New(f.cfg).SetSize(80, 26).Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	return m
}

func (f *fixture) empty() Model {
	return New(f.cfg).SetSize(80, 26)
}

func press(m Model, ks ...keys.Key) Model {
	for _, k := range ks {
		m = m.Update(k)
	}
	return m
}

func typeText(m Model, s string) Model {
	for i := 0; i < len(s); i++ {
		m = m.Update(keys.Literal(s[i]))
	}
	return m
}

func rowsOf(d *buffer.Document) []string {
	out := make([]string, d.RowCount())
	for i := range out {
		out[i] = d.Line(i)
	}
	return out
}

func assertRows(t *testing.T, m Model, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	if got := rowsOf(m.Document()); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, m Model, want buffer.Pos) {
	t.Helper()
	if got := m.Cursor(); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

// inverse is the byte form of a reverse-video span.
func inverse(s string) string { return "\x1b[7m" + s + "\x1b[0m" }

// frameLines strips the frame prologue and splits it at line breaks: text
// rows, then the status bar, then the message bar with the cursor epilogue.
func frameLines(t *testing.T, frame string) []string {
	t.Helper()
	if !strings.HasPrefix(frame, seqHideCursor+seqCursorHome) {
		t.Fatalf("frame prologue: got %q", frame)
	}
	if !strings.HasSuffix(frame, seqShowCursor) {
		t.Fatalf("frame epilogue: got %q", frame)
	}
	return strings.Split(strings.TrimPrefix(frame, seqHideCursor+seqCursorHome), seqLineBreak)
}
