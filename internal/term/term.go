// Package term owns the controlling terminal: raw mode, window size, and
// buffered frame output.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned when standard input is not a terminal.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// Read timeout in tenths of a second (VTIME) for raw-mode reads.
const readTimeout = 1

const clearScreen = "\x1b[2J\x1b[H"

// Terminal reads raw bytes from in and writes buffered output to out.
type Terminal struct {
	in  *os.File
	out *os.File
	w   *bufio.Writer

	origTermios *unix.Termios
	inRawMode   bool
}

// New wraps the given input and output. Pass nil to use os.Stdin/os.Stdout.
func New(in, out *os.File) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{
		in:  in,
		out: out,
		w:   bufio.NewWriterSize(out, 64*1024),
	}
}

// Size returns the terminal dimensions in character cells.
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("get window size: invalid size %dx%d", cols, rows)
	}
	return rows, cols, nil
}

// EnableRawMode switches the input terminal to raw mode: no echo, no
// canonical line editing, no signal keys, 8-bit characters, and reads that
// return after readTimeout with zero bytes. The returned restore func puts
// the original attributes back; it is safe to call more than once.
func (t *Terminal) EnableRawMode() (restore func() error, err error) {
	fd := int(t.in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("failed to get termios: %w", err)
	}
	t.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: return after readTimeout even with no input
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = readTimeout

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, fmt.Errorf("failed to set raw mode: %w", err)
	}
	t.inRawMode = true

	return t.restore, nil
}

// restore clears the screen and puts the original terminal attributes back.
func (t *Terminal) restore() error {
	if !t.inRawMode {
		return nil
	}
	t.inRawMode = false

	_, _ = t.w.WriteString(clearScreen)
	flushErr := t.w.Flush()

	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlSetTermios, t.origTermios); err != nil {
		return fmt.Errorf("failed to restore termios: %w", err)
	}
	return flushErr
}

// Read reads raw input bytes. A read timeout surfaces as io.EOF.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write buffers p until Flush.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Flush sends buffered output to the terminal.
func (t *Terminal) Flush() error {
	return t.w.Flush()
}
