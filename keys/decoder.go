package keys

import (
	"errors"
	"io"
	"log/slog"
)

type state int

const (
	stateNormal state = iota
	stateSawEscape
	stateSawBracketOrO
	stateAwaitingTilde
)

// Decoder turns a byte stream into Keys.
//
// The source is expected to return io.EOF (or a zero-byte read) when no byte
// arrived within the terminal read timeout.
type Decoder struct {
	r   io.Reader
	log *slog.Logger

	buf [1]byte
}

// NewDecoder returns a decoder reading from r. logger may be nil.
func NewDecoder(r io.Reader, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{r: r, log: logger}
}

// ReadKey returns the next key.
//
// io.EOF is returned only when no byte at all arrived; callers treat it as an
// idle tick. Once an escape byte was read, a timeout yields the Escape key.
// Any other read error is returned as is.
func (d *Decoder) ReadKey() (Key, error) {
	st := stateNormal
	var digit byte

	for {
		b, err := d.readByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Key{}, err
			}
			if st == stateNormal {
				return Key{}, io.EOF
			}
			return Literal(Escape), nil
		}

		switch st {
		case stateNormal:
			if b != Escape {
				return Literal(b), nil
			}
			st = stateSawEscape

		case stateSawEscape:
			if b != '[' && b != 'O' {
				return d.unrecognized(b), nil
			}
			st = stateSawBracketOrO

		case stateSawBracketOrO:
			switch {
			case b == 'A':
				return Named(KindArrowUp), nil
			case b == 'B':
				return Named(KindArrowDown), nil
			case b == 'C':
				return Named(KindArrowRight), nil
			case b == 'D':
				return Named(KindArrowLeft), nil
			case b == 'H':
				return Named(KindHome), nil
			case b == 'F':
				return Named(KindEnd), nil
			case b >= '1' && b <= '9':
				digit = b
				st = stateAwaitingTilde
			default:
				return d.unrecognized(b), nil
			}

		case stateAwaitingTilde:
			if b != '~' {
				return d.unrecognized(digit, b), nil
			}
			if k, ok := tildeKeys[digit]; ok {
				return Named(k), nil
			}
			return d.unrecognized(digit, b), nil
		}
	}
}

var tildeKeys = map[byte]Kind{
	'1': KindHome,
	'3': KindDelete,
	'4': KindEnd,
	'5': KindPageUp,
	'6': KindPageDown,
	'7': KindHome,
	'8': KindEnd,
}

func (d *Decoder) unrecognized(tail ...byte) Key {
	d.log.Debug("unrecognized escape sequence", "component", "keys", "tail", string(tail))
	return Literal(Escape)
}

func (d *Decoder) readByte() (byte, error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}
