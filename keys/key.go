package keys

import "fmt"

// Kind enumerates logical key events.
type Kind uint8

const (
	// KindByte is a literal input byte, see Key.Byte.
	KindByte Kind = iota
	KindArrowLeft
	KindArrowRight
	KindArrowUp
	KindArrowDown
	KindPageUp
	KindPageDown
	KindHome
	KindEnd
	KindDelete
)

// Control bytes the editor gives a meaning to.
const (
	Tab       byte = '\t'
	Enter     byte = '\r'
	Escape    byte = 0x1b
	Backspace byte = 0x7f
)

// Key is one decoded input event. Byte is meaningful only for KindByte.
type Key struct {
	Kind Kind
	Byte byte
}

// Literal returns the key for a literal byte.
func Literal(b byte) Key { return Key{Kind: KindByte, Byte: b} }

// Named returns the key for one of the navigation kinds.
func Named(k Kind) Key { return Key{Kind: k} }

// Ctrl returns the control chord for a letter, e.g. Ctrl('q') is 0x11.
func Ctrl(c byte) Key { return Literal(c & 0x1f) }

// IsCtrl reports whether k is a literal control byte.
func (k Key) IsCtrl() bool {
	return k.Kind == KindByte && (k.Byte < 0x20 || k.Byte == Backspace)
}

// String names the key the way key bindings refer to it ("ctrl+q", "left",
// "pgdown", "a").
func (k Key) String() string {
	switch k.Kind {
	case KindArrowLeft:
		return "left"
	case KindArrowRight:
		return "right"
	case KindArrowUp:
		return "up"
	case KindArrowDown:
		return "down"
	case KindPageUp:
		return "pgup"
	case KindPageDown:
		return "pgdown"
	case KindHome:
		return "home"
	case KindEnd:
		return "end"
	case KindDelete:
		return "delete"
	case KindByte:
		return byteName(k.Byte)
	default:
		return fmt.Sprintf("kind(%d)", k.Kind)
	}
}

func byteName(b byte) string {
	switch {
	case b == Tab:
		return "tab"
	case b == Enter:
		return "enter"
	case b == Escape:
		return "esc"
	case b == Backspace:
		return "backspace"
	case b == ' ':
		return "space"
	case b == 0:
		return "ctrl+@"
	case b < 0x1b:
		return "ctrl+" + string(rune('a'+b-1))
	case b < 0x20:
		return "ctrl+" + string(rune('@'+b))
	case b < 0x80:
		return string(rune(b))
	default:
		return fmt.Sprintf("0x%02x", b)
	}
}
