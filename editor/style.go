package editor

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style controls the inverse-video parts of the frame.
type Style struct {
	StatusBar   lipgloss.Style
	ControlByte lipgloss.Style
}

// DefaultStyle returns styles bound to a renderer pinned to the ANSI profile,
// so frames carry the same bytes with or without a terminal attached.
func DefaultStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	inverse := r.NewStyle().Reverse(true)
	return Style{
		StatusBar:   inverse,
		ControlByte: inverse,
	}
}
