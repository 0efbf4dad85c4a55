package editor

import (
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/iw2rmb/kilo/buffer"
)

const DefaultMessageTimeout = 5 * time.Second

// Config configures the editor Model.
type Config struct {
	// Forwarded to buffer.Options.
	TabStop int

	// Ctrl-Q presses needed to quit with unsaved changes. 0 and 1 both quit
	// on the first press.
	QuitTimes int

	// How long a status message stays visible.
	MessageTimeout time.Duration

	// Optional; nil discards.
	Logger *slog.Logger

	// Filesystem for Open and Save; nil means the OS filesystem.
	Fs afero.Fs

	// Clock for status message expiry; nil means time.Now.
	Now func() time.Time

	KeyMap *KeyMap

	// Nil means DefaultStyle().
	Style *Style
}

func (c Config) withDefaults() Config {
	if c.TabStop <= 0 {
		c.TabStop = buffer.DefaultTabStop
	}
	if c.QuitTimes < 0 {
		c.QuitTimes = 0
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = DefaultMessageTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.KeyMap == nil {
		km := DefaultKeyMap()
		c.KeyMap = &km
	}
	if c.Style == nil {
		st := DefaultStyle()
		c.Style = &st
	}
	return c
}
