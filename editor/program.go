package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/iw2rmb/kilo/keys"
)

type flusher interface {
	Flush() error
}

// Program runs a Model against a key source and a frame sink.
type Program struct {
	model Model
	dec   *keys.Decoder
	out   io.Writer
	log   *slog.Logger
}

// NewProgram returns a program reading keys from in and writing frames to out.
// When out has a Flush() error method it is called after every frame.
//
// in must report a read timeout as io.EOF or a zero-byte read; Run keeps
// polling until a key arrives.
func NewProgram(m Model, in io.Reader, out io.Writer) *Program {
	return &Program{
		model: m,
		dec:   keys.NewDecoder(in, m.cfg.Logger),
		out:   out,
		log:   m.log,
	}
}

// Run renders, reads a key and dispatches it until the session terminates.
// It returns the final model, or the first fatal I/O error.
func (p *Program) Run() (Model, error) {
	for p.model.State() != StateTerminating {
		if err := p.render(); err != nil {
			return p.model, err
		}

		k, err := p.readKey()
		if err != nil {
			return p.model, err
		}
		p.model = p.model.Update(k)
	}
	return p.model, nil
}

func (p *Program) render() error {
	if _, err := io.WriteString(p.out, p.model.View()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if f, ok := p.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}
	}
	return nil
}

func (p *Program) readKey() (keys.Key, error) {
	for {
		k, err := p.dec.ReadKey()
		if err == nil {
			return k, nil
		}
		if !errors.Is(err, io.EOF) {
			p.log.Error("read failed", "error", err)
			return keys.Key{}, fmt.Errorf("read key: %w", err)
		}
	}
}
