package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/kilo"
	"github.com/iw2rmb/kilo/editor"
	"github.com/iw2rmb/kilo/internal/config"
	"github.com/iw2rmb/kilo/internal/log"
	"github.com/iw2rmb/kilo/internal/term"
)

func newRootCmd(in, out *os.File) *cobra.Command {
	return &cobra.Command{
		Use:           "kilo [file]",
		Short:         "A small terminal text editor",
		Long:          kilo.Banner() + "\n\nOpens file, or an empty unnamed buffer. Ctrl-S saves, Ctrl-Q quits.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) == 1 {
				filename = args[0]
			}
			return run(in, out, filename)
		},
	}
}

func run(in, out *os.File, filename string) error {
	cfg, err := config.Load(viper.New(), "")
	if err != nil {
		return err
	}

	logger, closeLog, err := log.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("init log: %w", err)
	}
	defer closeLog()

	t := term.New(in, out)
	restore, err := t.EnableRawMode()
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			logger.Error("restore terminal", "error", rerr)
		}
	}()

	rows, cols, err := t.Size()
	if err != nil {
		return err
	}

	m := editor.New(editor.Config{
		TabStop:        cfg.TabStop,
		QuitTimes:      cfg.QuitTimes,
		MessageTimeout: cfg.MessageTimeout,
		Logger:         logger,
	}).SetSize(cols, rows)

	if filename != "" {
		if m, err = m.Open(filename); err != nil {
			return err
		}
	}

	logger.Info("session start", "version", kilo.Version(), "file", filename, "rows", rows, "cols", cols)
	if _, err := editor.NewProgram(m, t, t).Run(); err != nil {
		return err
	}
	logger.Info("session end")
	return nil
}
