package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
}
