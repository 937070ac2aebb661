package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea) that reads keys from the
// command's input if that input is a terminal, and calls interrupt when the
// user quits it. When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool, interrupt func()) UI {
	if !useTTY {
		return NewSimpleUI(cmd)
	}

	options := []TUIOption{WithInterrupt(interrupt)}
	if in := cmd.InOrStdin(); isTerminalReader(in) {
		options = append(options, WithInput(in))
	}

	return NewTUI(cmd.OutOrStdout(), options...)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

func isTerminalReader(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
