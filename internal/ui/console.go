package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is a terminal device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Console prints coloured status lines. Success, warning, and info lines go
// to Out; errors go to Err.
type Console struct {
	Out io.Writer
	Err io.Writer

	out styles
	err styles
}

// NewConsole creates a Console writing to out and errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		Out: out,
		Err: errOut,
		out: newStyles(lipgloss.NewRenderer(out)),
		err: newStyles(lipgloss.NewRenderer(errOut)),
	}
}

// Success prints msg in green.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.Out, c.out.success.Render(msg))
}

// Warn prints msg in amber.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.Out, c.out.warning.Render(msg))
}

// Muted prints msg in gray.
func (c *Console) Muted(msg string) {
	fmt.Fprintln(c.Out, c.out.muted.Render(msg))
}

// Error prints "<context> <err>" to Err with the context in red.
func (c *Console) Error(context string, err error) {
	if err == nil {
		fmt.Fprintln(c.Err, c.err.err.Render(context))
		return
	}
	fmt.Fprintf(c.Err, "%s %v\n", c.err.err.Render(context), err)
}
