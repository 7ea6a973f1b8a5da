// Package console writes the CLI's human-readable status lines. Progress goes
// to Out and failures go to Err, coloured when the writer is a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Console prints coloured status messages.
type Console struct {
	Out io.Writer
	Err io.Writer
	// Prefix is prepended to every line, e.g. "ngBoltJS: ".
	Prefix string
}

// New returns a Console writing to the given streams. Nil writers default to
// os.Stdout and os.Stderr.
func New(out, errw io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return &Console{Out: out, Err: errw}
}

// DisableColor turns off ANSI colours for all consoles.
func DisableColor() {
	color.NoColor = true
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
	strong = color.New(color.FgCyan, color.Bold)
)

// Info prints a cyan progress line.
func (c *Console) Info(format string, args ...any) {
	c.line(c.Out, cyan, format, args...)
}

// Success prints a green line.
func (c *Console) Success(format string, args ...any) {
	c.line(c.Out, green, format, args...)
}

// Warn prints a yellow line to the error stream.
func (c *Console) Warn(format string, args ...any) {
	c.line(c.Err, yellow, format, args...)
}

// Error prints a red line to the error stream.
func (c *Console) Error(format string, args ...any) {
	c.line(c.Err, red, format, args...)
}

// Plain prints an uncoloured line.
func (c *Console) Plain(format string, args ...any) {
	fmt.Fprintf(c.Out, "%s%s\n", c.Prefix, fmt.Sprintf(format, args...))
}

// Status prints "<symbol> message" with only the symbol coloured.
func (c *Console) Status(symbol, message string, attr color.Attribute) {
	fmt.Fprintf(c.Out, "%s%s %s\n", c.Prefix, color.New(attr).Sprint(symbol), message)
}

// Detail prints indented diagnostic text (e.g. subprocess stderr) to the error stream.
func (c *Console) Detail(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	for _, l := range strings.Split(text, "\n") {
		fmt.Fprintf(c.Err, "  %s\n", l)
	}
}

// Highlight renders s in bold cyan for embedding in other messages.
func Highlight(s string) string {
	return strong.Sprint(s)
}

// Bold renders s in bold.
func Bold(s string) string {
	return bold.Sprint(s)
}

func (c *Console) line(w io.Writer, col *color.Color, format string, args ...any) {
	fmt.Fprintf(w, "%s%s\n", c.Prefix, col.Sprintf(format, args...))
}
