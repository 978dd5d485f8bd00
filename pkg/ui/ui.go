// Package ui writes operator-facing messages. Success and error messages are
// coloured when the output is a terminal; the colours are cosmetic and never
// carry meaning on their own.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Printer writes line-oriented messages to an output stream.
type Printer struct {
	w       io.Writer
	color   bool
	success lipgloss.Style
	failure lipgloss.Style
}

// New returns a Printer writing to w. Colours are only applied when color is
// true.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:       w,
		color:   color,
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Print writes a message without a trailing newline. Used for prompts.
func (p *Printer) Print(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

// Info writes a plain message line.
func (p *Printer) Info(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Success writes a message line in the success colour.
func (p *Printer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.render(p.success, fmt.Sprintf(format, args...)))
}

// Error writes a message line in the error colour.
func (p *Printer) Error(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.render(p.failure, fmt.Sprintf(format, args...)))
}

// render styles each line on its own so multi-line messages aren't padded to
// a common width.
func (p *Printer) render(style lipgloss.Style, msg string) string {
	if !p.color {
		return msg
	}

	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
