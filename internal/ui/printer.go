package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes themed status messages.
type Printer struct {
	theme  *Theme
	writer io.Writer
}

// NewPrinter creates a Printer writing to os.Stdout.
func NewPrinter(theme *Theme) *Printer {
	return &Printer{theme: theme, writer: os.Stdout}
}

// NewPrinterWriter creates a Printer with a custom writer (for testing).
func NewPrinterWriter(theme *Theme, w io.Writer) *Printer {
	return &Printer{theme: theme, writer: w}
}

// Title prints a bold section heading.
func (p *Printer) Title(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Title(fmt.Sprintf(format, args...)))
}

// Step prints a plain progress line.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// Success prints a line marked with a check.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Success("✓ "+fmt.Sprintf(format, args...)))
}

// Warning prints a line marked with an exclamation mark.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Warning("! "+fmt.Sprintf(format, args...)))
}

// Error prints a line marked with a cross.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Error("✗ "+fmt.Sprintf(format, args...)))
}

// Muted prints a dimmed detail line.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.writer, p.theme.Muted(fmt.Sprintf(format, args...)))
}
