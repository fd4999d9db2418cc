// Package output handles colored terminal messages for ue-setup
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes user-facing status lines
type Printer struct {
	out     io.Writer
	err     io.Writer
	removed *color.Color
	warning *color.Color
	failure *color.Color
	success *color.Color
	detail  *color.Color
	verbose bool
	colored bool
}

// NewPrinter creates a printer writing status to out and diagnostics to errOut
func NewPrinter(out, errOut io.Writer, colorMode string, verbose bool) *Printer {
	p := &Printer{
		out:     out,
		err:     errOut,
		removed: color.New(color.FgYellow),
		warning: color.New(color.FgRed),
		failure: color.New(color.FgRed, color.Bold),
		success: color.New(color.FgGreen),
		detail:  color.New(color.Faint),
		verbose: verbose,
		colored: shouldUseColor(colorMode, out),
	}

	for _, c := range []*color.Color{p.removed, p.warning, p.failure, p.success, p.detail} {
		if p.colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func shouldUseColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Removed reports a deleted path
func (p *Printer) Removed(path string, dryRun bool) {
	if dryRun {
		p.removed.Fprintf(p.out, "> Would remove %s\n", path)
		return
	}
	p.removed.Fprintf(p.out, "> Removed %s\n", path)
}

// Warning reports a non-fatal problem
func (p *Printer) Warning(format string, args ...any) {
	p.warning.Fprintf(p.out, "> "+format+"\n", args...)
}

// Error reports a fatal problem on the error stream
func (p *Printer) Error(format string, args ...any) {
	p.failure.Fprintf(p.err, "> "+format+"\n", args...)
}

// Success reports a completed step
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, "> "+format+"\n", args...)
}

// Info prints a plain status line
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "> "+format+"\n", args...)
}

// Verbose prints a dimmed line when verbose output is on
func (p *Printer) Verbose(format string, args ...any) {
	if !p.verbose {
		return
	}
	p.detail.Fprintf(p.out, "  "+format+"\n", args...)
}

// Summary prints a boxed list of key/value lines
func (p *Printer) Summary(title string, rows [][2]string) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	var body strings.Builder
	body.WriteString(title)
	for _, row := range rows {
		body.WriteString(fmt.Sprintf("\n%-*s  %s", width, row[0], row[1]))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if p.colored {
		style = style.BorderForeground(lipgloss.Color("2"))
	}

	fmt.Fprintln(p.out, style.Render(body.String()))
}
