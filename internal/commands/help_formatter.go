package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jessevdk/go-flags"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// HelpFormatter renders command help: description, options, examples,
// environment variables and notes
type HelpFormatter struct {
	Command     string
	Description string
	Examples    []Example
	Variables   []Variable
	Notes       []string
}

// Example represents a command example
type Example struct {
	Command     string
	Description string
}

// Variable documents an environment variable a command reads
type Variable struct {
	Name        string
	Description string
}

// FormatHelp generates help text for a command. The options block comes
// from parser and is omitted when parser is nil.
func (h *HelpFormatter) FormatHelp(parser *flags.Parser) string {
	var b strings.Builder

	if h.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", h.Description)
	}

	if parser != nil {
		parser.WriteHelp(&b)
		b.WriteString("\n")
	}

	width := 0
	for _, example := range h.Examples {
		if example.Description != "" {
			width = max(width, len(example.Command))
		}
	}
	examples := make([]string, 0, len(h.Examples))
	for _, example := range h.Examples {
		if example.Description == "" {
			examples = append(examples, example.Command)
			continue
		}
		examples = append(examples, fmt.Sprintf("%-*s  # %s", width, example.Command, example.Description))
	}
	writeSection(&b, "Examples:", examples)

	width = 0
	for _, v := range h.Variables {
		width = max(width, len(v.Name))
	}
	variables := make([]string, 0, len(h.Variables))
	for _, v := range h.Variables {
		variables = append(variables, fmt.Sprintf("%-*s  %s", width, v.Name, v.Description))
	}
	writeSection(&b, "Environment:", variables)

	notes := make([]string, 0, len(h.Notes))
	for _, note := range h.Notes {
		notes = append(notes, "• "+note)
	}
	writeSection(&b, "Notes:", notes)

	return b.String()
}

func writeSection(b *strings.Builder, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.WriteString(headingStyle.Render(heading) + "\n")
	for _, line := range lines {
		fmt.Fprintf(b, "  %s\n", line)
	}
	b.WriteString("\n")
}
