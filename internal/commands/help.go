package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/cli"
)

// Factories returns every command keyed by its name
func Factories() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"check":    CheckCommandFactory,
		"clean":    CleanCommandFactory,
		"generate": GenerateCommandFactory,
		"help":     HelpCommandFactory,
		"setup":    SetupCommandFactory,
	}
}

// CommandArgs returns args with DefaultCommand in front when they start
// with a command flag, so "ue-setup -e UE_5.4 -p MyGame.uproject" runs setup.
// Help and version flags are left for the CLI.
func CommandArgs(args []string) []string {
	if len(args) == 0 || !strings.HasPrefix(args[0], "-") {
		return args
	}

	switch args[0] {
	case "-h", "-help", "--help", "-v", "-version", "--version":
		return args
	}

	return append([]string{DefaultCommand}, args...)
}

// HelpCommand handles the help command functionality
type HelpCommand struct {
	BaseCommand
}

// Help returns the help text for the help command
func (c *HelpCommand) Help() string {
	return fmt.Sprintf(`Show help for a specific command.

Usage: %s help [COMMAND]

If COMMAND is specified, shows detailed help for that command.
If no command is specified, shows general help.
`, AppName)
}

// Synopsis returns a short description of the help command
func (c *HelpCommand) Synopsis() string {
	return "Show help for a specific command"
}

// Run executes the help command
func (c *HelpCommand) Run(args []string) int {
	out := c.env().Stdout
	factories := Factories()

	if len(args) == 0 {
		fmt.Fprint(out, GeneralHelp(factories))
		return ExitSuccess
	}

	factory, ok := factories[args[0]]
	if !ok {
		fmt.Fprintf(out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(out, GeneralHelp(factories))
		return ExitFailure
	}

	cmd, err := factory()
	if err != nil {
		fmt.Fprintf(c.env().Stderr, "Error: %v\n", err)
		return ExitFailure
	}

	fmt.Fprint(out, cmd.Help())
	return ExitSuccess
}

// GeneralHelp lists the available commands with their synopsis
func GeneralHelp(factories map[string]cli.CommandFactory) string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Usage: %s [--version] [--help] <command> [<args>]\n", AppName))
	b.WriteString(fmt.Sprintf("       %s <%s options>\n\n", AppName, DefaultCommand))
	b.WriteString("Clean and regenerate unreal engine project files.\n\n")
	b.WriteString("Available commands:\n")
	for _, name := range names {
		cmd, err := factories[name]()
		if err != nil {
			continue
		}
		b.WriteString(fmt.Sprintf("    %-12s%s\n", name, cmd.Synopsis()))
	}
	return b.String()
}

// HelpCommandFactory creates a new help command instance
func HelpCommandFactory() (cli.Command, error) {
	return &HelpCommand{BaseCommand: BaseCommand{Name: "help"}}, nil
}
