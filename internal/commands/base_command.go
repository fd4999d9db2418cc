package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"

	"github.com/blairham/ue-setup/pkg/engine"
	"github.com/blairham/ue-setup/pkg/generator"
	"github.com/blairham/ue-setup/pkg/output"
	"github.com/blairham/ue-setup/pkg/process"
)

// errHelpShown is returned by ParseArgsWithHelp after printing help
var errHelpShown = errors.New("help shown")

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Env         *Environment
	Name        string
	Description string
	Examples    []Example
	Variables   []Variable
	Notes       []string
}

// Environment holds the process-level collaborators commands run against
type Environment struct {
	LookupEnv engine.LookupFunc
	Lister    process.Lister
	Runner    generator.Runner
	Stdout    io.Writer
	Stderr    io.Writer
}

// DefaultEnvironment uses the real process environment, process table and terminal
func DefaultEnvironment() *Environment {
	return &Environment{
		LookupEnv: os.LookupEnv,
		Lister:    process.SystemLister{},
		Runner:    generator.ExecRunner{},
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// CommonOptions defines options shared across all commands
type CommonOptions struct {
	Color   string `long:"color"   description:"Whether to use color in output"       choice:"auto" choice:"always" choice:"never" default:"auto"`
	Config  string `long:"config"  description:"Path to a settings file (default: .ue-setup.yaml next to the project)" short:"c"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"                                                short:"v"`
}

// engineVariable documents the variable read by commands taking EngineOptions
var engineVariable = Variable{
	Name:        "EPIC_DIR",
	Description: "Directory holding the engine installations (engine_root_env in settings)",
}

// EngineOptions selects the engine installation
type EngineOptions struct {
	Engine string `long:"engine" description:"Unreal engine folder name (e.g UE_5.4)" short:"e" required:"true"`
}

// ProjectOptions selects the project descriptor
type ProjectOptions struct {
	Project string `long:"project" description:"Project .uproject path" short:"p" required:"true"`
}

// env returns the command environment, the real one when unset
func (bc *BaseCommand) env() *Environment {
	if bc.Env == nil {
		bc.Env = DefaultEnvironment()
	}
	return bc.Env
}

// newParser creates a parser for opts writing help and errors to the environment
func (bc *BaseCommand) newParser(opts any) *flags.Parser {
	parser := flags.NewNamedParser(AppName+" "+bc.Name, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = OptionsUsage
	if _, err := parser.AddGroup("Application Options", "", opts); err != nil {
		panic(fmt.Sprintf("invalid options for %s: %v", bc.Name, err))
	}
	return parser
}

// ParseArgsWithHelp parses arguments and handles help display
func (bc *BaseCommand) ParseArgsWithHelp(opts any, args []string) ([]string, error) {
	parser := bc.newParser(opts)

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprint(bc.env().Stdout, bc.GenerateHelp(parser))
			return nil, errHelpShown
		}
		return nil, fmt.Errorf("error parsing arguments: %w", err)
	}

	return remaining, nil
}

// GenerateHelp creates standardized help output
func (bc *BaseCommand) GenerateHelp(parser *flags.Parser) string {
	formatter := &HelpFormatter{
		Command:     bc.Name,
		Description: bc.Description,
		Examples:    bc.Examples,
		Variables:   bc.Variables,
		Notes:       bc.Notes,
	}
	return formatter.FormatHelp(parser)
}

// HelpFor renders help for a command using its options struct
func (bc *BaseCommand) HelpFor(opts any) string {
	return bc.GenerateHelp(bc.newParser(opts))
}

// parse handles argument parsing for Run. It returns false with the exit
// status when the command should stop.
func (bc *BaseCommand) parse(opts any, args []string) (int, bool) {
	remaining, err := bc.ParseArgsWithHelp(opts, args)
	if errors.Is(err, errHelpShown) {
		return ExitSuccess, false
	}
	if err != nil {
		fmt.Fprintf(bc.env().Stderr, "Error: %v\n", err)
		return ExitFailure, false
	}
	if len(remaining) > 0 {
		fmt.Fprintf(bc.env().Stderr, "Error: unexpected arguments: %v\n", remaining)
		return ExitFailure, false
	}
	return ExitSuccess, true
}

// printer creates the output printer for common options
func (bc *BaseCommand) printer(opts CommonOptions) *output.Printer {
	env := bc.env()
	return output.NewPrinter(env.Stdout, env.Stderr, opts.Color, opts.Verbose)
}

// commandContext returns a context cancelled on interrupt
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
