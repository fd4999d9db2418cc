package commands

import (
	"github.com/mitchellh/cli"
)

// GenerateCommand regenerates project files without cleaning
type GenerateCommand struct {
	BaseCommand
}

// GenerateOptions holds command-line options for the generate command
type GenerateOptions struct {
	CommonOptions
	EngineOptions
	ProjectOptions
}

// Help returns the help text for the generate command
func (c *GenerateCommand) Help() string {
	var opts GenerateOptions
	return c.HelpFor(&opts)
}

// Synopsis returns a short description of the generate command
func (c *GenerateCommand) Synopsis() string {
	return "Regenerate project files with UnrealBuildTool"
}

// Run executes the generate command
func (c *GenerateCommand) Run(args []string) int {
	var opts GenerateOptions
	if status, ok := c.parse(&opts, args); !ok {
		return status
	}

	p := c.printer(opts.CommonOptions)
	ctx, cancel := commandContext()
	defer cancel()

	w, err := newWorkflow(c.env(), p, opts.Config, opts.Project)
	if err != nil {
		return reportError(p, err)
	}

	enginePath, err := w.resolveEngine(opts.Engine)
	if err != nil {
		return reportError(p, err)
	}

	projectFile, err := w.resolveProject(opts.Project)
	if err != nil {
		return reportError(p, err)
	}

	if _, err := w.generate(ctx, enginePath, projectFile); err != nil {
		return reportError(p, err)
	}

	return ExitSuccess
}

// GenerateCommandFactory creates a new generate command instance
func GenerateCommandFactory() (cli.Command, error) {
	return NewGenerateCommand(nil), nil
}

// NewGenerateCommand creates a generate command running against env
func NewGenerateCommand(env *Environment) *GenerateCommand {
	return &GenerateCommand{BaseCommand: BaseCommand{
		Env:         env,
		Name:        "generate",
		Description: "Regenerate IDE project files for a project without cleaning it.",
		Examples: []Example{
			{Command: AppName + " generate --engine UE_5.4 --project MyGame.uproject"},
		},
		Variables: []Variable{engineVariable},
	}}
}
