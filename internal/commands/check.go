package commands

import (
	"github.com/mitchellh/cli"
)

// CheckCommand reports applications that would block a cleanup
type CheckCommand struct {
	BaseCommand
}

// CheckOptions holds command-line options for the check command
type CheckOptions struct {
	CommonOptions
	ProjectOptions
}

// Help returns the help text for the check command
func (c *CheckCommand) Help() string {
	var opts CheckOptions
	return c.HelpFor(&opts)
}

// Synopsis returns a short description of the check command
func (c *CheckCommand) Synopsis() string {
	return "Check that no IDE or editor holds the project"
}

// Run executes the check command
func (c *CheckCommand) Run(args []string) int {
	var opts CheckOptions
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

	projectFile, err := w.resolveProject(opts.Project)
	if err != nil {
		return reportError(p, err)
	}

	if err := w.checkConflicts(ctx, projectFile); err != nil {
		return reportError(p, err)
	}

	p.Success("No running application holds %s.", projectFile)
	return ExitSuccess
}

// CheckCommandFactory creates a new check command instance
func CheckCommandFactory() (cli.Command, error) {
	return NewCheckCommand(nil), nil
}

// NewCheckCommand creates a check command running against env
func NewCheckCommand(env *Environment) *CheckCommand {
	return &CheckCommand{BaseCommand: BaseCommand{
		Env:         env,
		Name:        "check",
		Description: "Check that Visual Studio and unreal editors holding the project are closed.",
		Examples: []Example{
			{Command: AppName + " check --project MyGame.uproject"},
		},
		Notes: []string{
			"Any running Visual Studio instance counts as holding the project.",
			"An editor counts when its command line names the project file.",
		},
	}}
}
