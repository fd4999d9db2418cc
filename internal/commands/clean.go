package commands

import (
	"github.com/mitchellh/cli"
)

// CleanCommand handles the clean command functionality
type CleanCommand struct {
	BaseCommand
}

// CleanOptions holds command-line options for the clean command
type CleanOptions struct {
	CommonOptions
	ProjectOptions
	DryRun bool `long:"dry-run" description:"Report what would be removed without deleting" short:"n"`
}

// Help returns the help text for the clean command
func (c *CleanCommand) Help() string {
	var opts CleanOptions
	return c.HelpFor(&opts)
}

// Synopsis returns a short description of the clean command
func (c *CleanCommand) Synopsis() string {
	return "Remove generated build output and solution files"
}

// Run executes the clean command
func (c *CleanCommand) Run(args []string) int {
	var opts CleanOptions
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

	summary, err := w.clean(projectFile, opts.DryRun)
	if err != nil {
		return reportError(p, err)
	}

	if len(summary.Removed) == 0 {
		p.Verbose("Nothing to clean.")
	}

	return ExitSuccess
}

// CleanCommandFactory creates a new clean command instance
func CleanCommandFactory() (cli.Command, error) {
	return NewCleanCommand(nil), nil
}

// NewCleanCommand creates a clean command running against env
func NewCleanCommand(env *Environment) *CleanCommand {
	return &CleanCommand{BaseCommand: BaseCommand{
		Env:         env,
		Name:        "clean",
		Description: "Remove generated build output and solution files from a project and its plugins.",
		Examples: []Example{
			{Command: AppName + " clean --project MyGame.uproject", Description: "Clean the project"},
			{Command: AppName + " clean -p MyGame.uproject --dry-run", Description: "Show what would be removed"},
		},
		Notes: []string{
			"Only the project folder and the folders directly under Plugins are cleaned.",
			"Removal is permanent.",
		},
	}}
}
