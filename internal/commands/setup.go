package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mitchellh/cli"
)

// SetupCommand cleans a project and regenerates its project files
type SetupCommand struct {
	BaseCommand
}

// SetupOptions holds command-line options for the setup command
type SetupOptions struct {
	CommonOptions
	EngineOptions
	ProjectOptions
	DryRun bool `long:"dry-run" description:"Report what would be removed without deleting or regenerating" short:"n"`
}

// Help returns the help text for the setup command
func (c *SetupCommand) Help() string {
	var opts SetupOptions
	return c.HelpFor(&opts)
}

// Synopsis returns a short description of the setup command
func (c *SetupCommand) Synopsis() string {
	return "Clean and regenerate unreal engine project files"
}

// Run executes the setup command
func (c *SetupCommand) Run(args []string) int {
	var opts SetupOptions
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

	if err := w.checkConflicts(ctx, projectFile); err != nil {
		return reportError(p, err)
	}

	summary, err := w.clean(projectFile, opts.DryRun)
	if err != nil {
		return reportError(p, err)
	}

	rows := [][2]string{
		{"Engine", enginePath},
		{"Project", projectFile},
		{"Removed", strconv.Itoa(len(summary.Removed))},
		{"Plugins", strconv.Itoa(summary.PluginsScanned)},
	}

	if opts.DryRun {
		p.Info("Dry run: skipping project file generation.")
		if opts.Verbose {
			p.Summary(AppName+" (dry run)", rows)
		}
		return ExitSuccess
	}

	result, err := w.generate(ctx, enginePath, projectFile)
	if err != nil {
		return reportError(p, err)
	}

	status := "regenerated"
	if !result.Success {
		status = fmt.Sprintf("failed (exit code %d)", result.ExitCode)
	}
	rows = append(rows,
		[2]string{"Projects", status},
		[2]string{"Duration", result.Duration.Round(time.Millisecond).String()},
	)

	if opts.Verbose {
		p.Summary(AppName, rows)
	}

	return ExitSuccess
}

// SetupCommandFactory creates a new setup command instance
func SetupCommandFactory() (cli.Command, error) {
	return NewSetupCommand(nil), nil
}

// NewSetupCommand creates a setup command running against env
func NewSetupCommand(env *Environment) *SetupCommand {
	return &SetupCommand{BaseCommand: BaseCommand{
		Env:         env,
		Name:        "setup",
		Description: "Clean generated build output of an unreal engine project and regenerate its project files.",
		Examples: []Example{
			{
				Command:     AppName + " setup --engine UE_5.4 --project MyGame/MyGame.uproject",
				Description: "Clean and regenerate",
			},
			{
				Command:     AppName + " setup -e UE_5.4 -p MyGame.uproject --dry-run",
				Description: "Show what would be removed",
			},
		},
		Variables: []Variable{engineVariable},
		Notes: []string{
			"Running " + AppName + " with options and no command runs setup.",
			"Removed directories: .vs, Binaries, DerivedDataCache, Intermediate and Saved,",
			"plus solution files, in the project folder and each folder under Plugins.",
			"Visual Studio and any unreal editor holding the project must be closed first.",
			"A failed regeneration is reported but does not change the exit status.",
		},
	}}
}
