package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/blairham/ue-setup/pkg/cleaner"
	"github.com/blairham/ue-setup/pkg/config"
	"github.com/blairham/ue-setup/pkg/engine"
	"github.com/blairham/ue-setup/pkg/generator"
	"github.com/blairham/ue-setup/pkg/output"
	"github.com/blairham/ue-setup/pkg/process"
)

// workflow runs the individual steps shared by the commands
type workflow struct {
	env      *Environment
	printer  *output.Printer
	settings config.Settings
}

// newWorkflow loads settings from configPath, or from the settings file next
// to projectPath when configPath is empty
func newWorkflow(env *Environment, p *output.Printer, configPath, projectPath string) (*workflow, error) {
	var (
		settings config.Settings
		err      error
	)

	if configPath != "" {
		settings, err = config.Load(configPath)
	} else {
		absProject, absErr := filepath.Abs(projectPath)
		if absErr != nil {
			return nil, fmt.Errorf("failed to resolve project path: %w", absErr)
		}
		settings, configPath, err = config.Discover(filepath.Dir(absProject))
	}
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		p.Verbose("Using settings from %s", configPath)
	}

	return &workflow{env: env, printer: p, settings: settings}, nil
}

func (w *workflow) resolveEngine(version string) (string, error) {
	enginePath, err := engine.Resolve(w.env.LookupEnv, w.settings.EngineRootEnv, version)
	if err != nil {
		return "", err
	}
	w.printer.Verbose("Engine installation: %s", enginePath)
	return enginePath, nil
}

func (w *workflow) resolveProject(path string) (string, error) {
	projectFile, isProject, err := engine.ResolveProject(path)
	if err != nil {
		return "", err
	}
	if !isProject {
		w.printer.Warning("%s is not a %s file", projectFile, engine.ProjectExtension)
	}
	w.printer.Verbose("Project file: %s", projectFile)
	return projectFile, nil
}

// checkConflicts fails when the IDE or an editor holding the project is running
func (w *workflow) checkConflicts(ctx context.Context, projectFile string) error {
	scanner := process.NewScanner(w.env.Lister)
	return scanner.CheckConflicts(
		ctx,
		w.settings.IDEProcesses,
		w.settings.EditorProcesses,
		projectFile,
	)
}

func (w *workflow) clean(projectFile string, dryRun bool) (*cleaner.Summary, error) {
	c := cleaner.New(cleaner.Options{
		ArtifactDirectories: w.settings.ArtifactDirectories,
		SolutionExtension:   w.settings.SolutionExtension,
		PluginsDirectory:    w.settings.PluginsDirectory,
		DryRun:              dryRun,
	}, w.printer)

	return c.CleanProject(projectFile)
}

// generate runs the build tool. A failed regeneration is reported and is not
// returned as an error.
func (w *workflow) generate(ctx context.Context, enginePath, projectFile string) (*generator.Result, error) {
	gen := generator.New(w.settings.BuildTool, w.env.Runner, w.env.Stdout, w.env.Stderr)

	toolPath, err := gen.ToolPath(enginePath)
	if err != nil {
		return nil, err
	}

	w.printer.Info("Launch Project Build :")
	w.printer.Verbose("%v", gen.Command(toolPath, projectFile))

	result, err := gen.Generate(ctx, enginePath, projectFile)
	if err != nil {
		return result, err
	}

	switch {
	case result.Success:
		w.printer.Success("Project files regenerated.")
	case result.TimedOut:
		w.printer.Warning("Project files regeneration timed out after %s.", w.settings.BuildTool.Timeout)
	default:
		w.printer.Warning("Project files regeneration failed (exit code %d).", result.ExitCode)
	}

	return result, nil
}
