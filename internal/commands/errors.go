package commands

import (
	"errors"

	"github.com/blairham/ue-setup/pkg/engine"
	"github.com/blairham/ue-setup/pkg/generator"
	"github.com/blairham/ue-setup/pkg/output"
	"github.com/blairham/ue-setup/pkg/process"
)

// reportError prints the diagnostic for a fatal error and returns the exit status.
// It is the only place a failed step turns into a process exit status.
func reportError(p *output.Printer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		cfgErr      *engine.ConfigurationError
		notFound    *engine.PathNotFoundError
		missingTool *generator.MissingToolError
		conflict    *process.ConflictingProcessError
	)

	switch {
	case errors.As(err, &cfgErr):
		p.Error("Can't find epic games installation directory as %s environment variable.", cfgErr.Variable)
	case errors.As(err, &notFound) && notFound.Kind == engine.KindEngine:
		p.Error("Invalid unreal engine path :%s", notFound.Path)
	case errors.As(err, &notFound):
		p.Error("Target uproject path isn't valid: %s", notFound.Path)
	case errors.As(err, &missingTool):
		p.Error("Can't find build script %s", missingTool.Path)
	case errors.As(err, &conflict) && conflict.Application == process.IDE:
		p.Error("Please close visual studio before running %s.", AppName)
		p.Verbose("%s (pid %d) is running", conflict.Process.Name, conflict.Process.PID)
	case errors.As(err, &conflict):
		p.Error("Please close unreal editor before running %s.", AppName)
		p.Verbose("%s (pid %d) has the project open", conflict.Process.Name, conflict.Process.PID)
	default:
		p.Error("%v", err)
	}

	return ExitFailure
}
