// Package generator launches the engine build tool to regenerate IDE project files.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/blairham/ue-setup/pkg/config"
)

// MissingToolError reports that the build tool is not installed in the engine
type MissingToolError struct {
	Path string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("can't find build tool %s", e.Path)
}

// Result describes a finished build tool run
type Result struct {
	Command  []string
	Duration time.Duration
	ExitCode int
	Success  bool
	TimedOut bool
}

// Runner starts a command and waits for it
type Runner interface {
	Run(cmd *exec.Cmd) error
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run starts cmd and waits for it to finish
func (ExecRunner) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

// Generator regenerates project files through the build tool
type Generator struct {
	runner Runner
	stdout io.Writer
	stderr io.Writer
	tool   config.BuildTool
}

// New creates a generator. Output of the build tool goes to stdout and stderr.
func New(tool config.BuildTool, runner Runner, stdout, stderr io.Writer) *Generator {
	if runner == nil {
		runner = ExecRunner{}
	}
	tool.Args = append([]string(nil), tool.Args...)
	return &Generator{runner: runner, stdout: stdout, stderr: stderr, tool: tool}
}

// ToolPath returns the build tool location under enginePath
func (g *Generator) ToolPath(enginePath string) (string, error) {
	path := filepath.Join(enginePath, g.tool.Path)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", &MissingToolError{Path: path}
	}
	return path, nil
}

// Command returns the argument list used to regenerate projectFile
func (g *Generator) Command(toolPath, projectFile string) []string {
	command := make([]string, 0, len(g.tool.Args)+2)
	if g.tool.Runner != "" {
		command = append(command, g.tool.Runner)
	}
	command = append(command, toolPath)
	for _, arg := range g.tool.Args {
		command = append(command, strings.ReplaceAll(arg, config.ProjectPlaceholder, projectFile))
	}
	return command
}

// Generate runs the build tool for projectFile from within enginePath.
// A non-zero exit is reported through Result, not as an error.
func (g *Generator) Generate(ctx context.Context, enginePath, projectFile string) (*Result, error) {
	toolPath, err := g.ToolPath(enginePath)
	if err != nil {
		return nil, err
	}

	if g.tool.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.tool.Timeout)
		defer cancel()
	}

	command := g.Command(toolPath, projectFile)
	cmd := exec.CommandContext(ctx, command[0], command[1:]...) // #nosec G204 -- command comes from settings
	cmd.Dir = enginePath
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr

	result := &Result{Command: command}
	start := time.Now()
	runErr := g.runner.Run(cmd)
	result.Duration = time.Since(start)

	if runErr == nil {
		result.Success = true
		return result, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return result, fmt.Errorf("failed to launch %s: %w", command[0], runErr)
}
