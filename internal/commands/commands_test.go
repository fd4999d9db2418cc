package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairham/ue-setup/pkg/process"
)

func TestFactories(t *testing.T) {
	factories := Factories()

	for _, name := range []string{"setup", "clean", "generate", "check", "help"} {
		factory, ok := factories[name]
		require.True(t, ok, "missing command %s", name)

		cmd, err := factory()
		require.NoError(t, err)
		assert.NotEmpty(t, cmd.Synopsis())
		assert.NotEmpty(t, cmd.Help())
	}
}

func TestGeneralHelp(t *testing.T) {
	help := GeneralHelp(Factories())

	assert.True(t, strings.HasPrefix(help, "Usage: ue-setup"))
	for _, name := range []string{"check", "clean", "generate", "setup"} {
		assert.Contains(t, help, "    "+name)
	}
	assert.Less(t, strings.Index(help, "    check"), strings.Index(help, "    setup"), "commands are sorted")
}

func TestCLI_RunsSetup(t *testing.T) {
	te := newTestEnv(t)

	c := cli.NewCLI(AppName, "test")
	c.Args = []string{"setup", "--engine", "UE_5.4", "--project", te.project}
	c.HelpFunc = GeneralHelp
	c.Commands = map[string]cli.CommandFactory{
		"setup": func() (cli.Command, error) { return NewSetupCommand(te.Environment), nil },
	}

	status, err := c.Run()
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, status, te.stderr.String())
	assert.False(t, exists(te.path("Binaries")))
}

func TestCLI_FlagsOnlyRunsSetup(t *testing.T) {
	te := newTestEnv(t)

	c := cli.NewCLI(AppName, "test")
	c.Args = CommandArgs([]string{"--engine", "UE_5.4", "--project", te.project, "--color", "never"})
	c.HelpFunc = GeneralHelp
	c.Commands = map[string]cli.CommandFactory{
		"setup": func() (cli.Command, error) { return NewSetupCommand(te.Environment), nil },
	}

	status, err := c.Run()
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, status, te.stderr.String())
	assert.Len(t, te.runner.cmds, 1)
	assert.False(t, exists(te.path("MyGame.sln")))
	assert.False(t, exists(te.path("Plugins", "Tool", "Binaries")))
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no args", args: nil, want: nil},
		{name: "command", args: []string{"clean", "-p", "x"}, want: []string{"clean", "-p", "x"}},
		{name: "long flags", args: []string{"--engine", "UE_5.4"}, want: []string{"setup", "--engine", "UE_5.4"}},
		{name: "short flags", args: []string{"-e", "UE_5.4", "-p", "x"}, want: []string{"setup", "-e", "UE_5.4", "-p", "x"}},
		{name: "help", args: []string{"--help"}, want: []string{"--help"}},
		{name: "short help", args: []string{"-h"}, want: []string{"-h"}},
		{name: "version", args: []string{"--version"}, want: []string{"--version"}},
		{name: "short version", args: []string{"-v"}, want: []string{"-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandArgs(tt.args))
		})
	}
}

func TestHelpCommand_Run(t *testing.T) {
	var out bytes.Buffer
	cmd := &HelpCommand{BaseCommand: BaseCommand{
		Name: "help",
		Env:  &Environment{Stdout: &out, Stderr: &out},
	}}

	assert.Equal(t, ExitSuccess, cmd.Run(nil))
	assert.Contains(t, out.String(), "Available commands:")

	out.Reset()
	assert.Equal(t, ExitSuccess, cmd.Run([]string{"clean"}))
	assert.Contains(t, out.String(), "--dry-run")

	out.Reset()
	assert.Equal(t, ExitFailure, cmd.Run([]string{"bogus"}))
	assert.Contains(t, out.String(), "Unknown command: bogus")
}

func TestCleanCommand_Run(t *testing.T) {
	te := newTestEnv(t)
	delete(te.vars, "EPIC_DIR") // clean does not need the engine
	cmd := NewCleanCommand(te.Environment)

	status := cmd.Run([]string{"--project", te.project, "--color", "never"})
	require.Equal(t, ExitSuccess, status, te.stderr.String())

	assert.False(t, exists(te.path("Binaries")))
	assert.False(t, exists(te.path("Plugins", "Tool", "Binaries")))
	assert.True(t, exists(te.path("Source")))
	assert.Empty(t, te.runner.cmds)
}

func TestCleanCommand_Run_NoPlugins(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, os.RemoveAll(te.path("Plugins")))
	cmd := NewCleanCommand(te.Environment)

	status := cmd.Run([]string{"--project", te.project, "--color", "never"})
	require.Equal(t, ExitSuccess, status, te.stderr.String())
	assert.Contains(t, te.stdout.String(), "Can't find plugins directory : "+te.path("Plugins"))
}

func TestCleanCommand_Run_Idempotent(t *testing.T) {
	te := newTestEnv(t)
	cmd := NewCleanCommand(te.Environment)

	require.Equal(t, ExitSuccess, cmd.Run([]string{"-p", te.project, "--color", "never"}))

	te.stdout.Reset()
	require.Equal(t, ExitSuccess, cmd.Run([]string{"-p", te.project, "--color", "never", "-v"}))
	assert.NotContains(t, te.stdout.String(), "Removed")
	assert.Contains(t, te.stdout.String(), "Nothing to clean.")
}

func TestCleanCommand_Run_ConflictAborts(t *testing.T) {
	te := newTestEnv(t)
	te.lister.records = []process.Record{{PID: 1, Name: "DEVENV.EXE"}}
	cmd := NewCleanCommand(te.Environment)

	assert.Equal(t, ExitFailure, cmd.Run([]string{"--project", te.project}))
	assert.True(t, exists(te.path("Binaries")))
}

func TestCleanCommand_Run_ProjectInsideFile(t *testing.T) {
	te := newTestEnv(t)
	cmd := NewCleanCommand(te.Environment)

	status := cmd.Run([]string{"--project", filepath.Join(te.project, "Nested.uproject")})
	assert.Equal(t, ExitFailure, status)
	assert.Contains(t, te.stderr.String(), "Target uproject path isn't valid")
	assert.True(t, exists(te.path("Binaries")))
}

func TestGenerateCommand_Run(t *testing.T) {
	te := newTestEnv(t)
	cmd := NewGenerateCommand(te.Environment)

	status := cmd.Run([]string{"--engine", "UE_5.4", "--project", te.project, "--color", "never"})
	require.Equal(t, ExitSuccess, status, te.stderr.String())

	require.Len(t, te.runner.cmds, 1)
	assert.True(t, exists(te.path("Binaries")), "generate does not clean")
	assert.Contains(t, te.stdout.String(), "Project files regenerated.")
}

func TestGenerateCommand_Run_MissingEngine(t *testing.T) {
	te := newTestEnv(t)
	cmd := NewGenerateCommand(te.Environment)

	assert.Equal(t, ExitFailure, cmd.Run([]string{"--engine", "UE_4.0", "--project", te.project}))
	assert.Empty(t, te.runner.cmds)
}

func TestCheckCommand_Run(t *testing.T) {
	te := newTestEnv(t)
	cmd := NewCheckCommand(te.Environment)

	assert.Equal(t, ExitSuccess, cmd.Run([]string{"--project", te.project, "--color", "never"}))
	assert.Contains(t, te.stdout.String(), "No running application holds")
	assert.True(t, exists(te.path("Binaries")))

	te.lister.records = []process.Record{
		{PID: 3, Name: "UE4Editor.exe", Args: []string{"UE4Editor.exe", strings.ToUpper(te.project)}},
	}
	assert.Equal(t, ExitFailure, cmd.Run([]string{"--project", te.project, "--color", "never", "-v"}))
	assert.Contains(t, te.stderr.String(), "Please close unreal editor")
	assert.Contains(t, te.stdout.String(), "UE4Editor.exe (pid 3) has the project open")
}
