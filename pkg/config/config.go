// Package config provides settings loading and validation for ue-setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional settings file looked up next to the project file
const ConfigFileName = ".ue-setup.yaml"

// ProjectPlaceholder is replaced with the absolute project file path in build tool args
const ProjectPlaceholder = "{project}"

// Settings holds everything that tunes a ue-setup run
type Settings struct {
	EngineRootEnv       string    `yaml:"engine_root_env,omitempty"`
	SolutionExtension   string    `yaml:"solution_extension,omitempty"`
	PluginsDirectory    string    `yaml:"plugins_directory,omitempty"`
	ArtifactDirectories []string  `yaml:"artifact_directories,omitempty"`
	IDEProcesses        []string  `yaml:"ide_processes,omitempty"`
	EditorProcesses     []string  `yaml:"editor_processes,omitempty"`
	BuildTool           BuildTool `yaml:"build_tool,omitempty"`
}

// BuildTool describes how the project file generator is launched
type BuildTool struct {
	Runner  string        `yaml:"runner,omitempty"`
	Path    string        `yaml:"path,omitempty"`
	Args    []string      `yaml:"args,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		EngineRootEnv:     "EPIC_DIR",
		SolutionExtension: ".sln",
		PluginsDirectory:  "Plugins",
		ArtifactDirectories: []string{
			".vs",
			"Binaries",
			"DerivedDataCache",
			"Intermediate",
			"Saved",
		},
		IDEProcesses:    []string{"devenv.exe"},
		EditorProcesses: []string{"UE4Editor.exe", "UnrealEditor.exe"},
		BuildTool: BuildTool{
			Runner: "dotnet",
			Path: filepath.Join(
				"Engine", "Binaries", "DotNET", "UnrealBuildTool", "UnrealBuildTool.dll",
			),
			Args: []string{
				"-ProjectFiles",
				"-Project=" + ProjectPlaceholder,
				"-Game",
				"-Engine",
				"-Progress",
			},
		},
	}
}

// Load reads a settings file and overlays it on the defaults
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return settings, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return settings, nil
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	settings.merge(file)

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return settings, nil
}

// Discover loads ConfigFileName from projectDir when present, defaults otherwise.
// The returned path is empty when no file was found.
func Discover(projectDir string) (Settings, string, error) {
	path := filepath.Join(projectDir, ConfigFileName)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return Default(), "", nil
	}

	settings, err := Load(path)
	if err != nil {
		return settings, path, err
	}
	return settings, path, nil
}

func (s *Settings) merge(other Settings) {
	if other.EngineRootEnv != "" {
		s.EngineRootEnv = other.EngineRootEnv
	}
	if other.SolutionExtension != "" {
		s.SolutionExtension = other.SolutionExtension
	}
	if other.PluginsDirectory != "" {
		s.PluginsDirectory = other.PluginsDirectory
	}
	if len(other.ArtifactDirectories) > 0 {
		s.ArtifactDirectories = other.ArtifactDirectories
	}
	if len(other.IDEProcesses) > 0 {
		s.IDEProcesses = other.IDEProcesses
	}
	if len(other.EditorProcesses) > 0 {
		s.EditorProcesses = other.EditorProcesses
	}
	if other.BuildTool.Runner != "" {
		s.BuildTool.Runner = other.BuildTool.Runner
	}
	if other.BuildTool.Path != "" {
		s.BuildTool.Path = filepath.FromSlash(other.BuildTool.Path)
	}
	if len(other.BuildTool.Args) > 0 {
		s.BuildTool.Args = other.BuildTool.Args
	}
	if other.BuildTool.Timeout > 0 {
		s.BuildTool.Timeout = other.BuildTool.Timeout
	}
}

// Validate checks the settings for values the run cannot work with
func (s *Settings) Validate() error {
	if s.EngineRootEnv == "" {
		return errors.New("engine_root_env must not be empty")
	}

	if len(s.ArtifactDirectories) == 0 {
		return errors.New("artifact_directories must list at least one directory")
	}
	for _, name := range s.ArtifactDirectories {
		if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("invalid artifact directory name: %q", name)
		}
	}

	if !strings.HasPrefix(s.SolutionExtension, ".") || len(s.SolutionExtension) < 2 {
		return fmt.Errorf("solution_extension must start with a dot: %q", s.SolutionExtension)
	}

	if s.PluginsDirectory == "" || strings.ContainsAny(s.PluginsDirectory, `/\`) {
		return fmt.Errorf("invalid plugins_directory: %q", s.PluginsDirectory)
	}

	if s.BuildTool.Path == "" {
		return errors.New("build_tool.path must not be empty")
	}

	hasProject := false
	for _, arg := range s.BuildTool.Args {
		if strings.Contains(arg, ProjectPlaceholder) {
			hasProject = true
			break
		}
	}
	if !hasProject {
		return fmt.Errorf("build_tool.args must reference %s", ProjectPlaceholder)
	}

	return nil
}
