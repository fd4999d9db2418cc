// Package engine resolves the engine installation and project file locations.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProjectExtension is the extension of an Unreal project descriptor
const ProjectExtension = ".uproject"

// Kinds of paths reported by PathNotFoundError
const (
	KindEngine  = "engine installation"
	KindProject = "project file"
)

// LookupFunc reads an environment variable, matching os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ConfigurationError reports a missing environment variable
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Variable)
}

// PathNotFoundError reports a required path that does not exist
type PathNotFoundError struct {
	Err  error
	Kind string
	Path string
}

func (e *PathNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s not found: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}

// Resolve joins the installation root read from envName with version and
// checks that the result is a directory
func Resolve(lookup LookupFunc, envName, version string) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	root, ok := lookup(envName)
	if !ok || strings.TrimSpace(root) == "" {
		return "", &ConfigurationError{Variable: envName}
	}

	if strings.TrimSpace(version) == "" {
		return "", errors.New("engine version must not be empty")
	}

	fullPath, err := filepath.Abs(filepath.Join(root, version))
	if err != nil {
		return "", fmt.Errorf("failed to resolve engine path: %w", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return "", &PathNotFoundError{Kind: KindEngine, Path: fullPath, Err: err}
	}
	if !info.IsDir() {
		return "", &PathNotFoundError{Kind: KindEngine, Path: fullPath}
	}

	return fullPath, nil
}

// ResolveProject returns the absolute path of an existing project file.
// The boolean is false when the file does not carry the project extension.
func ResolveProject(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		return "", false, errors.New("project path must not be empty")
	}

	fullPath, err := filepath.Abs(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve project path: %w", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return "", false, &PathNotFoundError{Kind: KindProject, Path: fullPath, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", false, &PathNotFoundError{Kind: KindProject, Path: fullPath}
	}

	return fullPath, strings.EqualFold(filepath.Ext(fullPath), ProjectExtension), nil
}
