//go:build mage
// +build mage

package main

import (
	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
var Default = Build.Binary

// Aliases creates aliases for the nested targets
var Aliases = map[string]interface{}{
	"build":   Build.Binary,
	"install": Build.Install,
	"test":    Test.Unit,
	"cover":   Test.Coverage,
	"vet":     Quality.Vet,
	"fmt":     Quality.Format,
	"check":   Quality.All,
	"clean":   Clean.All,
	"tidy":    Deps.Tidy,
}

// Build namespace for build-related targets
type Build mg.Namespace

// Test namespace for testing-related targets
type Test mg.Namespace

// Quality namespace for code quality targets
type Quality mg.Namespace

// Clean namespace for cleanup targets
type Clean mg.Namespace

// Deps namespace for dependency management
type Deps mg.Namespace
