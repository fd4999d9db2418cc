//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Vet runs go vet
func (Quality) Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}

// Format formats the code with gofumpt
func (Quality) Format() error {
	fmt.Println("Formatting code...")
	return sh.Run("go", "tool", "gofumpt", "-l", "-w", ".")
}

// Lint runs golangci-lint pinned as a module tool
func (Quality) Lint() error {
	fmt.Println("Running linter...")
	return sh.RunV("go", "tool", "golangci-lint", "run", "./...")
}

// All runs all quality checks
func (Quality) All() {
	mg.SerialDeps(Quality.Format, Quality.Vet, Test.Unit)
}
