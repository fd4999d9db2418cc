//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Unit runs all unit tests
func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "./...")
}

// Race runs unit tests with the race detector
func (Test) Race() error {
	fmt.Println("Running unit tests with race detector...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage writes coverage.out and coverage.html
func (Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.Run("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}
