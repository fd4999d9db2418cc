//go:build mage
// +build mage

package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/sh"
)

const mainPackage = "./cmd/ue-setup"

func binaryPath() string {
	name := "ue-setup"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join("bin", name)
}

// Binary builds the main binary
func (Build) Binary() error {
	fmt.Println("Building ue-setup...")
	return sh.Run("go", "build", "-o", binaryPath(), mainPackage)
}

// Install installs the binary to $GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing ue-setup...")
	return sh.Run("go", "install", mainPackage)
}

// Windows cross-compiles the binary for the platform the engine runs on
func (Build) Windows() error {
	fmt.Println("Building ue-setup for windows/amd64...")
	env := map[string]string{"GOOS": "windows", "GOARCH": "amd64"}
	return sh.RunWith(env, "go", "build", "-o", filepath.Join("bin", "ue-setup.exe"), mainPackage)
}
