// Package main provides the ue-setup command-line tool.
// It cleans generated build output of an unreal engine project and
// regenerates its IDE project files.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/blairham/ue-setup/internal/commands"
)

// Version information set at build time
var version = "dev"

func main() {
	c := cli.NewCLI(commands.AppName, version)
	c.Args = commands.CommandArgs(os.Args[1:])
	c.HelpFunc = commands.GeneralHelp
	c.Commands = commands.Factories()

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}
