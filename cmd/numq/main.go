// Package main implements the numq CLI, a small integer toolbox:
// factorials, sequence aggregates, and batch evaluation of job files.
package main

import (
	"os"

	"github.com/kvo/numq/cmd/numq/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`numq version {{.Version}}
`)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
