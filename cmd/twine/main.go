// Package main is the entry point for the twine command.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/twine/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	app := cli.New(os.Stdin, os.Stdout, os.Stderr)
	app.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	return app.Execute(os.Args[1:])
}
