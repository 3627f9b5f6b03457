// Package main is the entry point for the cashin CLI.
package main

import (
	"os"

	"github.com/mrz1836/cashin/internal/cli"
)

// Set by the linker at build time.
//
//nolint:gochecknoglobals // Build metadata injected with -ldflags
var (
	version string
	commit  string
	date    string
)

func main() {
	cli.SetBuildInfo(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
