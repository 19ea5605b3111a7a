package main

import (
	"os"

	"scaffkit.dev/scaffkit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	os.Exit(cli.Execute(rootCmd, os.Stderr))
}
