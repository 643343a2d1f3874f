// Package main provides the entry point for the docmap CLI tool.
package main

import (
	"github.com/agentstation/docmap/cmd/docmap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
