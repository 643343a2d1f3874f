// Package embedded compiles the catalog data files into the binary so the
// docmap CLI works without any files on disk.
package embedded

import (
	"embed"
)

// FS embeds the catalog yaml files at build time.
//
//go:embed catalog/*
var FS embed.FS
