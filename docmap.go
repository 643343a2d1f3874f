// Package docmap is the library entry point for the image model
// documentation toolchain. It ties the catalog, docset, linter, and
// generator together behind a small facade; the subpackages remain the
// full API.
package docmap

import (
	"context"
	"os"

	"github.com/agentstation/docmap/internal/tools/docs"
	"github.com/agentstation/docmap/pkg/catalogs"
	"github.com/agentstation/docmap/pkg/docset"
	"github.com/agentstation/docmap/pkg/lint"
	"github.com/agentstation/docmap/pkg/toc"
)

// Catalog returns the embedded catalog of built-in image models.
func Catalog() (catalogs.Catalog, error) {
	return catalogs.NewEmbedded()
}

// LintPage lints every toctree listing in the page at path, resolving
// slugs against the docset rooted at docsRoot. An expect of zero
// disables the distinct-count check.
func LintPage(path, docsRoot string, expect int) (lint.Issues, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	directives, err := toc.ParseAll(f, path)
	if err != nil {
		return nil, err
	}

	set, err := docset.Load(docsRoot)
	if err != nil {
		return nil, err
	}

	linter := lint.New(
		lint.WithResolver(set),
		lint.WithExpectedCount(expect),
	)

	var issues lint.Issues
	for _, d := range directives {
		issues = append(issues, linter.Run(d)...)
	}
	return issues, nil
}

// Generate writes documentation for catalog into outputDir.
func Generate(ctx context.Context, catalog catalogs.Reader, outputDir string) error {
	return docs.New(docs.WithOutputDir(outputDir)).Generate(ctx, catalog)
}
