// Package docs generates the built-in model documentation pages and the
// navigation index from a catalog.
package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/docmap/pkg/catalogs"
	"github.com/agentstation/docmap/pkg/logging"
)

// dirPermissions is the mode for created documentation directories.
const dirPermissions = 0o755

// Generator handles documentation generation.
type Generator struct {
	outputDir string
	maxDepth  int
}

// Option is a functional option for configuring the Generator.
type Option func(*Generator)

// WithOutputDir sets the output directory for generated documentation.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithMaxDepth sets the :maxdepth: for the generated index toctree.
func WithMaxDepth(depth int) Option {
	return func(g *Generator) {
		g.maxDepth = depth
	}
}

// New creates a new documentation generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		outputDir: "./docs",
		maxDepth:  1,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate writes one page per model plus the navigation index.
// Output depends only on the catalog contents, so regeneration over the
// same catalog is byte-for-byte idempotent. Index entries are unique and
// sorted; regenerating is the remedy for hand-edited listings that have
// drifted (duplicate or dangling entries).
func (g *Generator) Generate(ctx context.Context, catalog catalogs.Reader) error {
	log := logging.Ctx(ctx)

	imageDir := filepath.Join(g.outputDir, "models", "builtin", "image")
	if err := os.MkdirAll(imageDir, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", imageDir, err)
	}

	models := catalog.Models()
	for _, model := range models {
		if err := g.generateModelPage(imageDir, model); err != nil {
			return fmt.Errorf("generating page for %s: %w", model.ID, err)
		}
	}

	if err := g.generateIndex(imageDir, models); err != nil {
		return fmt.Errorf("generating index: %w", err)
	}

	if err := g.generateReadme(imageDir, models); err != nil {
		return fmt.Errorf("generating readme: %w", err)
	}

	log.Info().
		Int("models", len(models)).
		Str("dir", imageDir).
		Msg("documentation generated")

	return nil
}
