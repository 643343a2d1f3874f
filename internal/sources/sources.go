// Package sources defines upstream model-listing sources used to seed and
// refresh the catalog.
package sources

import (
	"context"

	"github.com/agentstation/docmap/pkg/catalogs"
)

// Source fetches model listings from an upstream system.
type Source interface {
	// Name identifies the source, e.g. "google" or "hub".
	Name() string

	// ListModels fetches the source's image-generation models.
	ListModels(ctx context.Context) ([]catalogs.Model, error)
}
