// Package catalogs holds the catalog of built-in image-generation models
// that documentation is generated from. Catalogs come in three flavors:
// in-memory, file-backed (a directory holding models.yaml), and embedded
// (compiled into the binary).
package catalogs

import (
	"io/fs"
	"sort"
	"sync"

	"github.com/agentstation/docmap/internal/embedded"
	"github.com/agentstation/docmap/pkg/errors"
)

// catalog is the single catalog implementation. Variants differ only in
// the filesystem models are loaded from.
type catalog struct {
	mu     sync.RWMutex
	models map[string]Model
	config config
}

type config struct {
	readFS fs.FS
}

// CatalogOption configures a catalog at construction time.
type CatalogOption func(*config)

// WithFS loads catalog data from an arbitrary filesystem.
func WithFS(fsys fs.FS) CatalogOption {
	return func(c *config) {
		c.readFS = fsys
	}
}

// WithEmbedded loads catalog data compiled into the binary.
func WithEmbedded() CatalogOption {
	return func(c *config) {
		sub, err := fs.Sub(embedded.FS, "catalog")
		if err != nil {
			// The embedded layout is fixed at build time; a missing
			// catalog directory is a programming error.
			panic(err)
		}
		c.readFS = sub
	}
}

// New creates a catalog. With no options the catalog is empty and
// in-memory; options attach a filesystem to load from.
func New(opts ...CatalogOption) (Catalog, error) {
	cat := &catalog{models: make(map[string]Model)}
	for _, opt := range opts {
		opt(&cat.config)
	}
	if err := cat.load(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Models returns all models sorted by ID.
func (cat *catalog) Models() []Model {
	cat.mu.RLock()
	defer cat.mu.RUnlock()

	models := make([]Model, 0, len(cat.models))
	for _, m := range cat.models {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})
	return models
}

// Model returns a model by ID.
func (cat *catalog) Model(id string) (Model, error) {
	cat.mu.RLock()
	defer cat.mu.RUnlock()

	m, ok := cat.models[id]
	if !ok {
		return Model{}, errors.NewNotFoundError("model", id)
	}
	return m, nil
}

// Len returns the number of models in the catalog.
func (cat *catalog) Len() int {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	return len(cat.models)
}

// Resolve implements toc.Resolver.
func (cat *catalog) Resolve(slug string) (string, bool) {
	cat.mu.RLock()
	defer cat.mu.RUnlock()

	m, ok := cat.models[slug]
	if !ok {
		return "", false
	}
	return m.Title(), true
}

// SetModel adds or replaces a model.
func (cat *catalog) SetModel(model Model) error {
	if err := model.Validate(); err != nil {
		return err
	}

	cat.mu.Lock()
	defer cat.mu.Unlock()
	cat.models[model.ID] = model
	return nil
}

// DeleteModel removes a model by ID.
func (cat *catalog) DeleteModel(id string) error {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	if _, ok := cat.models[id]; !ok {
		return errors.NewNotFoundError("model", id)
	}
	delete(cat.models, id)
	return nil
}
