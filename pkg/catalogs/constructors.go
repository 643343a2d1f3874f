package catalogs

import (
	"io/fs"
	"os"

	"github.com/agentstation/docmap/pkg/errors"
)

// NewEmbedded creates a catalog backed by the model data compiled into
// the binary. This is the catalog used by default.
func NewEmbedded() (Catalog, error) {
	return New(WithEmbedded())
}

// NewFiles creates a catalog backed by a directory on disk holding
// models.yaml. Useful for editing catalog data without recompiling.
func NewFiles(path string) (Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	return New(WithFS(os.DirFS(path)))
}

// NewMemory creates an empty in-memory catalog, useful for tests and
// temporary catalogs.
func NewMemory() Catalog {
	// Memory catalog cannot fail
	cat, _ := New()
	return cat
}

// NewFromFS creates a catalog from a custom filesystem rooted at root.
func NewFromFS(fsys fs.FS, root string) (Catalog, error) {
	sub, err := fs.Sub(fsys, root)
	if err != nil {
		return nil, errors.WrapIO("open", root, err)
	}
	return New(WithFS(sub))
}

// NewReadOnly wraps a catalog so write operations return ErrReadOnly.
func NewReadOnly(source Catalog) Catalog {
	return &readOnlyCatalog{source: source}
}
