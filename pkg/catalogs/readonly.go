package catalogs

import (
	"github.com/agentstation/docmap/pkg/errors"
)

// readOnlyCatalog rejects all writes while delegating reads.
type readOnlyCatalog struct {
	source Catalog
}

// Compile-time interface check
var _ Catalog = (*readOnlyCatalog)(nil)

func (r *readOnlyCatalog) Models() []Model                { return r.source.Models() }
func (r *readOnlyCatalog) Model(id string) (Model, error) { return r.source.Model(id) }
func (r *readOnlyCatalog) Len() int                       { return r.source.Len() }
func (r *readOnlyCatalog) Resolve(slug string) (string, bool) {
	return r.source.Resolve(slug)
}

func (r *readOnlyCatalog) SetModel(Model) error {
	return errors.ErrReadOnly
}

func (r *readOnlyCatalog) DeleteModel(string) error {
	return errors.ErrReadOnly
}
