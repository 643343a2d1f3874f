package catalogs

// Reader provides read-only access to catalog data.
type Reader interface {
	// Models returns all models sorted by ID.
	Models() []Model

	// Model returns a model by ID.
	Model(id string) (Model, error)

	// Len returns the number of models in the catalog.
	Len() int

	// Resolve implements toc.Resolver: it maps a page slug to the
	// model's display title.
	Resolve(slug string) (title string, ok bool)
}

// Writer provides write operations for catalog data.
type Writer interface {
	// SetModel adds or replaces a model (upsert semantics).
	SetModel(model Model) error

	// DeleteModel removes a model by ID.
	DeleteModel(id string) error
}

// Catalog is the complete interface combining read and write access.
type Catalog interface {
	Reader
	Writer
}
