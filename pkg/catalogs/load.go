package catalogs

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/docmap/pkg/errors"
)

// modelsFile is the catalog data file name within a catalog directory.
const modelsFile = "models.yaml"

// load populates the catalog from the configured filesystem.
func (cat *catalog) load() error {
	if cat.config.readFS == nil {
		return nil // Memory catalog - nothing to load
	}

	data, err := fs.ReadFile(cat.config.readFS, modelsFile)
	if err != nil {
		return errors.WrapIO("read", modelsFile, err)
	}

	var models []Model
	if err := yaml.Unmarshal(data, &models); err != nil {
		return errors.WrapParse("yaml", modelsFile, err)
	}

	for _, m := range models {
		if err := cat.SetModel(m); err != nil {
			return err
		}
	}
	return nil
}
