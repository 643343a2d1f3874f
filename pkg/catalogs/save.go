package catalogs

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/docmap/pkg/errors"
)

// Save writes a catalog's models.yaml into dir, creating it if needed.
// Output is sorted by model ID so saves are deterministic.
func Save(cat Reader, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := yaml.MarshalWithOptions(cat.Models(),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapParse("yaml", modelsFile, err)
	}

	path := filepath.Join(dir, modelsFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
