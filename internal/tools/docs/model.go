package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/docmap/pkg/catalogs"
)

// generateModelPage writes the RST documentation page for a single model.
// The file name is the model slug plus ".rst" so the index toctree
// resolves to it.
func (g *Generator) generateModelPage(dir string, model catalogs.Model) error {
	path := filepath.Join(dir, model.Slug()+".rst")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	title := model.Title()
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("=", len(title)))
	fmt.Fprintln(f)

	if model.Description != "" {
		fmt.Fprintln(f, model.Description)
		fmt.Fprintln(f)
	}

	fmt.Fprintln(f, "Specifications")
	fmt.Fprintln(f, "--------------")
	fmt.Fprintln(f)
	fmt.Fprintf(f, "- **Model ID:** %s\n", model.ID)
	if model.Family != "" {
		fmt.Fprintf(f, "- **Model Family:** %s\n", model.Family)
	}
	if len(model.Abilities) > 0 {
		fmt.Fprintf(f, "- **Abilities:** %s\n", joinAbilities(model.Abilities))
	}
	if model.DefaultResolution != "" {
		fmt.Fprintf(f, "- **Default Resolution:** %s\n", model.DefaultResolution)
	}
	if model.Source != "" {
		fmt.Fprintf(f, "- **Model Source:** `%s <%s>`_\n", model.Source, model.Source)
	}
	fmt.Fprintln(f)

	return nil
}

func joinAbilities(abilities []catalogs.ModelAbility) string {
	parts := make([]string, 0, len(abilities))
	for _, a := range abilities {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, ", ")
}
