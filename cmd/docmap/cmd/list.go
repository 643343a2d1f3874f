package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/docmap/internal/cmd/output"
	"github.com/agentstation/docmap/pkg/catalogs"
	"github.com/agentstation/docmap/pkg/docset"
)

var listCatalogDir string

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog models or documentation pages",
}

// listModelsCmd lists the models in the catalog.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models in the catalog",
	Long: `List the image-generation models in the catalog.

Uses the embedded catalog unless --catalog points at a directory holding
models.yaml.`,
	RunE: runListModels,
}

// listPagesCmd lists the documents in a docset.
var listPagesCmd = &cobra.Command{
	Use:   "pages [dir]",
	Short: "List documentation pages in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runListPages,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listModelsCmd)
	listCmd.AddCommand(listPagesCmd)

	listModelsCmd.Flags().StringVar(&listCatalogDir, "catalog", "", "catalog directory (defaults to the embedded catalog)")
}

// openCatalog opens the file-backed catalog at dir, or the embedded one.
func openCatalog(dir string) (catalogs.Catalog, error) {
	if dir != "" {
		return catalogs.NewFiles(dir)
	}
	return catalogs.NewEmbedded()
}

func runListModels(cmd *cobra.Command, _ []string) error {
	catalog, err := openCatalog(listCatalogDir)
	if err != nil {
		return err
	}

	models := catalog.Models()
	format := output.DetectFormat(globalFlags.Output)

	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, models)
	}

	rows := make([][]string, 0, len(models))
	for _, m := range models {
		abilities := make([]string, 0, len(m.Abilities))
		for _, a := range m.Abilities {
			abilities = append(abilities, string(a))
		}
		rows = append(rows, []string{
			m.ID,
			m.Name,
			m.Family,
			strings.Join(abilities, ", "),
			m.DefaultResolution,
		})
	}

	return output.NewFormatter(format).Format(os.Stdout, output.Data{
		Headers: []string{"id", "name", "family", "abilities", "resolution"},
		Rows:    rows,
	})
}

func runListPages(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	set, err := docset.Load(dir)
	if err != nil {
		return err
	}

	docs := set.List()
	format := output.DetectFormat(globalFlags.Output)

	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, docs)
	}

	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, []string{doc.Slug, doc.Title, doc.Format, doc.Path})
	}

	if err := output.NewFormatter(format).Format(os.Stdout, output.Data{
		Headers: []string{"slug", "title", "format", "path"},
		Rows:    rows,
	}); err != nil {
		return err
	}

	fmt.Printf("\n%d pages\n", len(docs))
	return nil
}
