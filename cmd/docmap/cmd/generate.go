package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/docmap/internal/cmd/emoji"
	"github.com/agentstation/docmap/internal/tools/docs"
)

var (
	generateOutputDir  string
	generateDepth      int
	generateCatalogDir string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate model documentation pages and the navigation index",
	Long: `Generate one documentation page per catalog model plus the index page
holding the toctree listing.

The generated index always lists each model exactly once, sorted by slug,
so regenerating is the remedy for hand-edited listings that have drifted.

Examples:
  docmap generate                       # embedded catalog into ./docs
  docmap generate --output ./site/docs
  docmap generate --catalog ./catalog   # from a file-backed catalog`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateOutputDir, "output", "./docs", "output directory")
	generateCmd.Flags().IntVar(&generateDepth, "depth", 1, "toctree :maxdepth: for the generated index")
	generateCmd.Flags().StringVar(&generateCatalogDir, "catalog", "", "catalog directory (defaults to the embedded catalog)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	catalog, err := openCatalog(generateCatalogDir)
	if err != nil {
		return err
	}

	gen := docs.New(
		docs.WithOutputDir(generateOutputDir),
		docs.WithMaxDepth(generateDepth),
	)
	if err := gen.Generate(cmd.Context(), catalog); err != nil {
		return err
	}

	fmt.Printf("%s Generated documentation for %d models in %s\n",
		color.GreenString(emoji.Success), catalog.Len(), generateOutputDir)
	return nil
}
