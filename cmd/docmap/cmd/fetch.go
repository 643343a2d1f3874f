package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/docmap/internal/cmd/emoji"
	"github.com/agentstation/docmap/internal/cmd/output"
	"github.com/agentstation/docmap/internal/sources"
	"github.com/agentstation/docmap/internal/sources/google"
	"github.com/agentstation/docmap/internal/sources/hub"
	"github.com/agentstation/docmap/pkg/catalogs"
	"github.com/agentstation/docmap/pkg/errors"
)

var (
	fetchAPIKey   string
	fetchIndexURL string
	fetchSaveDir  string
)

// fetchCmd represents the fetch command.
var fetchCmd = &cobra.Command{
	Use:   "fetch <source>",
	Short: "Fetch model listings from an upstream source",
	Long: `Fetch image-generation model listings from an upstream source.

Sources:
  google   List models via the Google AI Studio API (needs GOOGLE_API_KEY)
  hub      Scrape a rendered model-index page (needs --index-url)

Fetched listings print to stdout; --save writes them to a catalog
directory as models.yaml instead.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"google", "hub"},
	RunE:      runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchAPIKey, "api-key", "", "API key for API-backed sources")
	fetchCmd.Flags().StringVar(&fetchIndexURL, "index-url", "", "model-index page URL for the hub source")
	fetchCmd.Flags().StringVar(&fetchSaveDir, "save", "", "write fetched models to this catalog directory")
}

// newSource builds the requested source.
func newSource(name string) (sources.Source, error) {
	switch name {
	case "google":
		return google.NewClient(fetchAPIKey), nil
	case "hub":
		return hub.New(hub.Config{
			IndexURL: fetchIndexURL,
			Progress: !globalFlags.Quiet,
		})
	default:
		return nil, errors.NewNotFoundError("source", name)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	source, err := newSource(args[0])
	if err != nil {
		return err
	}

	models, err := source.ListModels(cmd.Context())
	if err != nil {
		return err
	}

	if fetchSaveDir != "" {
		cat := catalogs.NewMemory()
		for _, m := range models {
			if err := cat.SetModel(m); err != nil {
				return err
			}
		}
		if err := catalogs.Save(cat, fetchSaveDir); err != nil {
			return err
		}
		fmt.Printf("%s Saved %d models from %s to %s\n",
			color.GreenString(emoji.Success), len(models), source.Name(), fetchSaveDir)
		return nil
	}

	format := output.DetectFormat(globalFlags.Output)
	if format == output.FormatTable {
		format = output.FormatYAML // full records read better than a table
	}
	return output.NewFormatter(format).Format(os.Stdout, models)
}
