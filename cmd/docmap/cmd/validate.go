package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/docmap/internal/cmd/emoji"
	"github.com/agentstation/docmap/internal/cmd/output"
	"github.com/agentstation/docmap/pkg/docset"
	"github.com/agentstation/docmap/pkg/lint"
	"github.com/agentstation/docmap/pkg/logging"
	"github.com/agentstation/docmap/pkg/toc"
)

var (
	validateDocsDir    string
	validateExpect     int
	validateUseCatalog bool
	validateCatalogDir string
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [page]",
	Short: "Lint a page's toctree listings",
	Long: `Lint the toctree listings of a documentation page.

Each listing is checked for empty slugs, slugs containing whitespace,
duplicate entries, and entries that do not resolve to a document. Slugs
resolve against the page's directory by default; --docs overrides the
docset root and --use-catalog resolves against the model catalog instead.

The exit status is non-zero when defects of error severity are found.
Dangling references alone are warnings, matching how documentation builds
tolerate them.

Examples:
  docmap validate                          # lint the default index page
  docmap validate docs/image/index.rst
  docmap validate --expect 10 index.rst    # also enforce a distinct count
  docmap validate --use-catalog index.rst  # resolve against the catalog`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateDocsDir, "docs", "", "docset root for slug resolution (default: the page's directory)")
	validateCmd.Flags().IntVar(&validateExpect, "expect", 0, "expected number of distinct entries (0 disables the check)")
	validateCmd.Flags().BoolVar(&validateUseCatalog, "use-catalog", false, "resolve slugs against the model catalog instead of the docset")
	validateCmd.Flags().StringVar(&validateCatalogDir, "catalog", "", "catalog directory (defaults to the embedded catalog)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	page := defaultIndexPage()
	if len(args) == 1 {
		page = args[0]
	}

	f, err := os.Open(page)
	if err != nil {
		return err
	}
	directives, err := toc.ParseAll(f, page)
	_ = f.Close()
	if err != nil {
		return err
	}

	if len(directives) == 0 {
		fmt.Printf("%s %s: no toctree listings\n", emoji.Warning, page)
		return nil
	}

	resolver, err := buildResolver(page)
	if err != nil {
		return err
	}

	linter := lint.New(
		lint.WithResolver(resolver),
		lint.WithExpectedCount(validateExpect),
	)

	var all lint.Issues
	entries := 0
	for _, d := range directives {
		entries += len(d.Entries)
		all = append(all, linter.Run(d)...)
	}

	logging.Ctx(cmd.Context()).Debug().
		Int("directives", len(directives)).
		Int("entries", entries).
		Int("issues", len(all)).
		Msg("linted page")

	printIssues(all)

	if len(all) == 0 {
		fmt.Printf("%s %s: %d entries, no issues\n",
			color.GreenString(emoji.Success), page, entries)
		return nil
	}

	errs := len(all.Errors())
	warnings := len(all) - errs
	if all.HasErrors() {
		return fmt.Errorf("%s: %d errors, %d warnings", page, errs, warnings)
	}

	fmt.Printf("%s %s: %d entries, %d warnings\n",
		color.YellowString(emoji.Warning), page, entries, warnings)
	return nil
}

// buildResolver picks the slug resolver for validation.
func buildResolver(page string) (toc.Resolver, error) {
	if validateUseCatalog {
		return openCatalog(validateCatalogDir)
	}

	root := validateDocsDir
	if root == "" {
		root = filepath.Dir(page)
	}
	return docset.Load(root)
}

// printIssues shows detected issues in a table.
func printIssues(issues lint.Issues) {
	if len(issues) == 0 {
		return
	}

	format := output.DetectFormat(globalFlags.Output)
	if format != output.FormatTable {
		_ = output.NewFormatter(format).Format(os.Stdout, issues)
		return
	}

	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		status := color.RedString(emoji.Error)
		if issue.Severity == lint.SeverityWarning {
			status = color.YellowString(emoji.Warning)
		}
		line := ""
		if issue.Line > 0 {
			line = fmt.Sprintf("%d", issue.Line)
		}
		rows = append(rows, []string{
			status,
			string(issue.Check),
			string(issue.Severity),
			line,
			issue.Message,
		})
	}

	_ = output.NewFormatter(format).Format(os.Stdout, output.Data{
		Headers: []string{"", "check", "severity", "line", "message"},
		Rows:    rows,
	})
	fmt.Println()
}
