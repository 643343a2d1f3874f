package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/docmap/pkg/catalogs"
	"github.com/agentstation/docmap/pkg/toc"
)

// indexTitle is the heading of the generated navigation index.
const indexTitle = "Image Models"

// generateIndex writes index.rst: the page heading followed by a toctree
// directive listing every model slug, sorted and unique.
func (g *Generator) generateIndex(dir string, models []catalogs.Model) error {
	f, err := os.Create(filepath.Join(dir, "index.rst"))
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, indexTitle)
	fmt.Fprintln(f, "============")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "The following is a list of built-in image models:")
	fmt.Fprintln(f)
	fmt.Fprint(f, g.directive(models).String())

	return nil
}

// directive builds the index toctree from the catalog.
func (g *Generator) directive(models []catalogs.Model) *toc.Directive {
	slugs := make([]string, 0, len(models))
	seen := make(map[string]struct{}, len(models))
	for _, m := range models {
		if _, dup := seen[m.Slug()]; dup {
			continue
		}
		seen[m.Slug()] = struct{}{}
		slugs = append(slugs, m.Slug())
	}
	sort.Strings(slugs)

	return toc.New(g.maxDepth, slugs...)
}

// generateReadme writes README.md, a markdown mirror of the listing for
// viewing the docs tree on a code host.
func (g *Generator) generateReadme(dir string, models []catalogs.Model) error {
	f, err := os.Create(filepath.Join(dir, "README.md"))
	if err != nil {
		return err
	}
	defer f.Close()

	byAbility := map[catalogs.ModelAbility]int{}
	for _, m := range models {
		for _, a := range m.Abilities {
			byAbility[a]++
		}
	}

	links := make([]string, 0, len(models))
	for _, m := range models {
		links = append(links, md.Link(m.Title(), m.Slug()+".rst"))
	}

	return md.NewMarkdown(f).
		H1(indexTitle).
		LF().
		PlainTextf("Complete listing of all %d built-in image models.", len(models)).
		LF().
		H2("Abilities").
		LF().
		Table(md.TableSet{
			Header: []string{"Ability", "Models"},
			Rows: [][]string{
				{string(catalogs.AbilityText2Image), fmt.Sprintf("%d", byAbility[catalogs.AbilityText2Image])},
				{string(catalogs.AbilityImage2Image), fmt.Sprintf("%d", byAbility[catalogs.AbilityImage2Image])},
				{string(catalogs.AbilityInpainting), fmt.Sprintf("%d", byAbility[catalogs.AbilityInpainting])},
			},
		}).
		LF().
		H2("Models").
		LF().
		BulletList(links...).
		Build()
}
