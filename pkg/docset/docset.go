// Package docset indexes a documentation directory so toctree slugs can be
// resolved to documents. A document's slug is its file base name without
// extension, matched case-sensitively.
package docset

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/agentstation/docmap/pkg/errors"
)

// Document is a single indexed documentation page.
type Document struct {
	// Slug is the file base name without extension.
	Slug string

	// Path is the location of the file, relative to the docset root.
	Path string

	// Title is the document's first heading, or the slug when the
	// document has none.
	Title string

	// Format is the source format, "rst" or "markdown".
	Format string
}

// Set is an indexed document set.
type Set struct {
	root string
	docs map[string]Document
}

// extensions maps recognized file extensions to source formats.
var extensions = map[string]string{
	".rst":      "rst",
	".md":       "markdown",
	".markdown": "markdown",
}

// Load walks a docs directory and indexes every document in it.
// When two files share a slug (index.rst next to index.md), the
// lexically first one wins; walk order is deterministic.
func Load(root string) (*Set, error) {
	set := &Set{root: root, docs: make(map[string]Document)}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if strings.HasPrefix(de.Name(), ".") && osPathname != root {
					return filepath.SkipDir
				}
				return nil
			}

			format, ok := extensions[filepath.Ext(de.Name())]
			if !ok {
				return nil
			}

			rel, err := filepath.Rel(root, osPathname)
			if err != nil {
				return err
			}

			slug := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
			if _, exists := set.docs[slug]; exists {
				return nil
			}

			title, err := readTitle(osPathname, format)
			if err != nil {
				return err
			}
			if title == "" {
				title = slug
			}

			set.docs[slug] = Document{
				Slug:   slug,
				Path:   rel,
				Title:  title,
				Format: format,
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.WrapIO("walk", root, err)
	}

	return set, nil
}

// LoadFS indexes a document set from a filesystem, for embedded docsets.
func LoadFS(fsys fs.FS, root string) (*Set, error) {
	set := &Set{root: root, docs: make(map[string]Document)}

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		format, ok := extensions[filepath.Ext(d.Name())]
		if !ok {
			return nil
		}

		slug := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if _, exists := set.docs[slug]; exists {
			return nil
		}

		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		title := extractTitle(f, format)
		_ = f.Close()
		if title == "" {
			title = slug
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		set.docs[slug] = Document{
			Slug:   slug,
			Path:   rel,
			Title:  title,
			Format: format,
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO("walk", root, err)
	}

	return set, nil
}

// Root returns the docset root directory.
func (s *Set) Root() string {
	return s.root
}

// Len returns the number of indexed documents.
func (s *Set) Len() int {
	return len(s.docs)
}

// Document returns the document for slug.
func (s *Set) Document(slug string) (Document, error) {
	doc, ok := s.docs[slug]
	if !ok {
		return Document{}, errors.NewNotFoundError("document", slug)
	}
	return doc, nil
}

// Resolve implements toc.Resolver. Matching is case-sensitive and
// extension-less.
func (s *Set) Resolve(slug string) (string, bool) {
	doc, ok := s.docs[slug]
	if !ok {
		return "", false
	}
	return doc.Title, true
}

// List returns all documents sorted by slug.
func (s *Set) List() []Document {
	docs := make([]Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Slug < docs[j].Slug
	})
	return docs
}

// readTitle extracts the first heading from the file at path.
func readTitle(path, format string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return extractTitle(f, format), nil
}

// extractTitle scans for the document's first heading. RST section titles
// are a text line with an underline of punctuation (an optional overline
// above); markdown titles use "#" prefixes.
func extractTitle(r io.Reader, format string) string {
	scanner := bufio.NewScanner(r)

	if format == "markdown" {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if strings.HasPrefix(line, "#") {
				return strings.TrimSpace(strings.TrimLeft(line, "#"))
			}
		}
		return ""
	}

	// RST: remember the previous line; when the current line is a
	// section adornment at least as long, the previous line is the title.
	prev := ""
	for scanner.Scan() {
		line := scanner.Text()
		if prev != "" && isAdornment(line) && len(line) >= len(prev) {
			return strings.TrimSpace(prev)
		}
		prev = strings.TrimSpace(line)
		// Overlines are adornments too; skip them so the title line
		// between overline and underline is picked up.
		if isAdornment(prev) {
			prev = ""
		}
	}
	return ""
}

// isAdornment reports whether line is an RST section adornment.
func isAdornment(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 2 {
		return false
	}
	c := line[0]
	if !strings.ContainsRune(`=-~^"'#*+.\_:`, rune(c)) {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}
