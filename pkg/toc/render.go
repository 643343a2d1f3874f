package toc

import (
	"io"

	md "github.com/nao1215/markdown"
)

// Resolver resolves a slug to a document title. The docset and catalog
// packages both satisfy this.
type Resolver interface {
	// Resolve returns the title for slug and whether the document exists.
	// Matching is case-sensitive and extension-less.
	Resolve(slug string) (title string, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(slug string) (string, bool)

// Resolve implements the Resolver interface.
func (f ResolverFunc) Resolve(slug string) (string, bool) {
	return f(slug)
}

// NavEntry is a resolved navigation entry ready for rendering.
type NavEntry struct {
	Slug    string
	Title   string
	Href    string
	Missing bool // slug did not resolve to a document
}

// Nav resolves every listed slug against resolver, in listing order.
// Dangling slugs produce entries with Missing set and the slug as title;
// they are rendered as placeholders rather than dropped, so rendered
// output always mirrors the source listing.
func (d *Directive) Nav(resolver Resolver) []NavEntry {
	entries := make([]NavEntry, 0, len(d.Entries))
	for _, e := range d.Entries {
		nav := NavEntry{
			Slug: e.Slug,
			Href: e.Slug + ".html",
		}
		title, ok := resolveTitle(resolver, e.Slug)
		switch {
		case e.Title != "":
			nav.Title = e.Title
			nav.Missing = !ok
		case ok:
			nav.Title = title
		default:
			nav.Title = e.Slug
			nav.Missing = true
		}
		entries = append(entries, nav)
	}
	return entries
}

// RenderNav writes the resolved navigation as a markdown link list.
// Rendering is idempotent: the same directive and resolver always produce
// identical bytes.
func (d *Directive) RenderNav(w io.Writer, resolver Resolver) error {
	items := make([]string, 0, len(d.Entries))
	for _, nav := range d.Nav(resolver) {
		if nav.Missing {
			items = append(items, nav.Title+" (missing)")
			continue
		}
		items = append(items, md.Link(nav.Title, nav.Href))
	}
	return md.NewMarkdown(w).
		BulletList(items...).
		Build()
}

func resolveTitle(resolver Resolver, slug string) (string, bool) {
	if resolver == nil {
		return "", false
	}
	return resolver.Resolve(slug)
}
