// Package toc parses, lints, and renders toctree navigation directives
// found in documentation pages.
//
// A toctree directive names sibling documents by slug, one per line, and
// the documentation build resolves each slug to a page and renders a
// navigation entry in listing order:
//
//	.. toctree::
//	   :maxdepth: 1
//
//	   sd-turbo
//	   sdxl-turbo
//	   stable-diffusion-v1.5
package toc

import (
	"fmt"
	"strings"
)

// Marker is the directive line that introduces a toctree block.
const Marker = ".. toctree::"

// indent is the canonical body indentation for serialized directives.
const indent = "   "

// Entry is a single page reference within a toctree directive.
type Entry struct {
	// Slug identifies the referenced document. Slugs are case-sensitive
	// and extension-less.
	Slug string

	// Title is an optional explicit title ("Title <slug>" form).
	// Empty when the document's own title should be used.
	Title string

	// Position is the 1-based position of the entry in the listing.
	Position int

	// Line is the source line number of the entry, when parsed from a page.
	Line int
}

// String returns the entry in directive source form.
func (e Entry) String() string {
	if e.Title != "" {
		return fmt.Sprintf("%s <%s>", e.Title, e.Slug)
	}
	return e.Slug
}

// Option is a directive option such as ":maxdepth: 1".
// Unknown options are preserved verbatim so round-trips are lossless.
type Option struct {
	Name  string
	Value string
}

// Directive is a parsed toctree directive block.
type Directive struct {
	// MaxDepth is the rendered nesting depth from the :maxdepth: option.
	// Zero means unlimited.
	MaxDepth int

	// Options holds all directive options in source order,
	// including :maxdepth: and any options this tool does not interpret.
	Options []Option

	// Entries are the listed page references in source order.
	Entries []Entry

	// Line is the source line number of the directive marker, when parsed.
	Line int
}

// Slugs returns the listed slugs in order, including any duplicates.
func (d *Directive) Slugs() []string {
	slugs := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		slugs = append(slugs, e.Slug)
	}
	return slugs
}

// Distinct returns the number of distinct slugs in the listing.
func (d *Directive) Distinct() int {
	seen := make(map[string]struct{}, len(d.Entries))
	for _, e := range d.Entries {
		seen[e.Slug] = struct{}{}
	}
	return len(seen)
}

// Add appends an entry for slug, assigning its position.
func (d *Directive) Add(slug string) {
	d.Entries = append(d.Entries, Entry{
		Slug:     slug,
		Position: len(d.Entries) + 1,
	})
}

// String serializes the directive to its canonical source form.
// Parsing the result yields an equal directive, and serializing twice
// yields identical text.
func (d *Directive) String() string {
	var b strings.Builder
	b.WriteString(Marker)
	b.WriteString("\n")

	for _, opt := range d.Options {
		if opt.Value != "" {
			fmt.Fprintf(&b, "%s:%s: %s\n", indent, opt.Name, opt.Value)
		} else {
			fmt.Fprintf(&b, "%s:%s:\n", indent, opt.Name)
		}
	}

	b.WriteString("\n")
	for _, e := range d.Entries {
		b.WriteString(indent)
		b.WriteString(e.String())
		b.WriteString("\n")
	}

	return b.String()
}

// New creates a directive with the given slugs and a :maxdepth: of depth.
func New(depth int, slugs ...string) *Directive {
	d := &Directive{MaxDepth: depth}
	if depth > 0 {
		d.Options = append(d.Options, Option{Name: "maxdepth", Value: fmt.Sprintf("%d", depth)})
	}
	for _, slug := range slugs {
		d.Add(slug)
	}
	return d
}
