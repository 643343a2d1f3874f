// Package lint implements data-quality checks for toctree listings.
//
// Linting never mutates its input. Defects such as duplicate or dangling
// slugs are tolerated by the parser and only surfaced here, mirroring how
// a documentation build tolerates them at the cost of broken or repeated
// navigation entries.
package lint

import (
	"fmt"
	"strings"

	"github.com/agentstation/docmap/pkg/toc"
)

// Check identifies a lint rule.
type Check string

// Lint rules applied to a toctree listing.
const (
	// CheckEmptySlug flags entries whose slug is empty.
	CheckEmptySlug Check = "empty-slug"

	// CheckWhitespace flags slugs containing internal whitespace.
	CheckWhitespace Check = "whitespace"

	// CheckDuplicate flags slugs listed more than once.
	CheckDuplicate Check = "duplicate"

	// CheckDangling flags slugs that do not resolve to a document.
	CheckDangling Check = "dangling"

	// CheckCount flags listings whose distinct entry count differs
	// from the expected count.
	CheckCount Check = "count"
)

// Severity classifies how serious an issue is.
type Severity string

// Issue severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single detected data-quality defect.
type Issue struct {
	Check    Check    `json:"check"      yaml:"check"`
	Severity Severity `json:"severity"   yaml:"severity"`
	Slug     string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	Position int      `json:"position,omitempty" yaml:"position,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Message  string   `json:"message"    yaml:"message"`
}

// String renders the issue in a compact single-line form.
func (i Issue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", i.Severity, i.Message)
	if i.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", i.Line)
	}
	return b.String()
}

// Issues is a collection of detected defects.
type Issues []Issue

// Errors returns only the issues with error severity.
func (is Issues) Errors() Issues {
	var out Issues
	for _, i := range is {
		if i.Severity == SeverityError {
			out = append(out, i)
		}
	}
	return out
}

// HasErrors reports whether any issue has error severity.
func (is Issues) HasErrors() bool {
	return len(is.Errors()) > 0
}

// Linter runs lint checks against toctree directives.
type Linter struct {
	resolver      toc.Resolver
	expectedCount int
	skip          map[Check]bool
}

// LinterOption is a functional option for configuring the Linter.
type LinterOption func(*Linter)

// WithResolver enables the dangling-reference check against resolver.
func WithResolver(resolver toc.Resolver) LinterOption {
	return func(l *Linter) {
		l.resolver = resolver
	}
}

// WithExpectedCount enables the distinct-count check.
func WithExpectedCount(n int) LinterOption {
	return func(l *Linter) {
		l.expectedCount = n
	}
}

// WithoutCheck disables a single check.
func WithoutCheck(c Check) LinterOption {
	return func(l *Linter) {
		l.skip[c] = true
	}
}

// New creates a Linter.
func New(opts ...LinterOption) *Linter {
	l := &Linter{skip: make(map[Check]bool)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run lints a directive and returns all detected issues, in entry order
// per check. A nil or empty result means the listing is clean.
func (l *Linter) Run(d *toc.Directive) Issues {
	var issues Issues

	if !l.skip[CheckEmptySlug] {
		issues = append(issues, l.checkEmptySlugs(d)...)
	}
	if !l.skip[CheckWhitespace] {
		issues = append(issues, l.checkWhitespace(d)...)
	}
	if !l.skip[CheckDuplicate] {
		issues = append(issues, l.checkDuplicates(d)...)
	}
	if !l.skip[CheckDangling] && l.resolver != nil {
		issues = append(issues, l.checkDangling(d)...)
	}
	if !l.skip[CheckCount] && l.expectedCount > 0 {
		issues = append(issues, l.checkCount(d)...)
	}

	return issues
}

func (l *Linter) checkEmptySlugs(d *toc.Directive) Issues {
	var issues Issues
	for _, e := range d.Entries {
		if e.Slug == "" {
			issues = append(issues, Issue{
				Check:    CheckEmptySlug,
				Severity: SeverityError,
				Position: e.Position,
				Line:     e.Line,
				Message:  fmt.Sprintf("entry %d has an empty slug", e.Position),
			})
		}
	}
	return issues
}

func (l *Linter) checkWhitespace(d *toc.Directive) Issues {
	var issues Issues
	for _, e := range d.Entries {
		if strings.ContainsAny(e.Slug, " \t") {
			issues = append(issues, Issue{
				Check:    CheckWhitespace,
				Severity: SeverityError,
				Slug:     e.Slug,
				Position: e.Position,
				Line:     e.Line,
				Message:  fmt.Sprintf("slug %q contains whitespace", e.Slug),
			})
		}
	}
	return issues
}

// checkDuplicates flags the second and later occurrences of a slug,
// pointing back at the first occurrence.
func (l *Linter) checkDuplicates(d *toc.Directive) Issues {
	var issues Issues
	first := make(map[string]toc.Entry, len(d.Entries))
	for _, e := range d.Entries {
		if e.Slug == "" {
			continue
		}
		prev, seen := first[e.Slug]
		if !seen {
			first[e.Slug] = e
			continue
		}
		issues = append(issues, Issue{
			Check:    CheckDuplicate,
			Severity: SeverityError,
			Slug:     e.Slug,
			Position: e.Position,
			Line:     e.Line,
			Message:  fmt.Sprintf("slug %q already listed at entry %d", e.Slug, prev.Position),
		})
	}
	return issues
}

func (l *Linter) checkDangling(d *toc.Directive) Issues {
	var issues Issues
	for _, e := range d.Entries {
		if e.Slug == "" {
			continue
		}
		if _, ok := l.resolver.Resolve(e.Slug); !ok {
			issues = append(issues, Issue{
				Check:    CheckDangling,
				Severity: SeverityWarning,
				Slug:     e.Slug,
				Position: e.Position,
				Line:     e.Line,
				Message:  fmt.Sprintf("slug %q does not resolve to a document", e.Slug),
			})
		}
	}
	return issues
}

func (l *Linter) checkCount(d *toc.Directive) Issues {
	distinct := d.Distinct()
	if distinct == l.expectedCount {
		return nil
	}
	return Issues{{
		Check:    CheckCount,
		Severity: SeverityError,
		Line:     d.Line,
		Message: fmt.Sprintf("expected %d distinct entries, found %d (%d listed)",
			l.expectedCount, distinct, len(d.Entries)),
	}}
}
