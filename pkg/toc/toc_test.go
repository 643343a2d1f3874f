package toc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docmap/pkg/toc"
)

func TestNew(t *testing.T) {
	d := toc.New(1, "sd-turbo", "kolors")

	assert.Equal(t, 1, d.MaxDepth)
	require.Len(t, d.Options, 1)
	assert.Equal(t, toc.Option{Name: "maxdepth", Value: "1"}, d.Options[0])
	assert.Equal(t, []string{"sd-turbo", "kolors"}, d.Slugs())
	assert.Equal(t, 2, d.Entries[1].Position)
}

func TestStringCanonicalForm(t *testing.T) {
	d := toc.New(1, "sd-turbo", "kolors")

	want := ".. toctree::\n" +
		"   :maxdepth: 1\n" +
		"\n" +
		"   sd-turbo\n" +
		"   kolors\n"
	assert.Equal(t, want, d.String())
}

func TestStringRoundTrip(t *testing.T) {
	d, err := toc.ParseString(imageIndexPage)
	require.NoError(t, err)

	first := d.String()

	// Re-parsing the serialized form yields the same listing.
	reparsed, err := toc.ParseString(first)
	require.NoError(t, err)
	assert.Equal(t, d.Slugs(), reparsed.Slugs())
	assert.Equal(t, d.MaxDepth, reparsed.MaxDepth)
	assert.Equal(t, d.Options, reparsed.Options)

	// Serializing twice produces identical text.
	assert.Equal(t, first, reparsed.String())
}

func TestStringPreservesUnknownOptions(t *testing.T) {
	page := ".. toctree::\n   :maxdepth: 1\n   :hidden:\n\n   sd-turbo\n"
	d, err := toc.ParseString(page)
	require.NoError(t, err)
	assert.Equal(t, page, d.String())
}

func TestStringExplicitTitle(t *testing.T) {
	page := ".. toctree::\n   :maxdepth: 1\n\n   SD Turbo <sd-turbo>\n"
	d, err := toc.ParseString(page)
	require.NoError(t, err)
	assert.Equal(t, page, d.String())
}

func TestNav(t *testing.T) {
	titles := map[string]string{
		"sd-turbo": "SD-Turbo",
		"kolors":   "Kolors",
	}
	resolver := toc.ResolverFunc(func(slug string) (string, bool) {
		title, ok := titles[slug]
		return title, ok
	})

	d := toc.New(1, "sd-turbo", "kolors", "sd3-medium")
	nav := d.Nav(resolver)
	require.Len(t, nav, 3)

	assert.Equal(t, toc.NavEntry{Slug: "sd-turbo", Title: "SD-Turbo", Href: "sd-turbo.html"}, nav[0])
	assert.Equal(t, toc.NavEntry{Slug: "kolors", Title: "Kolors", Href: "kolors.html"}, nav[1])

	// Dangling slugs render a placeholder, they are never dropped.
	assert.True(t, nav[2].Missing)
	assert.Equal(t, "sd3-medium", nav[2].Title)
}

func TestNavNilResolver(t *testing.T) {
	d := toc.New(1, "sd-turbo")
	nav := d.Nav(nil)
	require.Len(t, nav, 1)
	assert.True(t, nav[0].Missing)
}

func TestRenderNav(t *testing.T) {
	resolver := toc.ResolverFunc(func(slug string) (string, bool) {
		if slug == "sd-turbo" {
			return "SD-Turbo", true
		}
		return "", false
	})
	d := toc.New(1, "sd-turbo", "missing-page")

	var buf bytes.Buffer
	require.NoError(t, d.RenderNav(&buf, resolver))

	out := buf.String()
	assert.Contains(t, out, "[SD-Turbo](sd-turbo.html)")
	assert.Contains(t, out, "missing-page (missing)")

	// Idempotent: rendering the same listing twice is byte-identical.
	var again bytes.Buffer
	require.NoError(t, d.RenderNav(&again, resolver))
	assert.Equal(t, buf.String(), again.String())
}
