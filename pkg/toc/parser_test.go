package toc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docmap/pkg/errors"
	"github.com/agentstation/docmap/pkg/toc"
)

const imageIndexPage = `Image Models
============

The following is a list of built-in image models:

.. toctree::
   :maxdepth: 1

   sd-turbo
   sdxl-turbo
   stable-diffusion-v1.5
   stable-diffusion-xl-base-1.0
   stable-diffusion-inpainting
   stable-diffusion-xl-inpainting
   stable-diffusion-2-inpainting
   stable-diffusion-xl-inpainting
   kolors
   sd3-medium
`

func TestParseImageIndex(t *testing.T) {
	d, err := toc.ParseString(imageIndexPage)
	require.NoError(t, err)

	assert.Equal(t, 1, d.MaxDepth)
	assert.Equal(t, 6, d.Line)
	require.Len(t, d.Entries, 10)

	// Listing order is preserved exactly, duplicates included.
	assert.Equal(t, []string{
		"sd-turbo",
		"sdxl-turbo",
		"stable-diffusion-v1.5",
		"stable-diffusion-xl-base-1.0",
		"stable-diffusion-inpainting",
		"stable-diffusion-xl-inpainting",
		"stable-diffusion-2-inpainting",
		"stable-diffusion-xl-inpainting",
		"kolors",
		"sd3-medium",
	}, d.Slugs())

	// The duplicate is carried through, not deduplicated.
	assert.Equal(t, 9, d.Distinct())

	// Positions are 1-based listing positions.
	assert.Equal(t, 1, d.Entries[0].Position)
	assert.Equal(t, 10, d.Entries[9].Position)
	assert.Equal(t, 9, d.Entries[0].Line)
}

func TestParseNoDirective(t *testing.T) {
	_, err := toc.ParseString("Just a page\n===========\n\nNo listing here.\n")
	assert.ErrorIs(t, err, errors.ErrNoDirective)
}

func TestParseAllMultipleDirectives(t *testing.T) {
	page := `.. toctree::
   :maxdepth: 1

   first

Some prose in between.

.. toctree::
   :maxdepth: 2

   second
   third
`
	directives, err := toc.ParseAll(strings.NewReader(page), "index.rst")
	require.NoError(t, err)
	require.Len(t, directives, 2)

	assert.Equal(t, []string{"first"}, directives[0].Slugs())
	assert.Equal(t, []string{"second", "third"}, directives[1].Slugs())
	assert.Equal(t, 2, directives[1].MaxDepth)
}

func TestParseExplicitTitles(t *testing.T) {
	page := `.. toctree::
   :maxdepth: 1

   SD Turbo <sd-turbo>
   kolors
`
	d, err := toc.ParseString(page)
	require.NoError(t, err)
	require.Len(t, d.Entries, 2)

	assert.Equal(t, "sd-turbo", d.Entries[0].Slug)
	assert.Equal(t, "SD Turbo", d.Entries[0].Title)
	assert.Equal(t, "kolors", d.Entries[1].Slug)
	assert.Empty(t, d.Entries[1].Title)
}

func TestParseUnknownOptionsPreserved(t *testing.T) {
	page := `.. toctree::
   :maxdepth: 1
   :hidden:
   :caption: Built-in Models

   sd-turbo
`
	d, err := toc.ParseString(page)
	require.NoError(t, err)

	require.Len(t, d.Options, 3)
	assert.Equal(t, toc.Option{Name: "maxdepth", Value: "1"}, d.Options[0])
	assert.Equal(t, toc.Option{Name: "hidden", Value: ""}, d.Options[1])
	assert.Equal(t, toc.Option{Name: "caption", Value: "Built-in Models"}, d.Options[2])
}

func TestParseBadMaxDepth(t *testing.T) {
	page := ".. toctree::\n   :maxdepth: deep\n\n   sd-turbo\n"
	_, err := toc.Parse(strings.NewReader(page), "index.rst")
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "index.rst", parseErr.File)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseWhitespaceNormalization(t *testing.T) {
	// Entries keep internal whitespace (a linter concern) but are trimmed.
	page := ".. toctree::\n   :maxdepth: 1\n\n     sd-turbo   \n\t kolors\n"
	d, err := toc.ParseString(page)
	require.NoError(t, err)
	assert.Equal(t, []string{"sd-turbo", "kolors"}, d.Slugs())
}

func TestParseBlockEndsAtDedent(t *testing.T) {
	page := `.. toctree::
   :maxdepth: 1

   sd-turbo
Not an entry, the block ended.
`
	d, err := toc.ParseString(page)
	require.NoError(t, err)
	assert.Equal(t, []string{"sd-turbo"}, d.Slugs())
}
