package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docmap/pkg/catalogs"
)

const indexHTML = `<html><body>
<div class="toctree-wrapper">
<ul>
<li><a href="sd-turbo.html">SD-Turbo</a></li>
<li><a href="kolors.html">Kolors</a></li>
<li><a href="sd-turbo.html">SD-Turbo</a></li>
<li><a href="index.html">Image Models</a></li>
</ul>
</div>
</body></html>`

const sdTurboHTML = `<html><body>
<h1>SD-Turbo</h1>
<ul>
<li><strong>Model ID:</strong> sd-turbo</li>
<li><strong>Model Family:</strong> stable_diffusion</li>
<li><strong>Abilities:</strong> text2image</li>
<li><strong>Default Resolution:</strong> 512x512</li>
<li><strong>Model Source:</strong> https://huggingface.co/stabilityai/sd-turbo</li>
</ul>
</body></html>`

const kolorsHTML = `<html><body>
<h1>Kolors</h1>
<ul>
<li><strong>Model Family:</strong> kolors</li>
<li><strong>Abilities:</strong> text2image, image2image</li>
</ul>
</body></html>`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	pages := map[string]string{
		"/index.html":    indexHTML,
		"/sd-turbo.html": sdTurboHTML,
		"/kolors.html":   kolorsHTML,
	}
	for path, body := range pages {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	c, err := New(Config{IndexURL: "https://example.com/index.html"})
	require.NoError(t, err)
	assert.Equal(t, "hub", c.Name())
	assert.Equal(t, 2.0, c.config.RateLimit)
}

func TestListModels(t *testing.T) {
	server := testServer(t)

	client, err := New(Config{
		IndexURL:  server.URL + "/index.html",
		RateLimit: 1000, // don't slow the test down
	})
	require.NoError(t, err)

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)

	// The duplicated sd-turbo entry collapses to one model; the index
	// self-link is ignored.
	require.Len(t, models, 2)

	sdTurbo := models[0]
	assert.Equal(t, "sd-turbo", sdTurbo.ID)
	assert.Equal(t, "SD-Turbo", sdTurbo.Name)
	assert.Equal(t, "stable_diffusion", sdTurbo.Family)
	assert.Equal(t, "512x512", sdTurbo.DefaultResolution)
	assert.Equal(t, "https://huggingface.co/stabilityai/sd-turbo", sdTurbo.Source)
	assert.Equal(t, []catalogs.ModelAbility{catalogs.AbilityText2Image}, sdTurbo.Abilities)

	kolors := models[1]
	assert.Equal(t, "kolors", kolors.ID)
	assert.Equal(t, []catalogs.ModelAbility{
		catalogs.AbilityText2Image,
		catalogs.AbilityImage2Image,
	}, kolors.Abilities)
}

func TestListModelsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := New(Config{IndexURL: server.URL + "/index.html", RateLimit: 1000})
	require.NoError(t, err)

	_, err = client.ListModels(context.Background())
	require.Error(t, err)
}

func TestSlugFromHref(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"sd-turbo.html", "sd-turbo"},
		{"../image/kolors.html", "kolors"},
		{"sd3-medium.html#usage", "sd3-medium"},
		{"stable-diffusion-v1.5.html", "stable-diffusion-v1.5"},
		{"index.html?v=2", "index"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugFromHref(tt.href), tt.href)
	}
}
