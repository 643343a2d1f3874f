// Package hub scrapes a rendered model-index page and turns its listed
// model cards into catalog entries. It is used for upstream doc sites
// that publish their built-in model listing as HTML only.
package hub

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"

	"github.com/agentstation/docmap/pkg/catalogs"
	"github.com/agentstation/docmap/pkg/errors"
	"github.com/agentstation/docmap/pkg/logging"
)

// Config controls the hub client.
type Config struct {
	// IndexURL is the model-index page to scrape.
	IndexURL string

	// RateLimit is the request budget in requests per second.
	RateLimit float64

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Progress enables a terminal progress bar while fetching.
	Progress bool
}

// Client scrapes model listings from an HTML index.
type Client struct {
	config  Config
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a hub client for the given index URL.
func New(config Config) (*Client, error) {
	if config.IndexURL == "" {
		return nil, errors.NewValidationError("index_url", config.IndexURL, "must not be empty")
	}
	if _, err := url.Parse(config.IndexURL); err != nil {
		return nil, errors.NewValidationError("index_url", config.IndexURL, err.Error())
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2 // 2 requests per second by default
	}

	return &Client{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}, nil
}

// Name implements sources.Source.
func (c *Client) Name() string {
	return "hub"
}

// ListModels fetches the index page, then each linked model page, and
// returns the scraped catalog entries. Requests are rate limited.
func (c *Client) ListModels(ctx context.Context) ([]catalogs.Model, error) {
	log := logging.Ctx(ctx)

	doc, err := c.fetch(ctx, c.config.IndexURL)
	if err != nil {
		return nil, err
	}

	refs := c.extractModelLinks(doc)
	log.Debug().Int("links", len(refs)).Str("url", c.config.IndexURL).Msg("scraped model index")

	var bar *progressbar.ProgressBar
	if c.config.Progress {
		bar = progressbar.Default(int64(len(refs)), "fetching models")
	}

	models := make([]catalogs.Model, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if bar != nil {
			_ = bar.Add(1)
		}
		if _, dup := seen[ref.slug]; dup {
			// The known duplicated-listing defect upstream; keep the
			// first occurrence only.
			log.Warn().Str("slug", ref.slug).Msg("duplicate index entry")
			continue
		}
		seen[ref.slug] = struct{}{}

		model, err := c.fetchModel(ctx, ref)
		if err != nil {
			log.Warn().Err(err).Str("slug", ref.slug).Msg("skipping model page")
			continue
		}
		models = append(models, model)
	}

	return models, nil
}

// modelRef is a link from the index to a model page.
type modelRef struct {
	slug string
	href string
}

// extractModelLinks pulls model page links out of the index's navigation
// listing.
func (c *Client) extractModelLinks(doc *goquery.Document) []modelRef {
	var refs []modelRef
	doc.Find(".toctree-wrapper a, nav a, .toctree a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		slug := slugFromHref(href)
		if slug == "" || slug == "index" {
			return
		}
		refs = append(refs, modelRef{slug: slug, href: href})
	})
	return refs
}

// fetchModel loads a model page and scrapes its specification list.
func (c *Client) fetchModel(ctx context.Context, ref modelRef) (catalogs.Model, error) {
	pageURL, err := c.resolveHref(ref.href)
	if err != nil {
		return catalogs.Model{}, err
	}

	doc, err := c.fetch(ctx, pageURL)
	if err != nil {
		return catalogs.Model{}, err
	}

	model := catalogs.Model{
		ID:        ref.slug,
		Name:      strings.TrimSpace(doc.Find("h1").First().Text()),
		UpdatedAt: time.Now().UTC(),
	}
	if model.Name == "" {
		model.Name = ref.slug
	}

	// Spec bullets follow the "**Key:** value" convention.
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		key, value, found := strings.Cut(text, ":")
		if !found {
			return
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "model family":
			model.Family = value
		case "abilities":
			model.Abilities = parseAbilities(value)
		case "default resolution":
			model.DefaultResolution = value
		case "model source":
			if fields := strings.Fields(value); len(fields) > 0 {
				model.Source = fields[0]
			}
		}
	})

	return model, nil
}

// fetch GETs a URL and parses it, honoring the rate limit.
func (c *Client) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.ErrCanceled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errors.WrapSource("hub", 0, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.WrapSource("hub", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewSourceError("hub", resp.StatusCode, "unexpected status fetching "+pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.WrapParse("html", pageURL, err)
	}
	return doc, nil
}

// resolveHref resolves a possibly relative link against the index URL.
func (c *Client) resolveHref(href string) (string, error) {
	base, err := url.Parse(c.config.IndexURL)
	if err != nil {
		return "", errors.WrapSource("hub", 0, err)
	}
	rel, err := url.Parse(href)
	if err != nil {
		return "", errors.WrapSource("hub", 0, err)
	}
	return base.ResolveReference(rel).String(), nil
}

// slugFromHref extracts the extension-less document slug from a link.
func slugFromHref(href string) string {
	href = strings.SplitN(href, "#", 2)[0]
	href = strings.SplitN(href, "?", 2)[0]
	href = strings.TrimSuffix(href, "/")
	if idx := strings.LastIndex(href, "/"); idx >= 0 {
		href = href[idx+1:]
	}
	for _, ext := range []string{".html", ".htm", ".rst", ".md"} {
		href = strings.TrimSuffix(href, ext)
	}
	return href
}

// parseAbilities converts a comma-separated ability list.
func parseAbilities(value string) []catalogs.ModelAbility {
	var abilities []catalogs.ModelAbility
	for _, part := range strings.Split(value, ",") {
		switch catalogs.ModelAbility(strings.TrimSpace(part)) {
		case catalogs.AbilityText2Image:
			abilities = append(abilities, catalogs.AbilityText2Image)
		case catalogs.AbilityImage2Image:
			abilities = append(abilities, catalogs.AbilityImage2Image)
		case catalogs.AbilityInpainting:
			abilities = append(abilities, catalogs.AbilityInpainting)
		}
	}
	return abilities
}
