// Package google lists image-generation models from the Google AI Studio
// API via the GenAI SDK.
package google

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/agentstation/docmap/pkg/catalogs"
	"github.com/agentstation/docmap/pkg/errors"
	"github.com/agentstation/docmap/pkg/logging"
)

// apiKeyEnv is the environment variable holding the AI Studio API key.
const apiKeyEnv = "GOOGLE_API_KEY"

// Client lists models from Google AI Studio.
type Client struct {
	apiKey string

	// GenAI client - reused across calls
	genaiClient *genai.Client
	mu          sync.Mutex
}

// NewClient creates a client. The API key falls back to GOOGLE_API_KEY.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv)
	}
	return &Client{apiKey: apiKey}
}

// Name implements sources.Source.
func (c *Client) Name() string {
	return "google"
}

// ListModels fetches all models with pagination and keeps only the
// image-generation ones.
func (c *Client) ListModels(ctx context.Context) ([]catalogs.Model, error) {
	client, err := c.getOrCreateClient(ctx)
	if err != nil {
		return nil, err
	}

	log := logging.Ctx(ctx)

	var models []catalogs.Model
	pageToken := ""
	for {
		config := &genai.ListModelsConfig{
			QueryBase: genai.Ptr(true),
			PageSize:  100,
		}
		if pageToken != "" {
			config.PageToken = pageToken
		}

		response, err := client.Models.List(ctx, config)
		if err != nil {
			return nil, errors.WrapSource("google", 0, err)
		}

		for _, m := range response.Items {
			if !isImageModel(m) {
				continue
			}
			models = append(models, convertModel(m))
		}

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	log.Debug().Int("models", len(models)).Msg("listed google image models")
	return models, nil
}

// getOrCreateClient lazily builds the GenAI client.
func (c *Client) getOrCreateClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.genaiClient != nil {
		return c.genaiClient, nil
	}
	if c.apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  c.apiKey,
	})
	if err != nil {
		return nil, errors.WrapSource("google", 0, err)
	}

	c.genaiClient = client
	return client, nil
}

// isImageModel reports whether a listed model generates images.
// AI Studio exposes these as the imagen family.
func isImageModel(m *genai.Model) bool {
	id := strings.ToLower(extractModelID(m.Name))
	if strings.Contains(id, "imagen") {
		return true
	}
	for _, action := range m.SupportedActions {
		if action == "predict" && strings.Contains(id, "image") {
			return true
		}
	}
	return false
}

// convertModel maps a GenAI model to a catalog entry.
func convertModel(m *genai.Model) catalogs.Model {
	id := extractModelID(m.Name)

	name := m.DisplayName
	if name == "" {
		name = id
	}

	return catalogs.Model{
		ID:          strings.ToLower(id),
		Name:        name,
		Family:      "imagen",
		Abilities:   []catalogs.ModelAbility{catalogs.AbilityText2Image},
		Description: m.Description,
		Source:      "https://ai.google.dev/gemini-api/docs/models",
		UpdatedAt:   time.Now().UTC(),
	}
}

// extractModelID strips the "models/" prefix from a GenAI model name.
func extractModelID(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
