package catalogs

import (
	"strings"
	"time"

	"github.com/agentstation/docmap/pkg/errors"
)

// ModelAbility describes what an image-generation model can do.
type ModelAbility string

// Abilities of built-in image models.
const (
	// AbilityText2Image generates an image from a text prompt.
	AbilityText2Image ModelAbility = "text2image"

	// AbilityImage2Image transforms an input image guided by a prompt.
	AbilityImage2Image ModelAbility = "image2image"

	// AbilityInpainting fills masked regions of an input image.
	AbilityInpainting ModelAbility = "inpainting"
)

// Model is a built-in image-generation model described by the catalog.
// Each model maps to exactly one documentation page whose slug is the
// model ID.
type Model struct {
	// ID is the model's slug, e.g. "sd-turbo". It must be non-empty,
	// free of whitespace, and unique within a catalog.
	ID string `yaml:"id" json:"id"`

	// Name is the display title, e.g. "SD-Turbo".
	Name string `yaml:"name" json:"name"`

	// Family groups related models, e.g. "stable_diffusion".
	Family string `yaml:"family,omitempty" json:"family,omitempty"`

	// Abilities lists what the model can do.
	Abilities []ModelAbility `yaml:"abilities,omitempty" json:"abilities,omitempty"`

	// DefaultResolution is the model's default output size, e.g. "1024x1024".
	DefaultResolution string `yaml:"default_resolution,omitempty" json:"default_resolution,omitempty"`

	// Source is where the model weights are hosted.
	Source string `yaml:"source,omitempty" json:"source,omitempty"`

	// Description is a short human-readable summary for the model page.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// UpdatedAt is when the catalog entry last changed.
	UpdatedAt time.Time `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Slug returns the documentation page slug for the model.
func (m *Model) Slug() string {
	return m.ID
}

// Title returns the display title, falling back to the ID.
func (m *Model) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Has reports whether the model has the given ability.
func (m *Model) Has(ability ModelAbility) bool {
	for _, a := range m.Abilities {
		if a == ability {
			return true
		}
	}
	return false
}

// Validate checks that the model satisfies catalog invariants.
func (m *Model) Validate() error {
	if m.ID == "" {
		return errors.NewValidationError("id", m.ID, "must not be empty")
	}
	if strings.ContainsAny(m.ID, " \t\n") {
		return errors.NewValidationError("id", m.ID, "must not contain whitespace")
	}
	if m.ID != strings.ToLower(m.ID) {
		return errors.NewValidationError("id", m.ID, "must be lowercase")
	}
	for _, a := range m.Abilities {
		switch a {
		case AbilityText2Image, AbilityImage2Image, AbilityInpainting:
		default:
			return errors.NewValidationError("abilities", a, "unknown ability "+string(a))
		}
	}
	return nil
}
