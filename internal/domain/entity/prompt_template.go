package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// SystemUserID owns the built-in default templates.
var SystemUserID = uuid.Nil

// PromptType groups templates by purpose.
type PromptType string

const (
	PromptTypeAdCopy PromptType = "ad_copy"
)

// PromptSection is one ordered, placeholder-bearing part of a template.
type PromptSection struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Content  string `json:"content" yaml:"content"`
	Editable bool   `json:"editable" yaml:"editable"`
	Required bool   `json:"required" yaml:"required"`
	Order    int    `json:"order" yaml:"order"`
}

// TemplateBody is the renderable part of a PromptTemplate.
type TemplateBody struct {
	Platform     Platform        `json:"platform" yaml:"platform"`
	SystemPrompt string          `json:"system_prompt" yaml:"system_prompt"`
	Sections     []PromptSection `json:"sections" yaml:"sections"`
}

// SortedSections returns a copy of the sections in ascending order.
func (b TemplateBody) SortedSections() []PromptSection {
	sections := make([]PromptSection, len(b.Sections))
	copy(sections, b.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	return sections
}

// PromptTemplate is a named prompt definition for a platform.
// Exactly one default exists per (prompt type, platform).
type PromptTemplate struct {
	ID         uuid.UUID    `json:"id"`
	UserID     uuid.UUID    `json:"user_id"`
	Name       string       `json:"name"`
	PromptType PromptType   `json:"prompt_type"`
	IsDefault  bool         `json:"is_default"`
	Template   TemplateBody `json:"template"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// OwnedBy reports whether userID may mutate the template.
func (t *PromptTemplate) OwnedBy(userID uuid.UUID) bool {
	return !t.IsDefault && t.UserID == userID
}

// GenerationContext is everything substituted into a template.
type GenerationContext struct {
	ProjectName          string   `json:"project_name"`
	VariationCount       int      `json:"variation_count"`
	VariationType        string   `json:"variation_type,omitempty"`
	AssetInterpretations []string `json:"asset_interpretations"`
	LandingPageContent   []string `json:"landing_page_content"`
}
