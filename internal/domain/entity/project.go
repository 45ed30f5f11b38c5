package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is an advertising platform ad copy is generated for.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
)

// IsValid reports whether p is a supported platform.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformGoogle, PlatformTikTok:
		return true
	}

	return false
}

// ProjectStatus follows draft -> processing -> completed | failed.
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusProcessing ProjectStatus = "processing"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusFailed     ProjectStatus = "failed"
)

// DefaultVariationCount is used when a project does not specify one.
const DefaultVariationCount = 3

// Project groups assets and landing pages for one ad copy run.
type Project struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	Name            string        `json:"name"`
	Platform        Platform      `json:"platform"`
	LandingPageURLs []string      `json:"landing_page_urls"`
	SystemPrompt    string        `json:"system_prompt,omitempty"` // Overrides the template's system prompt when set.
	VariationCount  int           `json:"variation_count"`
	Status          ProjectStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
