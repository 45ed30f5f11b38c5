package entity

import (
	"time"

	"github.com/google/uuid"
)

// VariationRotation is the order variation types are assigned in.
var VariationRotation = []string{"benefits", "pain-agitation", "storytelling"}

// VariationTypeFor returns the rotation entry for a zero-based variation index.
func VariationTypeFor(index int) string {
	return VariationRotation[index%len(VariationRotation)]
}

// AdContent is the platform-shaped body of a generated variation.
// Implementations are FacebookAdContent, GoogleAdContent and TikTokAdContent.
type AdContent interface {
	Platform() Platform
}

// FacebookAdContent is a single Facebook feed ad.
type FacebookAdContent struct {
	Headline     string `json:"headline"`
	PrimaryText  string `json:"primary_text"`
	Description  string `json:"description"`
	CallToAction string `json:"call_to_action"`
}

func (FacebookAdContent) Platform() Platform { return PlatformFacebook }

// GoogleAdContent is a responsive search ad.
type GoogleAdContent struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

func (GoogleAdContent) Platform() Platform { return PlatformGoogle }

// TikTokAdContent is a short video script.
type TikTokAdContent struct {
	Hook         string   `json:"hook"`
	Script       string   `json:"script"`
	CallToAction string   `json:"call_to_action"`
	Hashtags     []string `json:"hashtags"`
}

func (TikTokAdContent) Platform() Platform { return PlatformTikTok }

// GenerationMetadata describes the model call that produced a variation.
type GenerationMetadata struct {
	Model            string  `json:"model"`
	Temperature      float64 `json:"temperature"`
	PromptTokens     int64   `json:"prompt_tokens"`
	CompletionTokens int64   `json:"completion_tokens"`
	TotalTokens      int64   `json:"total_tokens"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

// GenerationRecord is one persisted variation of a project run.
type GenerationRecord struct {
	ID              uuid.UUID          `json:"id"`
	ProjectID       uuid.UUID          `json:"project_id"`
	VariationNumber int                `json:"variation_number"` // 1-based.
	Platform        Platform           `json:"platform"`
	VariationType   string             `json:"variation_type"`
	Content         AdContent          `json:"content"`
	Context         GenerationContext  `json:"context"`
	Metadata        GenerationMetadata `json:"generation_metadata"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
