package usecase

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
)

// TemplateInput creates or replaces a user template.
type TemplateInput struct {
	Name         string                 `json:"name" validate:"required,max=200"`
	Platform     entity.Platform        `json:"platform" validate:"required,oneof=facebook google tiktok"`
	SystemPrompt string                 `json:"system_prompt"`
	Sections     []entity.PromptSection `json:"sections" validate:"required,min=1,dive"`
}

// PromptTemplateUsecase resolves and renders prompt templates.
type PromptTemplateUsecase interface {
	// GetDefaultTemplate returns the default for platform and promptType,
	// creating it from the built-in seed when missing.
	GetDefaultTemplate(ctx context.Context, platform entity.Platform, promptType entity.PromptType) (*entity.PromptTemplate, error)

	// BuildPrompt renders template with the generation context. It is pure.
	BuildPrompt(template *entity.PromptTemplate, genCtx *entity.GenerationContext) string

	// SeedDefaults ensures a default exists for every seeded platform.
	// It returns the number of templates created.
	SeedDefaults(ctx context.Context) (int, error)

	ListTemplates(ctx context.Context, userID uuid.UUID, platform entity.Platform) ([]*entity.PromptTemplate, error)
	GetTemplate(ctx context.Context, userID, templateID uuid.UUID) (*entity.PromptTemplate, error)
	CreateTemplate(ctx context.Context, userID uuid.UUID, input *TemplateInput) (*entity.PromptTemplate, error)
	UpdateTemplate(ctx context.Context, userID, templateID uuid.UUID, input *TemplateInput) (*entity.PromptTemplate, error)
	DeleteTemplate(ctx context.Context, userID, templateID uuid.UUID) error
}
