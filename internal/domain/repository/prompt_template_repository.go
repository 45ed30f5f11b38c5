package repository

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for prompt template persistence.
var (
	// ErrTemplateNotFound is returned when a template is not found.
	ErrTemplateNotFound = errors.New("prompt template not found")
	// ErrDuplicateDefaultTemplate is returned when a second default is inserted for a platform and prompt type.
	ErrDuplicateDefaultTemplate = errors.New("default prompt template already exists")
)

// PromptTemplateRepository defines the interface for prompt template persistence.
type PromptTemplateRepository interface {
	// CreateTemplate persists a new template.
	CreateTemplate(ctx context.Context, template *entity.PromptTemplate) error

	// FindTemplateByID retrieves a template by its unique ID.
	FindTemplateByID(ctx context.Context, id uuid.UUID) (*entity.PromptTemplate, error)

	// FindDefaultTemplate returns the default template for the platform and prompt type.
	FindDefaultTemplate(ctx context.Context, platform entity.Platform, promptType entity.PromptType) (*entity.PromptTemplate, error)

	// FindTemplatesVisibleTo returns the user's own templates plus every default.
	// An empty platform matches all platforms.
	FindTemplatesVisibleTo(ctx context.Context, userID uuid.UUID, platform entity.Platform) ([]*entity.PromptTemplate, error)

	// UpdateTemplate saves name and body changes.
	UpdateTemplate(ctx context.Context, template *entity.PromptTemplate) error

	// DeleteTemplate removes a template by its ID.
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}
