package usecase

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput holds the fields of a new project.
type CreateProjectInput struct {
	Name            string          `json:"name" validate:"required,max=200"`
	Platform        entity.Platform `json:"platform" validate:"required,oneof=facebook google tiktok"`
	LandingPageURLs []string        `json:"landing_page_urls" validate:"max=10,dive,url"`
	SystemPrompt    string          `json:"system_prompt"`
	VariationCount  int             `json:"variation_count" validate:"omitempty,min=1,max=10"`
}

// UpdateProjectInput is a partial update; nil fields are left unchanged.
type UpdateProjectInput struct {
	Name            *string          `json:"name" validate:"omitempty,max=200"`
	Platform        *entity.Platform `json:"platform" validate:"omitempty,oneof=facebook google tiktok"`
	LandingPageURLs []string         `json:"landing_page_urls" validate:"omitempty,max=10,dive,url"`
	SystemPrompt    *string          `json:"system_prompt"`
	VariationCount  *int             `json:"variation_count" validate:"omitempty,min=1,max=10"`
}

// ImportFailure explains why a path was not imported.
type ImportFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// ImportAssetsOutput lists the created assets and the rejected paths.
type ImportAssetsOutput struct {
	Imported []*entity.Asset `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}

// ProjectUsecase manages projects and their assets. Every call checks ownership.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, userID uuid.UUID, input *CreateProjectInput) (*entity.Project, error)
	GetProject(ctx context.Context, userID, projectID uuid.UUID) (*entity.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)
	UpdateProject(ctx context.Context, userID, projectID uuid.UUID, input *UpdateProjectInput) (*entity.Project, error)
	DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error

	// ImportAssets creates assets from remote file metadata. Unsupported files
	// and duplicates are reported per path.
	ImportAssets(ctx context.Context, userID, projectID uuid.UUID, paths []string) (*ImportAssetsOutput, error)
	ListAssets(ctx context.Context, userID, projectID uuid.UUID) ([]*entity.Asset, error)
	DeleteAsset(ctx context.Context, userID, projectID, assetID uuid.UUID) error
}
