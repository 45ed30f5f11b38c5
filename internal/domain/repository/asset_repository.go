package repository

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for asset persistence.
var (
	// ErrAssetNotFound is returned when an asset is not found.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDuplicateAsset is returned when the remote file is already imported into the project.
	ErrDuplicateAsset = errors.New("asset already exists")
)

// AssetRepository defines the interface for project asset persistence.
type AssetRepository interface {
	CreateAsset(ctx context.Context, asset *entity.Asset) error
	FindAssetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
	// FindAssetsByProject returns the project's assets oldest first.
	FindAssetsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Asset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}
