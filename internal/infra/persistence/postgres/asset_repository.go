package postgres

import (
	"context"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assetRepository implements the repository.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// CreateAsset persists a new asset of a project.
func (repo *assetRepository) CreateAsset(ctx context.Context, asset *entity.Asset) error {
	assetM := fromAssetDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAsset
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProjectNotFound.WrapMessage("invalid project reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset")
	}

	asset.ID = assetM.ID
	asset.CreatedAt = assetM.CreatedAt
	asset.UpdatedAt = assetM.UpdatedAt

	return nil
}

// FindAssetByID retrieves an asset by its unique ID.
func (repo *assetRepository) FindAssetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var assetM model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	return toAssetDomain(&assetM), nil
}

// FindAssetsByProject returns the project's assets oldest first.
func (repo *assetRepository) FindAssetsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Asset, error) {
	var assetModels []*model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assets by project")
	}

	assets := make([]*entity.Asset, 0, len(assetModels))
	for _, assetM := range assetModels {
		assets = append(assets, toAssetDomain(assetM))
	}

	return assets, nil
}

// DeleteAsset removes an asset by its ID.
func (repo *assetRepository) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AssetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete asset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssetNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAssetDomain(data *model.AssetModel) *entity.Asset {
	if data == nil {
		return nil
	}

	return &entity.Asset{
		ID:           data.ID,
		ProjectID:    data.ProjectID,
		RemoteFileID: data.RemoteFileID,
		FileName:     data.FileName,
		FileType:     entity.FileType(data.FileType),
		MimeType:     data.MimeType,
		FileSize:     data.FileSize,
		RemotePath:   data.RemotePath,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAssetDomain(data *entity.Asset) *model.AssetModel {
	if data == nil {
		return nil
	}

	return &model.AssetModel{
		ID:           data.ID,
		ProjectID:    data.ProjectID,
		RemoteFileID: data.RemoteFileID,
		FileName:     data.FileName,
		FileType:     string(data.FileType),
		MimeType:     data.MimeType,
		FileSize:     data.FileSize,
		RemotePath:   data.RemotePath,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
