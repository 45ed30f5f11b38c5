package postgres

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// interpretationCacheRepository implements the repository.InterpretationCacheRepository interface.
type interpretationCacheRepository struct {
	db *gorm.DB
}

// NewInterpretationCacheRepository is the constructor for interpretationCacheRepository.
func NewInterpretationCacheRepository(db *gorm.DB) repository.InterpretationCacheRepository {
	return &interpretationCacheRepository{
		db: db,
	}
}

// FindByRemoteFileID returns the cached entry or ErrInterpretationNotFound.
func (repo *interpretationCacheRepository) FindByRemoteFileID(ctx context.Context, remoteFileID string) (*entity.InterpretationCacheEntry, error) {
	var entryM model.InterpretationCacheModel

	if err := repo.db.WithContext(ctx).
		Where("remote_file_id = ?", remoteFileID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInterpretationNotFound
		}

		return nil, errors.Wrap(err, "failed to find interpretation")
	}

	return toInterpretationDomain(&entryM), nil
}

// Upsert inserts the entry or overwrites the row with the same remote file id.
// Concurrent writers race benignly: the last write wins.
func (repo *interpretationCacheRepository) Upsert(ctx context.Context, entry *entity.InterpretationCacheEntry) error {
	entryM := fromInterpretationDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "remote_file_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"file_type", "interpretation", "processing_method", "metadata", "updated_at",
			}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert interpretation")
	}

	stored, err := repo.FindByRemoteFileID(ctx, entry.RemoteFileID)
	if err != nil {
		return err
	}
	*entry = *stored

	return nil
}

// DeleteUpdatedBefore removes entries last updated before cutoff.
func (repo *interpretationCacheRepository) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("updated_at < ?", cutoff.UTC()).
		Delete(&model.InterpretationCacheModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete stale interpretations")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toInterpretationDomain(data *model.InterpretationCacheModel) *entity.InterpretationCacheEntry {
	if data == nil {
		return nil
	}

	return &entity.InterpretationCacheEntry{
		ID:               data.ID,
		RemoteFileID:     data.RemoteFileID,
		FileType:         entity.FileType(data.FileType),
		Interpretation:   data.Interpretation,
		ProcessingMethod: entity.ProcessingMethod(data.ProcessingMethod),
		Metadata:         map[string]any(data.Metadata),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromInterpretationDomain(data *entity.InterpretationCacheEntry) *model.InterpretationCacheModel {
	if data == nil {
		return nil
	}

	metadata := datatypes.JSONMap{}
	for k, v := range data.Metadata {
		metadata[k] = v
	}

	return &model.InterpretationCacheModel{
		ID:               data.ID,
		RemoteFileID:     data.RemoteFileID,
		FileType:         string(data.FileType),
		Interpretation:   data.Interpretation,
		ProcessingMethod: string(data.ProcessingMethod),
		Metadata:         metadata,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
