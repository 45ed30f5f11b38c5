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

// landingPageCacheRepository implements the repository.LandingPageCacheRepository interface.
type landingPageCacheRepository struct {
	db *gorm.DB
}

// NewLandingPageCacheRepository is the constructor for landingPageCacheRepository.
func NewLandingPageCacheRepository(db *gorm.DB) repository.LandingPageCacheRepository {
	return &landingPageCacheRepository{
		db: db,
	}
}

// FindByURL returns the cached entry or ErrLandingPageNotFound.
func (repo *landingPageCacheRepository) FindByURL(ctx context.Context, url string) (*entity.LandingPageCacheEntry, error) {
	var pageM model.LandingPageCacheModel

	if err := repo.db.WithContext(ctx).
		Where("url = ?", url).
		First(&pageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLandingPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find landing page")
	}

	return toLandingPageDomain(&pageM), nil
}

// Upsert inserts the entry or overwrites the row with the same URL. A
// re-scrape restarts the entry's age, so created_at is overwritten too.
func (repo *landingPageCacheRepository) Upsert(ctx context.Context, entry *entity.LandingPageCacheEntry) error {
	pageM := fromLandingPageDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "content", "metadata", "created_at", "updated_at",
			}),
		}).
		Create(pageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert landing page")
	}

	stored, err := repo.FindByURL(ctx, entry.URL)
	if err != nil {
		return err
	}
	*entry = *stored

	return nil
}

// DeleteByURL removes the entry for url, if any.
func (repo *landingPageCacheRepository) DeleteByURL(ctx context.Context, url string) error {
	if err := repo.db.WithContext(ctx).
		Where("url = ?", url).
		Delete(&model.LandingPageCacheModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete landing page")
	}

	return nil
}

// DeleteCreatedBefore removes entries created before cutoff.
func (repo *landingPageCacheRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff.UTC()).
		Delete(&model.LandingPageCacheModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired landing pages")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toLandingPageDomain(data *model.LandingPageCacheModel) *entity.LandingPageCacheEntry {
	if data == nil {
		return nil
	}

	metadata := data.Metadata.Data()
	keywords := metadata.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return &entity.LandingPageCacheEntry{
		ID:      data.ID,
		URL:     data.URL,
		Title:   data.Title,
		Content: data.Content,
		Metadata: entity.LandingPageMetadata{
			Description:   metadata.Description,
			Keywords:      keywords,
			OGTitle:       metadata.OGTitle,
			OGDescription: metadata.OGDescription,
			ScrapedAt:     metadata.ScrapedAt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLandingPageDomain(data *entity.LandingPageCacheEntry) *model.LandingPageCacheModel {
	if data == nil {
		return nil
	}

	return &model.LandingPageCacheModel{
		ID:      data.ID,
		URL:     data.URL,
		Title:   data.Title,
		Content: data.Content,
		Metadata: datatypes.NewJSONType(model.LandingPageMetadata{
			Description:   data.Metadata.Description,
			Keywords:      data.Metadata.Keywords,
			OGTitle:       data.Metadata.OGTitle,
			OGDescription: data.Metadata.OGDescription,
			ScrapedAt:     data.Metadata.ScrapedAt,
		}),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
