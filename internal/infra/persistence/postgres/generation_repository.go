package postgres

import (
	"context"
	"encoding/json"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// generationRepository implements the repository.GenerationRepository interface.
type generationRepository struct {
	db *gorm.DB
}

// NewGenerationRepository is the constructor for generationRepository.
func NewGenerationRepository(db *gorm.DB) repository.GenerationRepository {
	return &generationRepository{
		db: db,
	}
}

// CreateGenerations inserts the records of one project run.
func (repo *generationRepository) CreateGenerations(ctx context.Context, records []*entity.GenerationRecord) error {
	if len(records) == 0 {
		return nil
	}

	generationModels := make([]*model.GenerationModel, 0, len(records))
	for _, record := range records {
		generationM, err := fromGenerationDomain(record)
		if err != nil {
			return err
		}
		generationModels = append(generationModels, generationM)
	}

	if err := repo.db.WithContext(ctx).Create(generationModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProjectNotFound.WrapMessage("invalid project reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create generations")
	}

	for i, generationM := range generationModels {
		records[i].ID = generationM.ID
		records[i].CreatedAt = generationM.CreatedAt
		records[i].UpdatedAt = generationM.UpdatedAt
	}

	return nil
}

// FindGenerationsByProject returns records ordered by variation number.
func (repo *generationRepository) FindGenerationsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.GenerationRecord, error) {
	var generationModels []*model.GenerationModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("variation_number ASC").
		Find(&generationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find generations by project")
	}

	records := make([]*entity.GenerationRecord, 0, len(generationModels))
	for _, generationM := range generationModels {
		record, err := toGenerationDomain(generationM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// DeleteGenerationsByProject removes every record of the project.
func (repo *generationRepository) DeleteGenerationsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&model.GenerationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete generations")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toGenerationDomain(data *model.GenerationModel) (*entity.GenerationRecord, error) {
	content, err := decodeAdContent(entity.Platform(data.Platform), data.Content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode generation %s", data.ID)
	}

	snapshot := data.Context.Data()
	meta := data.GenerationMetadata.Data()

	return &entity.GenerationRecord{
		ID:              data.ID,
		ProjectID:       data.ProjectID,
		VariationNumber: data.VariationNumber,
		Platform:        entity.Platform(data.Platform),
		VariationType:   data.VariationType,
		Content:         content,
		Context: entity.GenerationContext{
			ProjectName:          snapshot.ProjectName,
			VariationCount:       snapshot.VariationCount,
			VariationType:        snapshot.VariationType,
			AssetInterpretations: snapshot.AssetInterpretations,
			LandingPageContent:   snapshot.LandingPageContent,
		},
		Metadata: entity.GenerationMetadata{
			Model:            meta.Model,
			Temperature:      meta.Temperature,
			PromptTokens:     meta.PromptTokens,
			CompletionTokens: meta.CompletionTokens,
			TotalTokens:      meta.TotalTokens,
			ProcessingTimeMs: meta.ProcessingTimeMs,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromGenerationDomain(data *entity.GenerationRecord) (*model.GenerationModel, error) {
	content, err := encodeAdContent(data.Content)
	if err != nil {
		return nil, err
	}

	return &model.GenerationModel{
		ID:              data.ID,
		ProjectID:       data.ProjectID,
		VariationNumber: data.VariationNumber,
		Platform:        string(data.Content.Platform()),
		VariationType:   data.VariationType,
		Content:         content,
		Context: datatypes.NewJSONType(model.GenerationContextDoc{
			ProjectName:          data.Context.ProjectName,
			VariationCount:       data.Context.VariationCount,
			VariationType:        data.Context.VariationType,
			AssetInterpretations: data.Context.AssetInterpretations,
			LandingPageContent:   data.Context.LandingPageContent,
		}),
		GenerationMetadata: datatypes.NewJSONType(model.GenerationMetadataDoc{
			Model:            data.Metadata.Model,
			Temperature:      data.Metadata.Temperature,
			PromptTokens:     data.Metadata.PromptTokens,
			CompletionTokens: data.Metadata.CompletionTokens,
			TotalTokens:      data.Metadata.TotalTokens,
			ProcessingTimeMs: data.Metadata.ProcessingTimeMs,
		}),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func encodeAdContent(content entity.AdContent) (datatypes.JSON, error) {
	if content == nil {
		return nil, errors.New("generation content is required")
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode generation content")
	}

	return datatypes.JSON(raw), nil
}

func decodeAdContent(platform entity.Platform, raw datatypes.JSON) (entity.AdContent, error) {
	switch platform {
	case entity.PlatformFacebook:
		var content entity.FacebookAdContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}

		return content, nil
	case entity.PlatformGoogle:
		var content entity.GoogleAdContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}

		return content, nil
	case entity.PlatformTikTok:
		var content entity.TikTokAdContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}

		return content, nil
	default:
		return nil, errors.Errorf("unknown platform %q", platform)
	}
}
