package postgres

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// promptTemplateRepository implements the repository.PromptTemplateRepository interface.
type promptTemplateRepository struct {
	db *gorm.DB
}

// NewPromptTemplateRepository is the constructor for promptTemplateRepository.
func NewPromptTemplateRepository(db *gorm.DB) repository.PromptTemplateRepository {
	return &promptTemplateRepository{
		db: db,
	}
}

// CreateTemplate persists a new template. A second default for the same
// platform and prompt type is rejected by the partial unique index.
func (repo *promptTemplateRepository) CreateTemplate(ctx context.Context, template *entity.PromptTemplate) error {
	templateM := fromTemplateDomain(template)

	if err := repo.db.WithContext(ctx).Create(templateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDefaultTemplate
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required template information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prompt template")
	}

	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// FindTemplateByID retrieves a template by its unique ID.
func (repo *promptTemplateRepository) FindTemplateByID(ctx context.Context, id uuid.UUID) (*entity.PromptTemplate, error) {
	var templateM model.PromptTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find prompt template by ID")
	}

	return toTemplateDomain(&templateM), nil
}

// FindDefaultTemplate returns the default template for the platform and prompt type.
func (repo *promptTemplateRepository) FindDefaultTemplate(ctx context.Context, platform entity.Platform, promptType entity.PromptType) (*entity.PromptTemplate, error) {
	var templateM model.PromptTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("platform = ? AND prompt_type = ? AND is_default = ?", string(platform), string(promptType), true).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find default prompt template")
	}

	return toTemplateDomain(&templateM), nil
}

// FindTemplatesVisibleTo returns the user's own templates plus every default.
func (repo *promptTemplateRepository) FindTemplatesVisibleTo(ctx context.Context, userID uuid.UUID, platform entity.Platform) ([]*entity.PromptTemplate, error) {
	var templateModels []*model.PromptTemplateModel

	query := repo.db.WithContext(ctx).
		Where("(user_id = ? OR is_default = ?)", userID, true)
	if platform != "" {
		query = query.Where("platform = ?", string(platform))
	}

	if err := query.
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prompt templates")
	}

	templates := make([]*entity.PromptTemplate, 0, len(templateModels))
	for _, templateM := range templateModels {
		templates = append(templates, toTemplateDomain(templateM))
	}

	return templates, nil
}

// UpdateTemplate saves name and body changes.
func (repo *promptTemplateRepository) UpdateTemplate(ctx context.Context, template *entity.PromptTemplate) error {
	template.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.PromptTemplateModel{}).
		Where("id = ?", template.ID).
		Updates(map[string]any{
			"name":          template.Name,
			"platform":      string(template.Template.Platform),
			"system_prompt": template.Template.SystemPrompt,
			"sections":      datatypes.NewJSONSlice(fromSectionsDomain(template.Template.Sections)),
			"updated_at":    template.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update prompt template")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// DeleteTemplate removes a template by its ID.
func (repo *promptTemplateRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromptTemplateModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete prompt template")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTemplateDomain(data *model.PromptTemplateModel) *entity.PromptTemplate {
	if data == nil {
		return nil
	}

	sections := make([]entity.PromptSection, 0, len(data.Sections))
	for _, s := range data.Sections {
		sections = append(sections, entity.PromptSection{
			ID:       s.ID,
			Name:     s.Name,
			Content:  s.Content,
			Editable: s.Editable,
			Required: s.Required,
			Order:    s.Order,
		})
	}

	return &entity.PromptTemplate{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		PromptType: entity.PromptType(data.PromptType),
		IsDefault:  data.IsDefault,
		Template: entity.TemplateBody{
			Platform:     entity.Platform(data.Platform),
			SystemPrompt: data.SystemPrompt,
			Sections:     sections,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTemplateDomain(data *entity.PromptTemplate) *model.PromptTemplateModel {
	if data == nil {
		return nil
	}

	return &model.PromptTemplateModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		PromptType:   string(data.PromptType),
		Platform:     string(data.Template.Platform),
		IsDefault:    data.IsDefault,
		SystemPrompt: data.Template.SystemPrompt,
		Sections:     datatypes.NewJSONSlice(fromSectionsDomain(data.Template.Sections)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSectionsDomain(sections []entity.PromptSection) []model.PromptSectionDoc {
	docs := make([]model.PromptSectionDoc, 0, len(sections))
	for _, s := range sections {
		docs = append(docs, model.PromptSectionDoc{
			ID:       s.ID,
			Name:     s.Name,
			Content:  s.Content,
			Editable: s.Editable,
			Required: s.Required,
			Order:    s.Order,
		})
	}

	return docs
}
