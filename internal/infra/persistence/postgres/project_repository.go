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

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// CreateProject persists a new project.
func (repo *projectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Omit("Assets", "Generations").Create(projectM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindProjectByID retrieves a project by its unique ID.
func (repo *projectRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// FindProjectsByUser returns the user's projects newest first.
func (repo *projectRepository) FindProjectsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find projects by user")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// UpdateProject saves the editable project fields.
func (repo *projectRepository) UpdateProject(ctx context.Context, project *entity.Project) error {
	project.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":              project.Name,
			"platform":          string(project.Platform),
			"landing_page_urls": datatypes.NewJSONSlice(project.LandingPageURLs),
			"system_prompt":     project.SystemPrompt,
			"variation_count":   project.VariationCount,
			"updated_at":        project.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// UpdateStatus persists a status transition on its own.
func (repo *projectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProjectStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update project status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// DeleteProject removes a project; assets and generations cascade.
func (repo *projectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	urls := []string(data.LandingPageURLs)
	if urls == nil {
		urls = []string{}
	}

	return &entity.Project{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		Platform:        entity.Platform(data.Platform),
		LandingPageURLs: urls,
		SystemPrompt:    data.SystemPrompt,
		VariationCount:  data.VariationCount,
		Status:          entity.ProjectStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		Platform:        string(data.Platform),
		LandingPageURLs: datatypes.NewJSONSlice(data.LandingPageURLs),
		SystemPrompt:    data.SystemPrompt,
		VariationCount:  data.VariationCount,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
