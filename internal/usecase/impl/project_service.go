// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loadOwnedProject returns the project if userID owns it.
func loadOwnedProject(ctx context.Context, repo repository.ProjectRepository, userID, projectID uuid.UUID) (*entity.Project, error) {
	project, err := repo.FindProjectByID(ctx, projectID)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, domainerrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find project")
	}
	if project.UserID != userID {
		return nil, domainerrors.ErrProjectForbidden
	}

	return project, nil
}

type projectService struct {
	projectRepo repository.ProjectRepository
	assetRepo   repository.AssetRepository
	files       usecase.CloudFileUsecase
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for the project service, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	AssetRepo   repository.AssetRepository
	Files       usecase.CloudFileUsecase
	Logger      *slog.Logger
}

// NewProjectService creates the project service.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		assetRepo:   params.AssetRepo,
		files:       params.Files,
		logger:      params.Logger,
	}
}

func (s *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *projectService) CreateProject(ctx context.Context, userID uuid.UUID, input *usecase.CreateProjectInput) (*entity.Project, error) {
	if !input.Platform.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown platform " + string(input.Platform))
	}

	variationCount := input.VariationCount
	if variationCount <= 0 {
		variationCount = entity.DefaultVariationCount
	}

	project := &entity.Project{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		Platform:        input.Platform,
		LandingPageURLs: normalizeURLs(input.LandingPageURLs),
		SystemPrompt:    input.SystemPrompt,
		VariationCount:  variationCount,
		Status:          entity.ProjectStatusDraft,
	}

	if err := s.projectRepo.CreateProject(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Project created",
		slog.String("project_id", project.ID.String()),
		slog.String("platform", string(project.Platform)),
	)

	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*entity.Project, error) {
	return loadOwnedProject(ctx, s.projectRepo, userID, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	projects, err := s.projectRepo.FindProjectsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, userID, projectID uuid.UUID, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	project, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status == entity.ProjectStatusProcessing {
		return nil, domainerrors.ErrValidation.WithDetails("project is being generated")
	}

	if input.Name != nil {
		project.Name = strings.TrimSpace(*input.Name)
	}
	if input.Platform != nil {
		if !input.Platform.IsValid() {
			return nil, domainerrors.ErrValidation.WithDetails("unknown platform " + string(*input.Platform))
		}
		project.Platform = *input.Platform
	}
	if input.LandingPageURLs != nil {
		project.LandingPageURLs = normalizeURLs(input.LandingPageURLs)
	}
	if input.SystemPrompt != nil {
		project.SystemPrompt = *input.SystemPrompt
	}
	if input.VariationCount != nil {
		project.VariationCount = *input.VariationCount
	}

	if err := s.projectRepo.UpdateProject(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to update project")
	}

	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		return errors.Wrap(err, "failed to delete project")
	}

	return nil
}

// ImportAssets reads each path's metadata from cloud storage and creates an
// asset for it. One bad path does not stop the others.
func (s *projectService) ImportAssets(ctx context.Context, userID, projectID uuid.UUID, paths []string) (*usecase.ImportAssetsOutput, error) {
	if _, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID); err != nil {
		return nil, err
	}

	outcomes := processSequentially(ctx, paths, 0, func(ctx context.Context, remotePath string) (*entity.Asset, error) {
		return s.importAsset(ctx, userID, projectID, remotePath)
	})

	output := &usecase.ImportAssetsOutput{
		Imported: []*entity.Asset{},
		Failed:   []usecase.ImportFailure{},
	}
	for i, outcome := range outcomes {
		if outcome.Err != nil {
			output.Failed = append(output.Failed, usecase.ImportFailure{Path: paths[i], Error: outcome.Err.Error()})

			continue
		}
		output.Imported = append(output.Imported, outcome.Value)
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Imported assets",
		slog.String("project_id", projectID.String()),
		slog.Int("imported", len(output.Imported)),
		slog.Int("failed", len(output.Failed)),
	)

	return output, nil
}

func (s *projectService) importAsset(ctx context.Context, userID, projectID uuid.UUID, remotePath string) (*entity.Asset, error) {
	file, err := s.files.GetFileMetadata(ctx, userID, remotePath)
	if err != nil {
		return nil, err
	}

	fileType := file.FileType()
	if fileType == entity.FileTypeUnknown {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails(file.Name)
	}

	asset := &entity.Asset{
		ID:           uuid.New(),
		ProjectID:    projectID,
		RemoteFileID: file.Key(),
		FileName:     file.Name,
		FileType:     fileType,
		MimeType:     entity.MimeTypeFromName(file.Name),
		FileSize:     file.Size,
		RemotePath:   file.Path,
	}

	if err := s.assetRepo.CreateAsset(ctx, asset); err != nil {
		if errors.Is(err, repository.ErrDuplicateAsset) {
			return nil, domainerrors.ErrValidation.WithDetails("already imported: " + file.Path)
		}

		return nil, errors.Wrap(err, "failed to create asset")
	}

	return asset, nil
}

func (s *projectService) ListAssets(ctx context.Context, userID, projectID uuid.UUID) ([]*entity.Asset, error) {
	if _, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID); err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.FindAssetsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}

	return assets, nil
}

func (s *projectService) DeleteAsset(ctx context.Context, userID, projectID, assetID uuid.UUID) error {
	if _, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID); err != nil {
		return err
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if errors.Is(err, repository.ErrAssetNotFound) {
		return domainerrors.ErrAssetNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find asset")
	}
	if asset.ProjectID != projectID {
		return domainerrors.ErrAssetNotFound
	}

	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		return errors.Wrap(err, "failed to delete asset")
	}

	return nil
}

// normalizeURLs trims the URLs and drops blanks and duplicates, keeping order.
func normalizeURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	return out
}
