package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adcopy/config"
	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/entity"
	"adcopy/internal/domain/repository"
	"adcopy/internal/domain/service"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adCopyService struct {
	projectRepo    repository.ProjectRepository
	assetRepo      repository.AssetRepository
	generationRepo repository.GenerationRepository
	txManager      repository.TransactionManager
	cache          usecase.InterpretationCache
	scraper        usecase.ScraperUsecase
	templates      usecase.PromptTemplateUsecase
	generator      service.TextGenerator
	publisher      service.EventPublisher
	params         service.GenerationParams
	freshFor       time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// AdCopyServiceParams holds dependencies for the ad copy generator, injected by Fx.
type AdCopyServiceParams struct {
	fx.In

	ProjectRepo    repository.ProjectRepository
	AssetRepo      repository.AssetRepository
	GenerationRepo repository.GenerationRepository
	TxManager      repository.TransactionManager
	Cache          usecase.InterpretationCache
	Scraper        usecase.ScraperUsecase
	Templates      usecase.PromptTemplateUsecase
	Generator      service.TextGenerator
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAdCopyService creates the ad copy generator.
func NewAdCopyService(params AdCopyServiceParams) usecase.AdCopyUsecase {
	gemini := params.Config.Gemini

	return &adCopyService{
		projectRepo:    params.ProjectRepo,
		assetRepo:      params.AssetRepo,
		generationRepo: params.GenerationRepo,
		txManager:      params.TxManager,
		cache:          params.Cache,
		scraper:        params.Scraper,
		templates:      params.Templates,
		generator:      params.Generator,
		publisher:      params.Publisher,
		params: service.GenerationParams{
			Temperature:     gemini.Temperature,
			TopK:            gemini.TopK,
			TopP:            gemini.TopP,
			MaxOutputTokens: gemini.MaxOutputTokens,
		},
		freshFor: params.Config.Cache.InterpretationTTL,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (s *adCopyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *adCopyService) GenerateAdCopy(ctx context.Context, userID, projectID uuid.UUID) (*usecase.GenerationOutput, error) {
	project, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.UpdateStatus(ctx, projectID, entity.ProjectStatusProcessing); err != nil {
		return nil, errors.Wrap(err, "failed to mark project processing")
	}

	records, err := s.run(ctx, project)
	if err != nil {
		// The run may have been cancelled; the status must still leave processing.
		if statusErr := s.projectRepo.UpdateStatus(context.WithoutCancel(ctx), projectID, entity.ProjectStatusFailed); statusErr != nil {
			s.log(ctx).LogAttrs(ctx, slog.LevelError, "Failed to mark project failed",
				slog.String("project_id", projectID.String()),
				slog.Any("error", statusErr),
			)
		}
		s.log(ctx).LogAttrs(ctx, slog.LevelError, "Ad copy generation failed",
			slog.String("project_id", projectID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Ad copy generated",
		slog.String("project_id", projectID.String()),
		slog.String("platform", string(project.Platform)),
		slog.Int("variations", len(records)),
	)

	return &usecase.GenerationOutput{
		ProjectID:   projectID,
		Status:      entity.ProjectStatusCompleted,
		Generations: records,
	}, nil
}

func (s *adCopyService) run(ctx context.Context, project *entity.Project) ([]*entity.GenerationRecord, error) {
	assetContext, err := s.assetContext(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	template, err := s.templates.GetDefaultTemplate(ctx, project.Platform, entity.PromptTypeAdCopy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve prompt template")
	}
	body := template.Template
	if project.SystemPrompt != "" {
		body.SystemPrompt = project.SystemPrompt
	}

	variationCount := project.VariationCount
	if variationCount <= 0 {
		variationCount = entity.DefaultVariationCount
	}

	genCtx := entity.GenerationContext{
		ProjectName:          project.Name,
		VariationCount:       variationCount,
		AssetInterpretations: assetContext,
		LandingPageContent:   s.landingPageContext(ctx, project.LandingPageURLs),
	}

	records := make([]*entity.GenerationRecord, 0, variationCount)
	for i := range variationCount {
		variationCtx := genCtx
		variationCtx.VariationType = entity.VariationTypeFor(i)

		record, err := s.generateVariation(ctx, project, body, &variationCtx, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		generations := factory.NewGenerationRepository()
		if _, err := generations.DeleteGenerationsByProject(ctx, project.ID); err != nil {
			return errors.Wrap(err, "failed to delete previous generations")
		}
		if err := generations.CreateGenerations(ctx, records); err != nil {
			return errors.Wrap(err, "failed to save generations")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.UpdateStatus(ctx, project.ID, entity.ProjectStatusCompleted); err != nil {
		return nil, errors.Wrap(err, "failed to mark project completed")
	}

	return records, nil
}

func (s *adCopyService) generateVariation(
	ctx context.Context,
	project *entity.Project,
	body entity.TemplateBody,
	genCtx *entity.GenerationContext,
	variation int,
) (*entity.GenerationRecord, error) {
	prompt := BuildPrompt(body, genCtx)

	start := s.now()
	generation, err := s.generator.Generate(ctx, prompt, s.params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate variation %d", variation)
	}
	elapsed := s.now().Sub(start)

	return &entity.GenerationRecord{
		ID:              uuid.New(),
		ProjectID:       project.ID,
		VariationNumber: variation,
		Platform:        project.Platform,
		VariationType:   genCtx.VariationType,
		Content:         parseAdContent(project.Platform, generation.Text, variation),
		Context:         *genCtx,
		Metadata: entity.GenerationMetadata{
			Model:            generation.Model,
			Temperature:      s.params.Temperature,
			PromptTokens:     generation.PromptTokens,
			CompletionTokens: generation.CompletionTokens,
			TotalTokens:      generation.TotalTokens,
			ProcessingTimeMs: elapsed.Milliseconds(),
		},
	}, nil
}

// assetContext describes each asset from the interpretation cache. Assets
// without a fresh interpretation get a placeholder; nothing is processed here.
func (s *adCopyService) assetContext(ctx context.Context, projectID uuid.UUID) ([]string, error) {
	assets, err := s.assetRepo.FindAssetsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find project assets")
	}

	now := s.now()
	lines := make([]string, 0, len(assets))
	for _, asset := range assets {
		entry, err := s.cache.Get(ctx, asset.RemoteFileID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read interpretation cache")
		}
		if entry == nil || !entry.IsFresh(now, s.freshFor) {
			lines = append(lines, fmt.Sprintf("%s (%s): Content not processed yet.", asset.FileName, asset.FileType))

			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", asset.FileName, asset.FileType, entry.Interpretation))
	}

	return lines, nil
}

// landingPageContext scrapes every URL. A failed page becomes a note, never an error.
func (s *adCopyService) landingPageContext(ctx context.Context, urls []string) []string {
	if len(urls) == 0 {
		return []string{}
	}

	results := s.scraper.ScrapeMultipleURLs(ctx, urls)
	lines := make([]string, 0, len(results))
	for _, r := range results {
		if !r.Success || r.Content == nil {
			lines = append(lines, fmt.Sprintf("Landing page (%s): Failed to scrape content: %s", r.URL, r.Error))

			continue
		}
		lines = append(lines, fmt.Sprintf("Landing page (%s):\nTitle: %s\nContent: %s", r.URL, r.Content.Title, r.Content.Content))
	}

	return lines
}

func (s *adCopyService) RequestGeneration(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID); err != nil {
		return err
	}

	event := &service.GenerationRequestedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ProjectID: projectID.String(),
		UserID:    userID.String(),
	}
	if err := s.publisher.PublishGenerationRequested(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish generation request")
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Generation requested",
		slog.String("project_id", projectID.String()),
	)

	return nil
}

func (s *adCopyService) ListGenerations(ctx context.Context, userID, projectID uuid.UUID) ([]*entity.GenerationRecord, error) {
	if _, err := loadOwnedProject(ctx, s.projectRepo, userID, projectID); err != nil {
		return nil, err
	}

	records, err := s.generationRepo.FindGenerationsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generations")
	}

	return records, nil
}
