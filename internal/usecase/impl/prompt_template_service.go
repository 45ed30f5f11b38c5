package impl

import (
	"context"
	_ "embed"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

const (
	defaultVariationType = "benefits"
	noAssetsSentinel     = "No assets provided."
	noLandingSentinel    = "No landing page content provided."
)

//go:embed seeds/default_templates.yaml
var defaultTemplatesYAML []byte

type seedTemplate struct {
	Name       string              `yaml:"name"`
	PromptType entity.PromptType   `yaml:"prompt_type"`
	Template   entity.TemplateBody `yaml:"template"`
}

var (
	seedsOnce sync.Once
	seeds     []seedTemplate
	seedsErr  error
)

// loadSeeds parses the embedded default templates once.
func loadSeeds() ([]seedTemplate, error) {
	seedsOnce.Do(func() {
		if err := yaml.Unmarshal(defaultTemplatesYAML, &seeds); err != nil {
			seedsErr = errors.Wrap(err, "failed to parse default template seeds")
		}
	})

	return seeds, seedsErr
}

func findSeed(platform entity.Platform, promptType entity.PromptType) (*seedTemplate, error) {
	all, err := loadSeeds()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Template.Platform == platform && all[i].PromptType == promptType {
			return &all[i], nil
		}
	}

	return nil, domainerrors.ErrTemplateNotFound.WithDetails(
		"no built-in template for " + string(platform) + "/" + string(promptType))
}

type promptTemplateService struct {
	templateRepo repository.PromptTemplateRepository
	logger       *slog.Logger
}

// PromptTemplateServiceParams holds dependencies for the template service, injected by Fx.
type PromptTemplateServiceParams struct {
	fx.In

	TemplateRepo repository.PromptTemplateRepository
	Logger       *slog.Logger
}

// NewPromptTemplateService creates the prompt template engine.
func NewPromptTemplateService(params PromptTemplateServiceParams) usecase.PromptTemplateUsecase {
	return &promptTemplateService{
		templateRepo: params.TemplateRepo,
		logger:       params.Logger,
	}
}

func (s *promptTemplateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetDefaultTemplate finds the default row or creates it from the seed. A
// concurrent creator losing the unique index race reads the winner's row.
func (s *promptTemplateService) GetDefaultTemplate(ctx context.Context, platform entity.Platform, promptType entity.PromptType) (*entity.PromptTemplate, error) {
	template, err := s.templateRepo.FindDefaultTemplate(ctx, platform, promptType)
	if err == nil {
		return template, nil
	}
	if !errors.Is(err, repository.ErrTemplateNotFound) {
		return nil, errors.Wrap(err, "failed to find default template")
	}

	seed, err := findSeed(platform, promptType)
	if err != nil {
		return nil, err
	}

	template = &entity.PromptTemplate{
		ID:         uuid.New(),
		UserID:     entity.SystemUserID,
		Name:       seed.Name,
		PromptType: seed.PromptType,
		IsDefault:  true,
		Template:   seed.Template,
	}

	err = s.templateRepo.CreateTemplate(ctx, template)
	if errors.Is(err, repository.ErrDuplicateDefaultTemplate) {
		template, err = s.templateRepo.FindDefaultTemplate(ctx, platform, promptType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find default template after conflict")
		}

		return template, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default template")
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Created default prompt template",
		slog.String("platform", string(platform)),
		slog.String("prompt_type", string(promptType)),
		slog.String("template_id", template.ID.String()),
	)

	return template, nil
}

func (s *promptTemplateService) SeedDefaults(ctx context.Context) (int, error) {
	all, err := loadSeeds()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, seed := range all {
		_, err := s.templateRepo.FindDefaultTemplate(ctx, seed.Template.Platform, seed.PromptType)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrTemplateNotFound) {
			return created, errors.Wrap(err, "failed to find default template")
		}
		if _, err := s.GetDefaultTemplate(ctx, seed.Template.Platform, seed.PromptType); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *promptTemplateService) BuildPrompt(template *entity.PromptTemplate, genCtx *entity.GenerationContext) string {
	return BuildPrompt(template.Template, genCtx)
}

// BuildPrompt renders the system prompt followed by every section in
// ascending order, separated by blank lines. Placeholders are replaced
// textually inside sections; unknown placeholders are left as they are.
func BuildPrompt(body entity.TemplateBody, genCtx *entity.GenerationContext) string {
	replacer := placeholderReplacer(genCtx)

	var b strings.Builder
	if body.SystemPrompt != "" {
		b.WriteString(body.SystemPrompt)
	}
	for _, section := range body.SortedSections() {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(replacer.Replace(section.Content))
	}

	return strings.TrimSpace(b.String())
}

func placeholderReplacer(genCtx *entity.GenerationContext) *strings.Replacer {
	variationType := genCtx.VariationType
	if variationType == "" {
		variationType = defaultVariationType
	}

	return strings.NewReplacer(
		"{projectName}", genCtx.ProjectName,
		"{variationCount}", strconv.Itoa(genCtx.VariationCount),
		"{variationType}", variationType,
		"{assetInterpretations}", numberedList("Asset", genCtx.AssetInterpretations, noAssetsSentinel),
		"{landingPageContent}", numberedList("Page", genCtx.LandingPageContent, noLandingSentinel),
	)
}

// numberedList renders items as "Label N: item" blocks, or sentinel when empty.
func numberedList(label string, items []string, sentinel string) string {
	if len(items) == 0 {
		return sentinel
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = label + " " + strconv.Itoa(i+1) + ": " + item
	}

	return strings.Join(lines, "\n\n")
}

func (s *promptTemplateService) ListTemplates(ctx context.Context, userID uuid.UUID, platform entity.Platform) ([]*entity.PromptTemplate, error) {
	if platform != "" && !platform.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown platform " + string(platform))
	}

	templates, err := s.templateRepo.FindTemplatesVisibleTo(ctx, userID, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	return templates, nil
}

func (s *promptTemplateService) GetTemplate(ctx context.Context, userID, templateID uuid.UUID) (*entity.PromptTemplate, error) {
	template, err := s.findTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !template.IsDefault && template.UserID != userID {
		return nil, domainerrors.ErrTemplateForbidden
	}

	return template, nil
}

func (s *promptTemplateService) CreateTemplate(ctx context.Context, userID uuid.UUID, input *usecase.TemplateInput) (*entity.PromptTemplate, error) {
	if !input.Platform.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown platform " + string(input.Platform))
	}

	template := &entity.PromptTemplate{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       input.Name,
		PromptType: entity.PromptTypeAdCopy,
		Template: entity.TemplateBody{
			Platform:     input.Platform,
			SystemPrompt: input.SystemPrompt,
			Sections:     input.Sections,
		},
	}

	if err := s.templateRepo.CreateTemplate(ctx, template); err != nil {
		return nil, errors.Wrap(err, "failed to create template")
	}

	return template, nil
}

func (s *promptTemplateService) UpdateTemplate(ctx context.Context, userID, templateID uuid.UUID, input *usecase.TemplateInput) (*entity.PromptTemplate, error) {
	template, err := s.findMutable(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	if !input.Platform.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown platform " + string(input.Platform))
	}

	template.Name = input.Name
	template.Template = entity.TemplateBody{
		Platform:     input.Platform,
		SystemPrompt: input.SystemPrompt,
		Sections:     input.Sections,
	}

	if err := s.templateRepo.UpdateTemplate(ctx, template); err != nil {
		return nil, errors.Wrap(err, "failed to update template")
	}

	return template, nil
}

func (s *promptTemplateService) DeleteTemplate(ctx context.Context, userID, templateID uuid.UUID) error {
	if _, err := s.findMutable(ctx, userID, templateID); err != nil {
		return err
	}

	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		return errors.Wrap(err, "failed to delete template")
	}

	return nil
}

// findMutable returns the template if userID may change it.
func (s *promptTemplateService) findMutable(ctx context.Context, userID, templateID uuid.UUID) (*entity.PromptTemplate, error) {
	template, err := s.findTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.IsDefault {
		return nil, domainerrors.ErrDefaultTemplateImmutable
	}
	if !template.OwnedBy(userID) {
		return nil, domainerrors.ErrTemplateForbidden
	}

	return template, nil
}

func (s *promptTemplateService) findTemplate(ctx context.Context, templateID uuid.UUID) (*entity.PromptTemplate, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if errors.Is(err, repository.ErrTemplateNotFound) {
		return nil, domainerrors.ErrTemplateNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find template")
	}

	return template, nil
}
