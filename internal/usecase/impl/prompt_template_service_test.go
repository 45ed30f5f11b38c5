package impl

import (
	"context"
	"strings"
	"testing"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	mockRepo "adcopy/internal/mocks/repository"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type promptTemplateServiceFixtures struct {
	service      usecase.PromptTemplateUsecase
	templateRepo *mockRepo.MockPromptTemplateRepository
}

func createTestPromptTemplateService(t *testing.T) promptTemplateServiceFixtures {
	templateRepo := mockRepo.NewMockPromptTemplateRepository(t)

	return promptTemplateServiceFixtures{
		service: NewPromptTemplateService(PromptTemplateServiceParams{
			TemplateRepo: templateRepo,
			Logger:       newDiscardLogger(),
		}),
		templateRepo: templateRepo,
	}
}

func TestBuildPrompt_SortsSectionsByOrder(t *testing.T) {
	body := entity.TemplateBody{
		SystemPrompt: "You write ads.",
		Sections: []entity.PromptSection{
			{ID: "c", Order: 3, Content: "third"},
			{ID: "a", Order: 1, Content: "first {projectName}"},
			{ID: "b", Order: 2, Content: "second"},
		},
	}
	genCtx := &entity.GenerationContext{ProjectName: "Spring Sale"}

	got := BuildPrompt(body, genCtx)
	assert.Equal(t, "You write ads.\n\nfirst Spring Sale\n\nsecond\n\nthird", got)
	assert.Equal(t, got, BuildPrompt(body, genCtx))
}

func TestBuildPrompt_Placeholders(t *testing.T) {
	body := entity.TemplateBody{
		Sections: []entity.PromptSection{
			{Order: 1, Content: "{variationCount} variations, angle {variationType}."},
			{Order: 2, Content: "{assetInterpretations}"},
			{Order: 3, Content: "{landingPageContent}"},
			{Order: 4, Content: "Keep {unknownPlaceholder} as is.   "},
		},
	}
	genCtx := &entity.GenerationContext{
		VariationCount:     3,
		LandingPageContent: []string{"Landing page (https://acme.example):\nTitle: Acme"},
	}

	got := BuildPrompt(body, genCtx)
	assert.Contains(t, got, "3 variations, angle benefits.")
	assert.Contains(t, got, "No assets provided.")
	assert.Contains(t, got, "Page 1: Landing page (https://acme.example):\nTitle: Acme")
	assert.NotContains(t, got, "No landing page content provided.")
	assert.True(t, strings.HasSuffix(got, "Keep {unknownPlaceholder} as is."))
}

func TestBuildPrompt_NumbersAssets(t *testing.T) {
	body := entity.TemplateBody{Sections: []entity.PromptSection{{Order: 1, Content: "{assetInterpretations}"}}}
	genCtx := &entity.GenerationContext{
		VariationType:        "storytelling",
		AssetInterpretations: []string{"hero.jpg (image): a shoe", "promo.mp4 (video): a runner"},
	}

	got := BuildPrompt(body, genCtx)
	assert.Equal(t, "Asset 1: hero.jpg (image): a shoe\n\nAsset 2: promo.mp4 (video): a runner", got)
}

func TestDefaultSeeds_CoverEveryPlatform(t *testing.T) {
	for _, platform := range []entity.Platform{entity.PlatformFacebook, entity.PlatformGoogle, entity.PlatformTikTok} {
		seed, err := findSeed(platform, entity.PromptTypeAdCopy)
		require.NoError(t, err, platform)
		assert.NotEmpty(t, seed.Template.SystemPrompt)
		assert.NotEmpty(t, seed.Template.Sections)
	}
}

func TestPromptTemplateService_GetDefaultTemplate_SelfHeals(t *testing.T) {
	fx := createTestPromptTemplateService(t)

	ctx := context.Background()
	var stored *entity.PromptTemplate

	fx.templateRepo.EXPECT().
		FindDefaultTemplate(ctx, entity.PlatformFacebook, entity.PromptTypeAdCopy).
		RunAndReturn(func(context.Context, entity.Platform, entity.PromptType) (*entity.PromptTemplate, error) {
			if stored == nil {
				return nil, repository.ErrTemplateNotFound
			}

			return stored, nil
		})
	fx.templateRepo.EXPECT().
		CreateTemplate(ctx, mock.AnythingOfType("*entity.PromptTemplate")).
		RunAndReturn(func(_ context.Context, template *entity.PromptTemplate) error {
			stored = template

			return nil
		}).
		Once()

	first, err := fx.service.GetDefaultTemplate(ctx, entity.PlatformFacebook, entity.PromptTypeAdCopy)
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, entity.SystemUserID, first.UserID)
	assert.Equal(t, entity.PlatformFacebook, first.Template.Platform)

	second, err := fx.service.GetDefaultTemplate(ctx, entity.PlatformFacebook, entity.PromptTypeAdCopy)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestPromptTemplateService_GetDefaultTemplate_LosesCreateRace(t *testing.T) {
	fx := createTestPromptTemplateService(t)

	ctx := context.Background()
	winner := &entity.PromptTemplate{ID: uuid.New(), IsDefault: true}

	fx.templateRepo.EXPECT().
		FindDefaultTemplate(ctx, entity.PlatformGoogle, entity.PromptTypeAdCopy).
		Return(nil, repository.ErrTemplateNotFound).
		Once()
	fx.templateRepo.EXPECT().
		CreateTemplate(ctx, mock.AnythingOfType("*entity.PromptTemplate")).
		Return(repository.ErrDuplicateDefaultTemplate)
	fx.templateRepo.EXPECT().
		FindDefaultTemplate(ctx, entity.PlatformGoogle, entity.PromptTypeAdCopy).
		Return(winner, nil).
		Once()

	got, err := fx.service.GetDefaultTemplate(ctx, entity.PlatformGoogle, entity.PromptTypeAdCopy)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
}

func TestPromptTemplateService_DeleteTemplate(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	tests := []struct {
		name     string
		template *entity.PromptTemplate
		userID   uuid.UUID
		wantErr  error
	}{
		{
			name:     "default template",
			template: &entity.PromptTemplate{ID: uuid.New(), UserID: entity.SystemUserID, IsDefault: true},
			userID:   ownerID,
			wantErr:  domainerrors.ErrDefaultTemplateImmutable,
		},
		{
			name:     "someone else's template",
			template: &entity.PromptTemplate{ID: uuid.New(), UserID: uuid.New()},
			userID:   ownerID,
			wantErr:  domainerrors.ErrTemplateForbidden,
		},
		{
			name:     "own template",
			template: &entity.PromptTemplate{ID: uuid.New(), UserID: ownerID},
			userID:   ownerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromptTemplateService(t)

			fx.templateRepo.EXPECT().FindTemplateByID(ctx, tt.template.ID).Return(tt.template, nil)
			if tt.wantErr == nil {
				fx.templateRepo.EXPECT().DeleteTemplate(ctx, tt.template.ID).Return(nil)
			}

			err := fx.service.DeleteTemplate(ctx, tt.userID, tt.template.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPromptTemplateService_GetTemplate_NotFound(t *testing.T) {
	fx := createTestPromptTemplateService(t)

	ctx := context.Background()
	templateID := uuid.New()

	fx.templateRepo.EXPECT().FindTemplateByID(ctx, templateID).Return(nil, repository.ErrTemplateNotFound)

	_, err := fx.service.GetTemplate(ctx, uuid.New(), templateID)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestPromptTemplateService_CreateTemplate(t *testing.T) {
	fx := createTestPromptTemplateService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.TemplateInput{
		Name:         "Short and punchy",
		Platform:     entity.PlatformTikTok,
		SystemPrompt: "Be brief.",
		Sections:     []entity.PromptSection{{ID: "main", Order: 1, Content: "{projectName}"}},
	}

	fx.templateRepo.EXPECT().CreateTemplate(ctx, mock.AnythingOfType("*entity.PromptTemplate")).Return(nil)

	template, err := fx.service.CreateTemplate(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, userID, template.UserID)
	assert.False(t, template.IsDefault)
	assert.Equal(t, entity.PromptTypeAdCopy, template.PromptType)

	_, err = fx.service.CreateTemplate(ctx, userID, &usecase.TemplateInput{Name: "x", Platform: "myspace"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestPromptTemplateService_SeedDefaults(t *testing.T) {
	fx := createTestPromptTemplateService(t)

	ctx := context.Background()

	fx.templateRepo.EXPECT().
		FindDefaultTemplate(ctx, entity.PlatformFacebook, entity.PromptTypeAdCopy).
		Return(&entity.PromptTemplate{IsDefault: true}, nil)
	fx.templateRepo.EXPECT().
		FindDefaultTemplate(ctx, mock.MatchedBy(func(p entity.Platform) bool { return p != entity.PlatformFacebook }), entity.PromptTypeAdCopy).
		Return(nil, repository.ErrTemplateNotFound)
	fx.templateRepo.EXPECT().
		CreateTemplate(ctx, mock.AnythingOfType("*entity.PromptTemplate")).
		Return(nil).
		Times(2)

	created, err := fx.service.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}
