package postgres

import (
	"context"
	"testing"

	"adcopy/internal/domain/entity"
	"adcopy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTemplate(userID uuid.UUID, platform entity.Platform, isDefault bool) *entity.PromptTemplate {
	return &entity.PromptTemplate{
		UserID:     userID,
		Name:       string(platform) + " template",
		PromptType: entity.PromptTypeAdCopy,
		IsDefault:  isDefault,
		Template: entity.TemplateBody{
			Platform:     platform,
			SystemPrompt: "You write ads.",
			Sections: []entity.PromptSection{
				{ID: "task", Name: "Task", Content: "Write {{VARIATION_COUNT}} ads", Required: true, Order: 2},
				{ID: "context", Name: "Context", Content: "Project {{PROJECT_NAME}}", Editable: true, Order: 1},
			},
		},
	}
}

func TestPromptTemplateRepository_SingleDefaultPerPlatform(t *testing.T) {
	ctx := context.Background()
	repo := NewPromptTemplateRepository(newTestDB(t))

	require.NoError(t, repo.CreateTemplate(ctx, newTestTemplate(entity.SystemUserID, entity.PlatformFacebook, true)))

	err := repo.CreateTemplate(ctx, newTestTemplate(entity.SystemUserID, entity.PlatformFacebook, true))
	assert.ErrorIs(t, err, repository.ErrDuplicateDefaultTemplate)

	require.NoError(t, repo.CreateTemplate(ctx, newTestTemplate(entity.SystemUserID, entity.PlatformGoogle, true)))
	require.NoError(t, repo.CreateTemplate(ctx, newTestTemplate(uuid.New(), entity.PlatformFacebook, false)))

	found, err := repo.FindDefaultTemplate(ctx, entity.PlatformFacebook, entity.PromptTypeAdCopy)
	require.NoError(t, err)
	assert.True(t, found.IsDefault)
	require.Len(t, found.Template.Sections, 2)
	assert.Equal(t, "task", found.Template.Sections[0].ID)

	_, err = repo.FindDefaultTemplate(ctx, entity.PlatformTikTok, entity.PromptTypeAdCopy)
	assert.ErrorIs(t, err, repository.ErrTemplateNotFound)
}

func TestPromptTemplateRepository_FindTemplatesVisibleTo(t *testing.T) {
	ctx := context.Background()
	repo := NewPromptTemplateRepository(newTestDB(t))
	userID := uuid.New()

	require.NoError(t, repo.CreateTemplate(ctx, newTestTemplate(userID, entity.PlatformFacebook, false)))
	require.NoError(t, repo.CreateTemplate(ctx, newTestTemplate(entity.SystemUserID, entity.PlatformFacebook, true)))
	require.NoError(t, repo.CreateTemplate(ctx, newTestTemplate(uuid.New(), entity.PlatformFacebook, false)))
	require.NoError(t, repo.CreateTemplate(ctx, newTestTemplate(userID, entity.PlatformGoogle, false)))

	templates, err := repo.FindTemplatesVisibleTo(ctx, userID, entity.PlatformFacebook)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.True(t, templates[0].IsDefault, "defaults come first")
	assert.Equal(t, userID, templates[1].UserID)

	all, err := repo.FindTemplatesVisibleTo(ctx, userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPromptTemplateRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPromptTemplateRepository(newTestDB(t))

	template := newTestTemplate(uuid.New(), entity.PlatformTikTok, false)
	require.NoError(t, repo.CreateTemplate(ctx, template))

	template.Name = "Renamed"
	template.Template.Sections = template.Template.Sections[:1]
	require.NoError(t, repo.UpdateTemplate(ctx, template))

	found, err := repo.FindTemplateByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.Len(t, found.Template.Sections, 1)

	require.NoError(t, repo.DeleteTemplate(ctx, template.ID))
	assert.ErrorIs(t, repo.DeleteTemplate(ctx, template.ID), repository.ErrTemplateNotFound)
	_, err = repo.FindTemplateByID(ctx, template.ID)
	assert.ErrorIs(t, err, repository.ErrTemplateNotFound)
}
