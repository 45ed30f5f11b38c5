package postgres

import (
	"context"
	"testing"

	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProject(t *testing.T, repo repository.ProjectRepository, userID uuid.UUID) *entity.Project {
	t.Helper()

	project := &entity.Project{
		UserID:          userID,
		Name:            "Spring launch",
		Platform:        entity.PlatformFacebook,
		LandingPageURLs: []string{"https://example.com"},
		VariationCount:  3,
		Status:          entity.ProjectStatusDraft,
	}
	require.NoError(t, repo.CreateProject(context.Background(), project))

	return project
}

func TestProjectRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestDB(t))
	userID := uuid.New()

	project := createTestProject(t, repo, userID)
	assert.NotEqual(t, uuid.Nil, project.ID)

	project.Name = "Summer launch"
	project.LandingPageURLs = []string{"https://example.com", "https://example.com/sale"}
	require.NoError(t, repo.UpdateProject(ctx, project))
	require.NoError(t, repo.UpdateStatus(ctx, project.ID, entity.ProjectStatusProcessing))

	found, err := repo.FindProjectByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer launch", found.Name)
	assert.Equal(t, project.LandingPageURLs, found.LandingPageURLs)
	assert.Equal(t, entity.ProjectStatusProcessing, found.Status)

	projects, err := repo.FindProjectsByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	require.NoError(t, repo.DeleteProject(ctx, project.ID))
	_, err = repo.FindProjectByID(ctx, project.ID)
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, project.ID, entity.ProjectStatusFailed), repository.ErrProjectNotFound)
}

func TestAssetRepository_RejectsDuplicateRemoteFile(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	project := createTestProject(t, NewProjectRepository(db), uuid.New())
	repo := NewAssetRepository(db)

	newAsset := func() *entity.Asset {
		return &entity.Asset{
			ProjectID:    project.ID,
			RemoteFileID: "id:photo",
			FileName:     "photo.jpg",
			FileType:     entity.FileTypeImage,
			MimeType:     "image/jpeg",
			FileSize:     2048,
			RemotePath:   "/ads/photo.jpg",
		}
	}

	asset := newAsset()
	require.NoError(t, repo.CreateAsset(ctx, asset))
	assert.ErrorIs(t, repo.CreateAsset(ctx, newAsset()), repository.ErrDuplicateAsset)

	orphan := newAsset()
	orphan.ProjectID = uuid.New()
	assert.ErrorIs(t, repo.CreateAsset(ctx, orphan), domainerrors.ErrProjectNotFound)

	assets, err := repo.FindAssetsByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, asset.ID, assets[0].ID)

	require.NoError(t, repo.DeleteAsset(ctx, asset.ID))
	_, err = repo.FindAssetByID(ctx, asset.ID)
	assert.ErrorIs(t, err, repository.ErrAssetNotFound)
}

func TestGenerationRepository_RoundTripsPlatformContent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	project := createTestProject(t, NewProjectRepository(db), uuid.New())
	repo := NewGenerationRepository(db)

	records := []*entity.GenerationRecord{
		{
			ProjectID:       project.ID,
			VariationNumber: 2,
			Platform:        entity.PlatformGoogle,
			VariationType:   "pain-agitation",
			Content: entity.GoogleAdContent{
				Headlines:    []string{"Fast shoes", "Light shoes"},
				Descriptions: []string{"Run further."},
			},
			Metadata: entity.GenerationMetadata{Model: "text-1", TotalTokens: 42},
		},
		{
			ProjectID:       project.ID,
			VariationNumber: 1,
			Platform:        entity.PlatformFacebook,
			VariationType:   "benefits",
			Content: entity.FacebookAdContent{
				Headline:     "Run more",
				PrimaryText:  "Our shoes are light.",
				CallToAction: "Shop Now",
			},
			Context: entity.GenerationContext{ProjectName: "Spring launch", VariationCount: 2},
		},
	}
	require.NoError(t, repo.CreateGenerations(ctx, records))

	found, err := repo.FindGenerationsByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, found, 2)

	assert.Equal(t, 1, found[0].VariationNumber)
	facebook, ok := found[0].Content.(entity.FacebookAdContent)
	require.True(t, ok)
	assert.Equal(t, "Run more", facebook.Headline)
	assert.Equal(t, "Spring launch", found[0].Context.ProjectName)

	google, ok := found[1].Content.(entity.GoogleAdContent)
	require.True(t, ok)
	assert.Equal(t, []string{"Fast shoes", "Light shoes"}, google.Headlines)
	assert.Equal(t, int64(42), found[1].Metadata.TotalTokens)

	deleted, err := repo.DeleteGenerationsByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
