package postgres

import (
	"context"
	"testing"
	"time"

	"adcopy/internal/domain/entity"
	"adcopy/internal/domain/repository"
	"adcopy/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretationCacheRepository_UpsertKeepsOneRowPerFile(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewInterpretationCacheRepository(db)

	first := &entity.InterpretationCacheEntry{
		RemoteFileID:     "id:abc",
		FileType:         entity.FileTypeImage,
		Interpretation:   "a red shoe",
		ProcessingMethod: entity.ProcessingMethodVision,
		Metadata:         map[string]any{"model": "vision-1"},
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &entity.InterpretationCacheEntry{
		RemoteFileID:     "id:abc",
		FileType:         entity.FileTypeImage,
		Interpretation:   "a blue shoe",
		ProcessingMethod: entity.ProcessingMethodVision,
	}
	require.NoError(t, repo.Upsert(ctx, second))

	var count int64
	require.NoError(t, db.Model(&model.InterpretationCacheModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByRemoteFileID(ctx, "id:abc")
	require.NoError(t, err)
	assert.Equal(t, "a blue shoe", found.Interpretation)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, found.ID, second.ID)

	_, err = repo.FindByRemoteFileID(ctx, "id:missing")
	assert.ErrorIs(t, err, repository.ErrInterpretationNotFound)
}

func TestInterpretationCacheRepository_DeleteUpdatedBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewInterpretationCacheRepository(newTestDB(t))
	now := time.Now().UTC()

	require.NoError(t, repo.Upsert(ctx, &entity.InterpretationCacheEntry{
		RemoteFileID:     "id:old",
		FileType:         entity.FileTypeVideo,
		Interpretation:   "old transcript",
		ProcessingMethod: entity.ProcessingMethodSpeechToText,
		CreatedAt:        now.Add(-100 * 24 * time.Hour),
		UpdatedAt:        now.Add(-100 * 24 * time.Hour),
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.InterpretationCacheEntry{
		RemoteFileID:     "id:new",
		FileType:         entity.FileTypeImage,
		Interpretation:   "fresh description",
		ProcessingMethod: entity.ProcessingMethodVision,
	}))

	deleted, err := repo.DeleteUpdatedBefore(ctx, now.Add(-90*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByRemoteFileID(ctx, "id:old")
	assert.ErrorIs(t, err, repository.ErrInterpretationNotFound)
	_, err = repo.FindByRemoteFileID(ctx, "id:new")
	assert.NoError(t, err)
}

func TestInterpretationCacheRepository_DeleteUpdatedBeforeBoundary(t *testing.T) {
	ctx := context.Background()
	repo := NewInterpretationCacheRepository(newTestDB(t))
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-90 * 24 * time.Hour)

	rows := map[string]time.Time{
		"id:at-cutoff":     cutoff,
		"id:before-cutoff": cutoff.Add(-time.Second),
		"id:after-cutoff":  cutoff.Add(time.Second),
	}
	for remoteFileID, updatedAt := range rows {
		require.NoError(t, repo.Upsert(ctx, &entity.InterpretationCacheEntry{
			RemoteFileID:     remoteFileID,
			FileType:         entity.FileTypeImage,
			Interpretation:   "description of " + remoteFileID,
			ProcessingMethod: entity.ProcessingMethodVision,
			CreatedAt:        updatedAt,
			UpdatedAt:        updatedAt,
		}))
	}

	deleted, err := repo.DeleteUpdatedBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByRemoteFileID(ctx, "id:before-cutoff")
	assert.ErrorIs(t, err, repository.ErrInterpretationNotFound)
	_, err = repo.FindByRemoteFileID(ctx, "id:at-cutoff")
	assert.NoError(t, err)
	_, err = repo.FindByRemoteFileID(ctx, "id:after-cutoff")
	assert.NoError(t, err)
}

func TestLandingPageCacheRepository_UpsertAndExpire(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLandingPageCacheRepository(db)
	now := time.Now().UTC()
	url := "https://example.com/product"

	require.NoError(t, repo.Upsert(ctx, &entity.LandingPageCacheEntry{
		URL:       url,
		Title:     "Old title",
		Content:   "old content",
		CreatedAt: now.Add(-8 * 24 * time.Hour),
		UpdatedAt: now.Add(-8 * 24 * time.Hour),
	}))

	stale, err := repo.FindByURL(ctx, url)
	require.NoError(t, err)
	assert.False(t, stale.IsFresh(now, 7*24*time.Hour))
	assert.NotNil(t, stale.Metadata.Keywords)

	rescraped := &entity.LandingPageCacheEntry{
		URL:     url,
		Title:   "New title",
		Content: "new content",
		Metadata: entity.LandingPageMetadata{
			Description: "desc",
			Keywords:    []string{"shoes", "sale"},
			ScrapedAt:   now,
		},
	}
	require.NoError(t, repo.Upsert(ctx, rescraped))

	var count int64
	require.NoError(t, db.Model(&model.LandingPageCacheModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	fresh, err := repo.FindByURL(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "New title", fresh.Title)
	assert.Equal(t, []string{"shoes", "sale"}, fresh.Metadata.Keywords)
	assert.True(t, fresh.IsFresh(time.Now().UTC(), 7*24*time.Hour))

	deleted, err := repo.DeleteCreatedBefore(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	require.NoError(t, repo.DeleteByURL(ctx, url))
	_, err = repo.FindByURL(ctx, url)
	assert.ErrorIs(t, err, repository.ErrLandingPageNotFound)
	require.NoError(t, repo.DeleteByURL(ctx, url))
}
