package impl

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"
	"adcopy/internal/domain/repository"
	"adcopy/internal/usecase"

	"github.com/pkg/errors"
)

type interpretationCache struct {
	repo repository.InterpretationCacheRepository
	now  func() time.Time
}

// NewInterpretationCache creates the cache over its repository.
func NewInterpretationCache(repo repository.InterpretationCacheRepository) usecase.InterpretationCache {
	return &interpretationCache{
		repo: repo,
		now:  time.Now,
	}
}

func (c *interpretationCache) Get(ctx context.Context, remoteFileID string) (*entity.InterpretationCacheEntry, error) {
	entry, err := c.repo.FindByRemoteFileID(ctx, remoteFileID)
	if errors.Is(err, repository.ErrInterpretationNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read interpretation cache")
	}

	return entry, nil
}

func (c *interpretationCache) Put(ctx context.Context, input *usecase.PutInterpretationInput) (*entity.InterpretationCacheEntry, error) {
	entry := &entity.InterpretationCacheEntry{
		RemoteFileID:     input.RemoteFileID,
		FileType:         input.FileType,
		Interpretation:   input.Interpretation,
		ProcessingMethod: input.ProcessingMethod,
		Metadata:         input.Metadata,
	}

	if err := c.repo.Upsert(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to write interpretation cache")
	}

	return entry, nil
}

func (c *interpretationCache) IsFresh(ctx context.Context, remoteFileID string, maxAge time.Duration) (bool, error) {
	entry, err := c.Get(ctx, remoteFileID)
	if err != nil || entry == nil {
		return false, err
	}

	return entry.IsFresh(c.now(), maxAge), nil
}

func (c *interpretationCache) DeleteOldEntries(ctx context.Context, maxAge time.Duration) (int64, error) {
	deleted, err := c.repo.DeleteUpdatedBefore(ctx, c.now().Add(-maxAge))
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete old interpretations")
	}

	return deleted, nil
}
