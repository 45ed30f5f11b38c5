package repository

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for the content caches.
var (
	// ErrInterpretationNotFound is returned on an interpretation cache miss.
	ErrInterpretationNotFound = errors.New("interpretation not found")
	// ErrLandingPageNotFound is returned on a landing page cache miss.
	ErrLandingPageNotFound = errors.New("landing page not found")
)

// InterpretationCacheRepository is the keyed store behind the content
// interpretation cache. Rows are unique per remote file id.
type InterpretationCacheRepository interface {
	// FindByRemoteFileID returns the cached entry or ErrInterpretationNotFound.
	FindByRemoteFileID(ctx context.Context, remoteFileID string) (*entity.InterpretationCacheEntry, error)

	// Upsert inserts the entry or overwrites the existing row with the same remote file id.
	// On return entry carries the persisted id and timestamps.
	Upsert(ctx context.Context, entry *entity.InterpretationCacheEntry) error

	// DeleteUpdatedBefore removes entries last updated before cutoff.
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// LandingPageCacheRepository is the keyed store behind the landing page cache.
// Rows are unique per URL.
type LandingPageCacheRepository interface {
	// FindByURL returns the cached entry or ErrLandingPageNotFound.
	FindByURL(ctx context.Context, url string) (*entity.LandingPageCacheEntry, error)

	// Upsert inserts the entry or overwrites the existing row with the same URL.
	Upsert(ctx context.Context, entry *entity.LandingPageCacheEntry) error

	// DeleteByURL removes the entry for url, if any.
	DeleteByURL(ctx context.Context, url string) error

	// DeleteCreatedBefore removes entries created before cutoff.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
