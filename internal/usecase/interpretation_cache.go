package usecase

import (
	"context"
	"time"

	"adcopy/internal/domain/entity"
)

// PutInterpretationInput is one write to the interpretation cache.
type PutInterpretationInput struct {
	RemoteFileID     string
	FileType         entity.FileType
	Interpretation   string
	ProcessingMethod entity.ProcessingMethod
	Metadata         map[string]any
}

// InterpretationCache is the keyed store of AI interpretations, shared by all
// users and projects. Concurrent writers are last-write-wins.
type InterpretationCache interface {
	// Get returns the entry or nil on a miss.
	Get(ctx context.Context, remoteFileID string) (*entity.InterpretationCacheEntry, error)

	// Put inserts or overwrites the entry for the remote file.
	Put(ctx context.Context, input *PutInterpretationInput) (*entity.InterpretationCacheEntry, error)

	// IsFresh reports whether an entry exists and was updated within maxAge.
	IsFresh(ctx context.Context, remoteFileID string, maxAge time.Duration) (bool, error)

	// DeleteOldEntries removes entries not updated within maxAge.
	DeleteOldEntries(ctx context.Context, maxAge time.Duration) (int64, error)
}
