package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingMethod records which AI path produced an interpretation.
type ProcessingMethod string

const (
	ProcessingMethodVision       ProcessingMethod = "vision"
	ProcessingMethodSpeechToText ProcessingMethod = "speech-to-text"
)

// InterpretationCacheEntry is the latest AI interpretation of a remote file.
// There is at most one entry per RemoteFileID; entries are shared across users and projects.
type InterpretationCacheEntry struct {
	ID               uuid.UUID        `json:"id"`
	RemoteFileID     string           `json:"remote_file_id"`
	FileType         FileType         `json:"file_type"`
	Interpretation   string           `json:"interpretation"`
	ProcessingMethod ProcessingMethod `json:"processing_method"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsFresh reports whether the entry was updated no longer than maxAge before now.
func (e *InterpretationCacheEntry) IsFresh(now time.Time, maxAge time.Duration) bool {
	return now.Sub(e.UpdatedAt) <= maxAge
}
