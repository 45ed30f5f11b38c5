package usecase

import (
	"context"

	"adcopy/internal/domain/entity"

	"github.com/google/uuid"
)

// Stages an interpretation can fail at.
const (
	StageClassify     = "classify"
	StageDownload     = "download"
	StageVision       = "vision"
	StageExtractAudio = "extract_audio"
	StageTranscribe   = "transcribe"
	StageCache        = "cache"
)

// InterpretationResult is the outcome for one asset. Failures are reported in
// Error and Stage, never returned as errors.
type InterpretationResult struct {
	AssetID          uuid.UUID               `json:"asset_id"`
	RemoteFileID     string                  `json:"remote_file_id"`
	FileName         string                  `json:"file_name"`
	FileType         entity.FileType         `json:"file_type"`
	Success          bool                    `json:"success"`
	FromCache        bool                    `json:"from_cache"`
	Interpretation   string                  `json:"interpretation,omitempty"`
	ProcessingMethod entity.ProcessingMethod `json:"processing_method,omitempty"`
	Confidence       float64                 `json:"confidence,omitempty"`
	DurationSeconds  float64                 `json:"duration_seconds,omitempty"`
	Stage            string                  `json:"stage,omitempty"`
	Error            string                  `json:"error,omitempty"`
}

// AssetInterpreter turns images and videos into text the generator can use.
type AssetInterpreter interface {
	// InterpretAsset returns a fresh cache entry when there is one, otherwise
	// calls the vision or speech path and writes the result through to the cache.
	InterpretAsset(ctx context.Context, userID uuid.UUID, asset *entity.Asset) *InterpretationResult

	// InterpretAssets processes assets one at a time, in input order.
	InterpretAssets(ctx context.Context, userID uuid.UUID, assets []*entity.Asset) []*InterpretationResult

	// InterpretProjectAssets interprets every asset of a project the user owns.
	InterpretProjectAssets(ctx context.Context, userID, projectID uuid.UUID) ([]*InterpretationResult, error)
}
