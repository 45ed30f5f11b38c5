package service

import (
	"context"
	"time"
)

// AudioExtractor wraps the external audio tooling.
type AudioExtractor interface {
	// ExtractAudio writes the audio track of src to dest as 16kHz mono PCM WAV.
	ExtractAudio(ctx context.Context, src, dest string) error

	// ProbeDuration returns the media duration of path.
	ProbeDuration(ctx context.Context, path string) (time.Duration, error)
}
