package service

import (
	"context"
	"strings"
)

// TranscriptSegment is the top alternative of one recognized segment.
type TranscriptSegment struct {
	Text       string
	Confidence float64
}

// Transcript is the result of a speech recognition call.
type Transcript struct {
	Segments []TranscriptSegment
}

// Text joins the segment transcripts.
func (t *Transcript) Text() string {
	parts := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		if text := strings.TrimSpace(s.Text); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}

// AverageConfidence is the mean confidence across segments, zero when empty.
func (t *Transcript) AverageConfidence() float64 {
	if len(t.Segments) == 0 {
		return 0
	}

	var sum float64
	for _, s := range t.Segments {
		sum += s.Confidence
	}

	return sum / float64(len(t.Segments))
}

// SpeechTranscriber converts 16kHz mono LINEAR16 audio to text.
type SpeechTranscriber interface {
	// Recognize transcribes short inline audio synchronously.
	Recognize(ctx context.Context, audio []byte) (*Transcript, error)

	// LongRunningRecognize transcribes an object storage URI and waits for the operation.
	LongRunningRecognize(ctx context.Context, uri string) (*Transcript, error)
}
