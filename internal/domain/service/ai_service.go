package service

import "context"

// VisionAnalyzer describes an image with a multimodal model.
type VisionAnalyzer interface {
	// AnalyzeImage sends the image inline together with prompt and returns the model's text.
	AnalyzeImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
}

// GenerationParams are the sampling parameters of a text generation call.
type GenerationParams struct {
	Temperature     float64
	TopK            int64
	TopP            float64
	MaxOutputTokens int64
}

// TextGeneration is the free-text output of a model call.
type TextGeneration struct {
	Text             string
	Model            string
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// TextGenerator calls a generative text model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (*TextGeneration, error)
}
