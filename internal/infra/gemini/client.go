// Package gemini adapts the Vertex AI Gemini models to the vision and text
// generation services.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"adcopy/config"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/aiplatform/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	providerName = "gemini"

	defaultLocation    = "us-central1"
	defaultVisionModel = "gemini-1.5-flash"
	defaultTextModel   = "gemini-1.5-flash"
)

// Client implements service.VisionAnalyzer and service.TextGenerator.
type Client struct {
	models      *aiplatform.ProjectsLocationsPublishersModelsService
	parent      string
	visionModel string
	textModel   string
}

// NewClient builds the client. A missing API key or project is a
// configuration error.
func NewClient(cfg *config.Config) (*Client, error) {
	return newClient(context.Background(), cfg, nil)
}

func newClient(ctx context.Context, cfg *config.Config, httpClient *http.Client) (*Client, error) {
	if cfg.Gemini == nil || strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("gemini api key is not set")
	}
	if strings.TrimSpace(cfg.Gemini.ProjectID) == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("gemini project id is not set")
	}

	location := cfg.Gemini.Location
	if location == "" {
		location = defaultLocation
	}

	endpoint := cfg.Gemini.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s-aiplatform.googleapis.com/", location)
	}

	opts := []option.ClientOption{
		option.WithAPIKey(cfg.Gemini.APIKey),
		option.WithEndpoint(endpoint),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	svc, err := aiplatform.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vertex ai service")
	}

	client := &Client{
		models:      svc.Projects.Locations.Publishers.Models,
		parent:      fmt.Sprintf("projects/%s/locations/%s/publishers/google", cfg.Gemini.ProjectID, location),
		visionModel: cfg.Gemini.VisionModel,
		textModel:   cfg.Gemini.TextModel,
	}
	if client.visionModel == "" {
		client.visionModel = defaultVisionModel
	}
	if client.textModel == "" {
		client.textModel = defaultTextModel
	}

	return client, nil
}

// AnalyzeImage sends the image inline next to the instruction prompt.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(c.modelName(c.visionModel), &aiplatform.GoogleCloudAiplatformV1GenerateContentRequest{
		Contents: []*aiplatform.GoogleCloudAiplatformV1Content{{
			Role: "user",
			Parts: []*aiplatform.GoogleCloudAiplatformV1Part{
				{Text: prompt},
				{InlineData: &aiplatform.GoogleCloudAiplatformV1Blob{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return "", toUpstreamError("vision", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", domainerrors.NewUpstreamError(providerName, "vision", 0, "empty response", nil)
	}

	return text, nil
}

// Generate runs a single-prompt text generation.
func (c *Client) Generate(ctx context.Context, prompt string, params service.GenerationParams) (*service.TextGeneration, error) {
	resp, err := c.models.GenerateContent(c.modelName(c.textModel), &aiplatform.GoogleCloudAiplatformV1GenerateContentRequest{
		Contents: []*aiplatform.GoogleCloudAiplatformV1Content{{
			Role:  "user",
			Parts: []*aiplatform.GoogleCloudAiplatformV1Part{{Text: prompt}},
		}},
		GenerationConfig: &aiplatform.GoogleCloudAiplatformV1GenerationConfig{
			Temperature:     params.Temperature,
			TopK:            float64(params.TopK),
			TopP:            params.TopP,
			MaxOutputTokens: params.MaxOutputTokens,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, toUpstreamError("generate", err)
	}

	result := &service.TextGeneration{
		Text:  responseText(resp),
		Model: c.textModel,
	}
	if usage := resp.UsageMetadata; usage != nil {
		result.PromptTokens = usage.PromptTokenCount
		result.CompletionTokens = usage.CandidatesTokenCount
		result.TotalTokens = usage.TotalTokenCount
	}

	return result, nil
}

// modelName expands a bare model id to the publisher model resource name.
func (c *Client) modelName(model string) string {
	if strings.HasPrefix(model, "projects/") {
		return model
	}

	return c.parent + "/models/" + strings.TrimPrefix(model, "models/")
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *aiplatform.GoogleCloudAiplatformV1GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(sb.String())
}

func toUpstreamError(stage string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return domainerrors.NewUpstreamError(providerName, stage, apiErr.Code, apiErr.Message, err)
	}

	return domainerrors.NewUpstreamError(providerName, stage, 0, "", err)
}
