package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adcopy/config"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := newClient(context.Background(), &config.Config{
		Gemini: &config.GeminiConfig{
			APIKey:      "test-key",
			ProjectID:   "ads-prod",
			Location:    "europe-west4",
			Endpoint:    server.URL + "/",
			VisionModel: "vision-model",
			TextModel:   "text-model",
		},
	}, server.Client())
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresConfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.GeminiConfig
	}{
		{name: "missing section"},
		{name: "missing api key", cfg: &config.GeminiConfig{ProjectID: "ads-prod"}},
		{name: "missing project", cfg: &config.GeminiConfig{APIKey: "test-key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(&config.Config{Gemini: tt.cfg})

			assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
		})
	}
}

func TestClient_AnalyzeImage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/ads-prod/locations/europe-west4/publishers/google/models/vision-model:generateContent", r.URL.Path)

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		parts := req["contents"].([]any)[0].(map[string]any)["parts"].([]any)
		assert.Equal(t, "describe", parts[0].(map[string]any)["text"])
		inline := parts[1].(map[string]any)["inlineData"].(map[string]any)
		assert.Equal(t, "image/png", inline["mimeType"])
		assert.Equal(t, "aW1n", inline["data"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates": [{"content": {"parts": [{"text": "A red "}, {"text": "sneaker."}]}}]}`)
	})

	text, err := client.AnalyzeImage(context.Background(), []byte("img"), "image/png", "describe")
	require.NoError(t, err)
	assert.Equal(t, "A red sneaker.", text)
}

func TestClient_Generate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		generationConfig := req["generationConfig"].(map[string]any)
		assert.Equal(t, 0.8, generationConfig["temperature"])
		assert.Equal(t, 0.95, generationConfig["topP"])
		assert.Equal(t, float64(40), generationConfig["topK"])
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/text-model:generateContent"), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"candidates": [{"content": {"parts": [{"text": "HEADLINE: Run more"}]}}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
		}`)
	})

	result, err := client.Generate(context.Background(), "write an ad", service.GenerationParams{
		Temperature:     0.8,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "HEADLINE: Run more", result.Text)
	assert.Equal(t, "text-model", result.Model)
	assert.Equal(t, int64(15), result.TotalTokens)
}

func TestClient_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error": {"code": 400, "message": "API key not valid"}}`)
	})

	_, err := client.Generate(context.Background(), "prompt", service.GenerationParams{})

	var upstreamErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
	assert.Equal(t, "generate", upstreamErr.Stage)
}
