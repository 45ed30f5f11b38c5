package speech

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"adcopy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newClient(&config.Config{
		Speech: &config.SpeechConfig{
			Endpoint:     server.URL + "/",
			LanguageCode: "en-GB",
			PollInterval: 10 * time.Millisecond,
		},
	}, server.Client())
}

func TestClient_Recognize(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "speech:recognize"), r.URL.Path)

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		cfg := req["config"].(map[string]any)
		assert.Equal(t, "LINEAR16", cfg["encoding"])
		assert.Equal(t, "en-GB", cfg["languageCode"])
		assert.Equal(t, "d2F2", req["audio"].(map[string]any)["content"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results": [
			{"alternatives": [{"transcript": "Hello there", "confidence": 0.9}]},
			{"alternatives": [{"transcript": " general Kenobi ", "confidence": 0.7}]}
		]}`)
	})

	transcript, err := client.Recognize(context.Background(), []byte("wav"))
	require.NoError(t, err)
	assert.Equal(t, "Hello there general Kenobi", transcript.Text())
	assert.InDelta(t, 0.8, transcript.AverageConfidence(), 1e-9)
}

func TestClient_LongRunningRecognizePollsUntilDone(t *testing.T) {
	var polls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "speech:longrunningrecognize"):
			var req map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gs://bucket/audio/a.wav", req["audio"].(map[string]any)["uri"])
			_, _ = io.WriteString(w, `{"name": "op-1"}`)
		case strings.HasSuffix(r.URL.Path, "operations/op-1"):
			if polls.Add(1) < 2 {
				_, _ = io.WriteString(w, `{"name": "op-1", "done": false}`)

				return
			}
			_, _ = io.WriteString(w, `{"name": "op-1", "done": true, "response": {
				"@type": "type.googleapis.com/google.cloud.speech.v1.LongRunningRecognizeResponse",
				"results": [{"alternatives": [{"transcript": "long talk", "confidence": 0.5}]}]
			}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	transcript, err := client.LongRunningRecognize(context.Background(), "gs://bucket/audio/a.wav")
	require.NoError(t, err)
	assert.Equal(t, "long talk", transcript.Text())
	assert.Equal(t, int32(2), polls.Load())
}

func TestClient_LongRunningRecognizeOperationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name": "op-2", "done": true, "error": {"code": 3, "message": "bad audio"}}`)
	})

	_, err := client.LongRunningRecognize(context.Background(), "gs://bucket/audio/b.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad audio")
}
