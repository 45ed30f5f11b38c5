// Package speech adapts Google Speech-to-Text v1 to service.SpeechTranscriber.
package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"adcopy/config"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	speechapi "google.golang.org/api/speech/v1"
)

const (
	providerName = "speech"

	sampleRateHertz     = 16000
	defaultLanguageCode = "en-US"
	defaultPollInterval = 5 * time.Second
)

// Client transcribes LINEAR16 audio. The underlying API service is created
// on first use so processes that never transcribe need no Google credentials.
type Client struct {
	opts         []option.ClientOption
	languageCode string
	pollInterval time.Duration

	mu  sync.Mutex
	svc *speechapi.Service
}

// NewClient creates the transcriber from the speech config section.
func NewClient(cfg *config.Config) service.SpeechTranscriber {
	return newClient(cfg, nil)
}

func newClient(cfg *config.Config, httpClient *http.Client) *Client {
	client := &Client{
		languageCode: defaultLanguageCode,
		pollInterval: defaultPollInterval,
	}

	if cfg.Speech != nil {
		if cfg.Speech.LanguageCode != "" {
			client.languageCode = cfg.Speech.LanguageCode
		}
		if cfg.Speech.PollInterval > 0 {
			client.pollInterval = cfg.Speech.PollInterval
		}
		if cfg.Speech.Endpoint != "" {
			client.opts = append(client.opts, option.WithEndpoint(cfg.Speech.Endpoint))
		}
		if cfg.Speech.CredentialsFile != "" {
			client.opts = append(client.opts, option.WithCredentialsFile(cfg.Speech.CredentialsFile))
		}
	}
	if httpClient != nil {
		client.opts = append(client.opts, option.WithHTTPClient(httpClient))
	}

	return client
}

// Recognize transcribes short inline audio synchronously.
func (c *Client) Recognize(ctx context.Context, audio []byte) (*service.Transcript, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Speech.Recognize(&speechapi.RecognizeRequest{
		Config: c.recognitionConfig(),
		Audio:  &speechapi.RecognitionAudio{Content: base64.StdEncoding.EncodeToString(audio)},
	}).Context(ctx).Do()
	if err != nil {
		return nil, toUpstreamError("recognize", err)
	}

	return toTranscript(resp.Results), nil
}

// LongRunningRecognize starts an asynchronous recognition of uri and polls
// the operation until it completes or ctx is done.
func (c *Client) LongRunningRecognize(ctx context.Context, uri string) (*service.Transcript, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	op, err := svc.Speech.Longrunningrecognize(&speechapi.LongRunningRecognizeRequest{
		Config: c.recognitionConfig(),
		Audio:  &speechapi.RecognitionAudio{Uri: uri},
	}).Context(ctx).Do()
	if err != nil {
		return nil, toUpstreamError("long_running_recognize", err)
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for !op.Done {
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "waiting for operation %s", op.Name)
		case <-ticker.C:
		}

		op, err = svc.Operations.Get(op.Name).Context(ctx).Do()
		if err != nil {
			return nil, toUpstreamError("operation_poll", err)
		}
	}

	if op.Error != nil {
		return nil, domainerrors.NewUpstreamError(providerName, "long_running_recognize", int(op.Error.Code), op.Error.Message, nil)
	}

	var resp speechapi.LongRunningRecognizeResponse
	if len(op.Response) > 0 {
		if err := json.Unmarshal(op.Response, &resp); err != nil {
			return nil, errors.Wrap(err, "failed to decode long running recognize response")
		}
	}

	return toTranscript(resp.Results), nil
}

func (c *Client) service(ctx context.Context) (*speechapi.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.svc != nil {
		return c.svc, nil
	}

	svc, err := speechapi.NewService(ctx, c.opts...)
	if err != nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("speech service unavailable: " + err.Error())
	}
	c.svc = svc

	return svc, nil
}

func (c *Client) recognitionConfig() *speechapi.RecognitionConfig {
	return &speechapi.RecognitionConfig{
		Encoding:                   "LINEAR16",
		SampleRateHertz:            sampleRateHertz,
		AudioChannelCount:          1,
		LanguageCode:               c.languageCode,
		EnableAutomaticPunctuation: true,
	}
}

// toTranscript keeps the top alternative of every result.
func toTranscript(results []*speechapi.SpeechRecognitionResult) *service.Transcript {
	transcript := &service.Transcript{}
	for _, result := range results {
		if result == nil || len(result.Alternatives) == 0 || result.Alternatives[0] == nil {
			continue
		}
		best := result.Alternatives[0]
		transcript.Segments = append(transcript.Segments, service.TranscriptSegment{
			Text:       best.Transcript,
			Confidence: best.Confidence,
		})
	}

	return transcript
}

func toUpstreamError(stage string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return domainerrors.NewUpstreamError(providerName, stage, apiErr.Code, apiErr.Message, err)
	}

	return domainerrors.NewUpstreamError(providerName, stage, 0, "", err)
}
