package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adcopy/config"
	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/constants"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"
	"adcopy/internal/infra/pubsub"
	mockUsecase "adcopy/internal/mocks/usecase"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, worker *config.WorkerConfig) (*PushHandler, *mockUsecase.MockAdCopyUsecase) {
	adCopy := mockUsecase.NewMockAdCopyUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{Worker: worker},
		AdCopy: adCopy,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, adCopy
}

func pushBody(t *testing.T, eventType string, event *service.GenerationRequestedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{constants.AttrEventType: eventType}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	event := &service.GenerationRequestedEvent{
		RequestID: "req-42",
		ProjectID: projectID.String(),
		UserID:    userID.String(),
	}

	tests := []struct {
		name       string
		body       string
		setup      func(m *mockUsecase.MockAdCopyUsecase)
		wantStatus int
	}{
		{
			name: "generates with the event's request id",
			body: pushBody(t, constants.EventTypeGenerationRequested, event),
			setup: func(m *mockUsecase.MockAdCopyUsecase) {
				m.EXPECT().
					GenerateAdCopy(mock.MatchedBy(func(ctx context.Context) bool {
						return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
					}), userID, projectID).
					Return(&usecase.GenerationOutput{ProjectID: projectID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "retryable upstream failure",
			body: pushBody(t, constants.EventTypeGenerationRequested, event),
			setup: func(m *mockUsecase.MockAdCopyUsecase) {
				m.EXPECT().GenerateAdCopy(mock.Anything, userID, projectID).
					Return(nil, domainerrors.NewUpstreamError("gemini", "generate_content", 503, "", nil))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "missing project is acknowledged",
			body: pushBody(t, constants.EventTypeGenerationRequested, event),
			setup: func(m *mockUsecase.MockAdCopyUsecase) {
				m.EXPECT().GenerateAdCopy(mock.Anything, userID, projectID).
					Return(nil, domainerrors.ErrProjectNotFound)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown event type is acknowledged",
			body:       pushBody(t, "something.else", event),
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid ids are dropped",
			body:       pushBody(t, constants.EventTypeGenerationRequested, &service.GenerationRequestedEvent{ProjectID: "x", UserID: "y"}),
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed payload",
			body:       `{"message":{"data":"%%%","attributes":{"event_type":"generation.requested"}}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, adCopy := newTestPushHandler(t, nil)
			if tt.setup != nil {
				tt.setup(adCopy)
			}

			rec := servePush(h, tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	const audience = "https://worker.example/push"

	h, adCopy := newTestPushHandler(t, &config.WorkerConfig{
		PushAudience:       audience,
		PushServiceAccount: "pusher@proj.iam.gserviceaccount.com",
	})
	h.validate = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
		if aud != audience {
			return nil, errors.New("audience mismatch")
		}
		switch token {
		case "good":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{
				"email":          "pusher@proj.iam.gserviceaccount.com",
				"email_verified": true,
			}}, nil
		case "stranger":
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{
				"email":          "someone@else.example",
				"email_verified": true,
			}}, nil
		default:
			return nil, errors.New("bad signature")
		}
	}

	body := pushBody(t, "ignored.event", &service.GenerationRequestedEvent{})

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer stranger"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	adCopy.AssertNotCalled(t, "GenerateAdCopy", mock.Anything, mock.Anything, mock.Anything)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(errors.New("connection reset")))
	assert.True(t, isRetryable(domainerrors.NewUpstreamError("dropbox", "download", 0, "", errors.New("timeout"))))
	assert.True(t, isRetryable(domainerrors.NewUpstreamError("gemini", "generate_content", 429, "", nil)))
	assert.False(t, isRetryable(domainerrors.NewUpstreamError("gemini", "generate_content", 400, "", nil)))
	assert.False(t, isRetryable(errors.Wrap(domainerrors.ErrConfiguration, "gemini")))
	assert.False(t, isRetryable(domainerrors.ErrProjectForbidden))
}
