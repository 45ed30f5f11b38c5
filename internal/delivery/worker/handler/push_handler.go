// Package handler contains the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"adcopy/config"
	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/constants"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"
	"adcopy/internal/infra/pubsub"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs ad copy generation for pushed generation-requested events.
type PushHandler struct {
	audience       string
	serviceAccount string
	validate       tokenValidator
	adCopy         usecase.AdCopyUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	AdCopy usecase.AdCopyUsecase
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified
// only when worker.pushAudience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		adCopy:   params.AdCopy,
		logger:   params.Logger,
	}
	if params.Config.Worker != nil {
		h.audience = params.Config.Worker.PushAudience
		h.serviceAccount = params.Config.Worker.PushServiceAccount
	}

	return h
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery,
// in which case it answers 503 so Pub/Sub retries.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := pushMsg.Message.Attributes[constants.AttrEventType]; eventType != constants.EventTypeGenerationRequested {
		h.logger.Warn("[Worker] Ignoring unknown event type",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.GenerationRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse generation event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	userID, projectID, err := parseEventIDs(&event)
	if err != nil {
		reqLogger.Error("[Worker] Dropping event with invalid IDs", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Generating ad copy",
		slog.String("project_id", projectID.String()),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	output, err := h.adCopy.GenerateAdCopy(ctx, userID, projectID)
	if err != nil {
		retry := isRetryable(err)
		reqLogger.Error("[Worker] Generation failed",
			slog.String("project_id", projectID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Generation completed",
		slog.String("project_id", projectID.String()),
		slog.Int("variations", len(output.Generations)),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the payload, then the
// X-Request-Id of the push itself, and finally a new ID.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.GenerationRequestedEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func parseEventIDs(event *service.GenerationRequestedEvent) (userID, projectID uuid.UUID, err error) {
	if userID, err = uuid.Parse(event.UserID); err != nil {
		return uuid.Nil, uuid.Nil, errors.Wrap(err, "invalid user_id")
	}
	if projectID, err = uuid.Parse(event.ProjectID); err != nil {
		return uuid.Nil, uuid.Nil, errors.Wrap(err, "invalid project_id")
	}

	return userID, projectID, nil
}

// isRetryable reports whether redelivering the event could succeed.
// Client-side errors and missing configuration never will.
func isRetryable(err error) bool {
	if errors.Is(err, domainerrors.ErrConfiguration) {
		return false
	}

	var upstream *domainerrors.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode == 0 || upstream.StatusCode == http.StatusTooManyRequests || upstream.StatusCode >= 500
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= 500
	}

	return true
}

// verifyPushToken checks the OIDC token Pub/Sub attaches to push requests.
// See https://cloud.google.com/pubsub/docs/push#authentication
func (h *PushHandler) verifyPushToken(ctx context.Context, req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.validate(ctx, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}
	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected push identity %q", email)
		}
	}

	return nil
}
