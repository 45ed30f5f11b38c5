package middleware

import (
	"log/slog"

	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/delivery/http/response"
	"adcopy/internal/delivery/http/validator"
	domainerrors "adcopy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the echo HTTPErrorHandler of the API server.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError converts err to the JSON envelope. 5xx details never leave
// the server; they are logged instead.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.BadRequestWithDetails(c, domainerrors.ErrValidation.ErrorCode(), domainerrors.ErrValidation.Message(), validationErr.Fields)

		return
	}

	var upstreamErr *domainerrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.Warn("Upstream request failed",
			slog.String("provider", upstreamErr.Provider),
			slog.String("stage", upstreamErr.Stage),
			slog.Int("status_code", upstreamErr.StatusCode),
			slog.Any("error", err),
		)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 && upstreamErr == nil {
			logger.Error("Request failed", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}
