package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adcopy/internal/delivery/http/response"
	"adcopy/internal/delivery/http/validator"
	domainerrors "adcopy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
		wantLogged  bool
	}{
		{
			name:        "app error with details",
			err:         errors.WithStack(domainerrors.ErrValidation.WithDetails("name is blank")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantDetails: true,
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrTemplateForbidden.WithDetails("owner is someone else"),
			wantStatus: http.StatusForbidden,
			wantCode:   "TEMPLATE_FORBIDDEN",
		},
		{
			name:        "struct validation",
			err:         &validator.ValidationError{Fields: map[string]string{"name": "is required"}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantDetails: true,
		},
		{
			name:       "upstream",
			err:        errors.Wrap(domainerrors.NewUpstreamError("dropbox", "list_folder", 500, "boom", nil), "failed to list"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_ERROR",
			wantLogged: true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.NotContains(t, rec.Body.String(), "connection refused")
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}
